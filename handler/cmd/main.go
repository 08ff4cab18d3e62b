package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Luismorlan/tx_handler/commands"
	"github.com/Luismorlan/tx_handler/config"
	"github.com/Luismorlan/tx_handler/handler"
	"github.com/Luismorlan/tx_handler/logger"
	"github.com/Luismorlan/tx_handler/signature"
	"github.com/Luismorlan/tx_handler/store"
	"github.com/Luismorlan/tx_handler/utils"
	uuid "github.com/satori/go.uuid"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	configPath   *string
	scenarioPath *string
	persist      *bool
	dotPath      *string
	interactive  *bool
	keygenPath   *string
)

func init() {
	configPath = flag.String("config_path", "", "path to the yaml config, defaults are used when empty")
	scenarioPath = flag.String("scenario", "", "scenario file whose epochs are handled on start")
	persist = flag.Bool("persist", false, "store a ledger snapshot in data_dir after every epoch and resume from it")
	dotPath = flag.String("dot", "", "write a graphviz rendering of the final ledger to this file")
	interactive = flag.Bool("interactive", false, "read commands from stdin after the scenario")
	keygenPath = flag.String("keygen", "", "write a new RSA private key to this file and exit")
}

func ParseAppConfig(path string) (config.AppConfig, error) {
	if path == "" {
		return config.DefaultAppConfig(), nil
	}
	return config.ParseAppConfig(path)
}

// ParseCommand reads commands from in until quit or end of input.
func ParseCommand(in io.Reader, s *session) {
	reader := bufio.NewScanner(in)
	fmt.Fprint(s.out, "> ")
	for reader.Scan() {
		c, err := commands.CreateCommand(reader.Text())
		if err != nil {
			s.log.Warn(err)
			fmt.Fprint(s.out, "> ")
			continue
		}
		done, err := s.execute(c)
		if err != nil {
			s.log.Error(err)
		}
		if done {
			return
		}
		fmt.Fprint(s.out, "> ")
	}
}

func run(cfg config.AppConfig, log *zap.SugaredLogger) error {
	scheme, err := signature.ParseScheme(cfg.SignatureScheme)
	if err != nil {
		return err
	}
	verifier, err := signature.NewVerifier(scheme)
	if err != nil {
		return err
	}
	policy, err := handler.ParseApplyPolicy(cfg.ApplyPolicy)
	if err != nil {
		return err
	}

	s := &session{
		id:       uuid.NewV4().String(),
		verifier: verifier,
		policy:   policy,
		log:      log,
		out:      os.Stdout,
	}
	log.Infow("starting", "run", s.id, "policy", policy.String(), "scheme", scheme)

	if *persist {
		st, err := store.OpenBoltStore(filepath.Join(cfg.DataDir, "ledger.db"))
		if err != nil {
			return err
		}
		defer st.Close()
		s.store = st
		if err := s.resume(); err != nil {
			return err
		}
	}

	if *scenarioPath != "" {
		if err := s.runScenario(*scenarioPath); err != nil {
			return err
		}
	}
	if *interactive {
		ParseCommand(os.Stdin, s)
	}
	if *dotPath != "" {
		return s.dot(*dotPath)
	}
	return nil
}

func main() {
	flag.Parse()

	if *keygenPath != "" {
		key, err := utils.ParseKeyFile(*keygenPath, true)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(utils.BytesToHex(utils.PublicKeyToBytes(&key.PublicKey)))
		return
	}

	cfg, err := ParseAppConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	err = run(cfg, log)
	if err != nil {
		log.Error(err)
	}
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
