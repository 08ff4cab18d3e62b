package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Luismorlan/tx_handler/commands"
	"github.com/Luismorlan/tx_handler/handler"
	"github.com/Luismorlan/tx_handler/model"
	"github.com/Luismorlan/tx_handler/scenario"
	"github.com/Luismorlan/tx_handler/signature"
	"github.com/Luismorlan/tx_handler/store"
	"github.com/Luismorlan/tx_handler/utils"
	"github.com/Luismorlan/tx_handler/visualize"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var errNoLedger = errors.New("no ledger loaded yet, run a scenario first")

// session drives one handler across scenario files, the snapshot store and the terminal.
type session struct {
	// Unique id of this run, only used in logs.
	id       string
	verifier signature.Verifier
	policy   handler.ApplyPolicy
	// nil until a genesis ledger or a stored snapshot is loaded.
	txHandler *handler.TxHandler
	// nil when snapshots are not persisted.
	store *store.BoltStore
	// Transactions accepted in the latest epoch.
	lastAccepted *model.TxSet
	log          *zap.SugaredLogger
	out          io.Writer
}

// resume continues from the latest stored snapshot, if there is one.
func (s *session) resume() error {
	if s.store == nil {
		return nil
	}
	epoch, l, err := s.store.LoadLatest()
	if errors.Is(err, store.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.start(&l); err != nil {
		return err
	}
	s.txHandler.SetEpoch(epoch)
	s.log.Infow("resumed from snapshot", "run", s.id, "epoch", epoch, "utxos", l.Len())
	return nil
}

func (s *session) start(genesis *model.Ledger) error {
	h, err := handler.NewTxHandler(genesis, s.verifier, handler.WithPolicy(s.policy), handler.WithLogger(s.log))
	if err != nil {
		return err
	}
	s.txHandler = h
	return nil
}

// runScenario handles every epoch of the scenario at path. The scenario's ledger is only used
// when nothing has been loaded before.
func (s *session) runScenario(path string) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	if s.txHandler == nil {
		if err := s.start(&sc.Ledger); err != nil {
			return err
		}
	} else if sc.Ledger.Len() > 0 {
		s.log.Infow("ignoring scenario ledger, continuing from current state", "run", s.id, "scenario", path)
	}

	for _, txs := range sc.Epochs {
		accepted := s.txHandler.HandleTxs(txs)
		s.lastAccepted = accepted
		fmt.Fprintf(s.out, "epoch %d: accepted %d of %d\n", s.txHandler.Epoch(), accepted.Len(), len(txs))
		for _, tx := range accepted.Transactions() {
			fmt.Fprintf(s.out, "  %s\n", tx.Hash)
		}
		if s.store != nil {
			if err := s.save(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *session) ledger() (model.Ledger, error) {
	if s.txHandler == nil {
		return model.Ledger{}, errNoLedger
	}
	return s.txHandler.Ledger()
}

func (s *session) show() error {
	l, err := s.ledger()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "epoch %d, %d unspent outputs\n", s.txHandler.Epoch(), l.Len())
	for _, utxo := range l.Utxos() {
		out := l.L[utxo]
		fmt.Fprintf(s.out, "  %s:%d value=%d owner=%s\n", utxo.PrevTxHash, utxo.Index, out.Value, utils.BytesToHex(out.PublicKey))
	}
	return nil
}

func (s *session) balance(pkHex string) error {
	pk, err := utils.HexToBytes(pkHex)
	if err != nil {
		return err
	}
	l, err := s.ledger()
	if err != nil {
		return err
	}
	balance, err := l.Balance(pk)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%d\n", balance)
	return nil
}

func (s *session) save() error {
	if s.store == nil {
		return errors.New("snapshot persistence is disabled, start with --persist")
	}
	l, err := s.ledger()
	if err != nil {
		return err
	}
	if err := s.store.SaveLedger(s.txHandler.Epoch(), &l); err != nil {
		return err
	}
	s.log.Debugw("saved snapshot", "run", s.id, "epoch", s.txHandler.Epoch())
	return nil
}

func (s *session) dot(path string) error {
	l, err := s.ledger()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	visualize.Render(f, s.txHandler.Epoch(), &l, s.lastAccepted)
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// execute runs one interactive command and reports whether the session should end.
func (s *session) execute(c commands.Command) (bool, error) {
	switch c.Op {
	case commands.EPOCH:
		return false, s.runScenario(c.Args[0])
	case commands.SHOW:
		return false, s.show()
	case commands.BALANCE:
		return false, s.balance(c.Args[0])
	case commands.SAVE:
		return false, s.save()
	case commands.DOT:
		return false, s.dot(c.Args[0])
	case commands.QUIT:
		return true, nil
	default:
		return false, errors.Wrapf(commands.ErrInvalidCommand, "unhandled operation %d", c.Op)
	}
}
