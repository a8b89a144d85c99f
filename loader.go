package finance

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// One durable slot per collection, each holding the full collection as
// a JSON array. Slots load and fail independently.
const (
	slotTransactions = "transactions.json"
	slotInvestments  = "investments.json"
	slotGoals        = "goals.json"
	slotCards        = "cards.json"
	slotPayments     = "payments.json"
)

// Open loads a store from the given directory, creating it when absent.
// Each collection loads independently: a missing slot starts empty, and
// a corrupt slot is treated as absent (logged, not fatal), so one bad
// file never prevents the other collections from loading.
func Open(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	s := &Store{dir: dir, log: log}
	s.transactions = loadSlot[Transaction](dir, slotTransactions, log)
	s.investments = loadSlot[Investment](dir, slotInvestments, log)
	s.goals = loadSlot[Goal](dir, slotGoals, log)
	s.cards = loadSlot[Card](dir, slotCards, log)
	s.payments = loadSlot[Payment](dir, slotPayments, log)
	s.sortTransactions()
	return s, nil
}

// loadSlot reads one collection from its slot, falling back to an empty
// collection on any failure.
func loadSlot[E any](dir, name string, log zerolog.Logger) []E {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []E{}
	}
	if err != nil {
		log.Warn().Err(err).Str("slot", name).Msg("could not open collection, starting empty")
		return []E{}
	}
	defer f.Close()

	records, err := decodeCollection[E](f)
	if err != nil {
		log.Warn().Err(err).Str("slot", name).Msg("corrupt collection, starting empty")
		return []E{}
	}
	return records
}

// saveSlot writes one collection to its slot. Durability is best
// effort: the caller logs failures and keeps the in-memory state
// authoritative for the rest of the session.
func saveSlot[E json.Marshaler](dir, name string, records []E) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("could not open slot %q for writing: %w", name, err)
	}
	defer f.Close()

	if err := encodeCollection(f, records); err != nil {
		return fmt.Errorf("could not write slot %q: %w", name, err)
	}
	return nil
}
