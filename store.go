package finance

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Store owns the five collections of a finance workspace: transactions,
// investments, goals, cards and payments. All mutations go through it,
// every mutation persists its collection, and every read returns a
// copy, so consumers never share the store's internal slices.
//
// A Store is safe for concurrent use. It must be constructed with Open
// or NewStore; using a nil Store is a programming error and panics.
type Store struct {
	mu  sync.Mutex
	dir string // empty for an in-memory store
	log zerolog.Logger

	transactions []Transaction
	investments  []Investment
	goals        []Goal
	cards        []Card
	payments     []Payment
}

// NewStore creates an empty in-memory store. Nothing is persisted;
// tests and programmatic consumers use it.
func NewStore() *Store {
	return &Store{
		log:          NopLogger(),
		transactions: []Transaction{},
		investments:  []Investment{},
		goals:        []Goal{},
		cards:        []Card{},
		payments:     []Payment{},
	}
}

// addRecord appends a record after checking its id against the
// collection. A duplicate id is a caller bug and is surfaced, never
// silently absorbed.
func addRecord[E any](list []E, id func(E) string, e E) ([]E, error) {
	for _, x := range list {
		if id(x) == id(e) {
			return list, fmt.Errorf("duplicate id %q", id(e))
		}
	}
	return append(list, e), nil
}

// updateRecord replaces the record carrying the same id. Update is
// replace-only: an unknown id leaves the collection untouched.
func updateRecord[E any](list []E, id func(E) string, e E) ([]E, bool) {
	for i, x := range list {
		if id(x) == id(e) {
			list[i] = e
			return list, true
		}
	}
	return list, false
}

// deleteRecord removes the record carrying the given id, if present.
// Deleting an unknown id is a no-op.
func deleteRecord[E any](list []E, id func(E) string, target string) []E {
	for i, x := range list {
		if id(x) == target {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func transactionID(t Transaction) string { return t.ID }
func investmentID(i Investment) string   { return i.ID }
func goalID(g Goal) string               { return g.ID }
func cardID(c Card) string               { return c.ID }
func paymentID(p Payment) string         { return p.ID }

// persist writes one collection back to its slot. Failure is logged
// and the in-memory state stays authoritative for the session.
func persist[E json.Marshaler](s *Store, name string, records []E) {
	if s.dir == "" {
		return
	}
	if err := saveSlot(s.dir, name, records); err != nil {
		s.log.Warn().Err(err).Str("slot", name).Msg("could not persist collection")
	}
}

// sortTransactions keeps the transaction collection in chronological
// order. The sort is stable so same-day entries keep insertion order.
func (s *Store) sortTransactions() {
	sort.SliceStable(s.transactions, func(i, j int) bool {
		return s.transactions[i].Date.Before(s.transactions[j].Date)
	})
}

// Transactions

// AddTransaction records a new transaction and persists the collection.
func (s *Store) AddTransaction(t Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := addRecord(s.transactions, transactionID, t)
	if err != nil {
		return fmt.Errorf("could not add transaction: %w", err)
	}
	s.transactions = list
	s.sortTransactions()
	persist(s, slotTransactions, s.transactions)
	return nil
}

// UpdateTransaction replaces the transaction with the same id. It
// reports whether a transaction was found; an unknown id changes
// nothing.
func (s *Store) UpdateTransaction(t Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := updateRecord(s.transactions, transactionID, t)
	if !ok {
		return false
	}
	s.transactions = list
	s.sortTransactions()
	persist(s, slotTransactions, s.transactions)
	return true
}

// DeleteTransaction removes the transaction with the given id, if any.
func (s *Store) DeleteTransaction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.transactions)
	s.transactions = deleteRecord(s.transactions, transactionID, id)
	if len(s.transactions) != n {
		persist(s, slotTransactions, s.transactions)
	}
}

// Transactions returns a copy of the collection in chronological order.
func (s *Store) Transactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Transaction{}, s.transactions...)
}

// Transaction returns the transaction with the given id.
func (s *Store) Transaction(id string) (Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Investments

// AddInvestment records a new investment and persists the collection.
func (s *Store) AddInvestment(i Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := addRecord(s.investments, investmentID, i)
	if err != nil {
		return fmt.Errorf("could not add investment: %w", err)
	}
	s.investments = list
	persist(s, slotInvestments, s.investments)
	return nil
}

// UpdateInvestment replaces the investment with the same id.
func (s *Store) UpdateInvestment(i Investment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := updateRecord(s.investments, investmentID, i)
	if !ok {
		return false
	}
	s.investments = list
	persist(s, slotInvestments, s.investments)
	return true
}

// UpdateInvestmentValue marks an investment to its current market
// value, recomputing its growth from the invested principal. It returns
// the revalued investment.
func (s *Store) UpdateInvestmentValue(id string, current Money) (Investment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, inv := range s.investments {
		if inv.ID == id {
			s.investments[idx] = inv.Revalued(current)
			persist(s, slotInvestments, s.investments)
			return s.investments[idx], true
		}
	}
	return Investment{}, false
}

// DeleteInvestment removes the investment with the given id, if any.
func (s *Store) DeleteInvestment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.investments)
	s.investments = deleteRecord(s.investments, investmentID, id)
	if len(s.investments) != n {
		persist(s, slotInvestments, s.investments)
	}
}

// Investments returns a copy of the collection in insertion order.
func (s *Store) Investments() []Investment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Investment{}, s.investments...)
}

// Investment returns the investment with the given id.
func (s *Store) Investment(id string) (Investment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, i := range s.investments {
		if i.ID == id {
			return i, true
		}
	}
	return Investment{}, false
}

// Goals

// AddGoal records a new goal and persists the collection.
func (s *Store) AddGoal(g Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := addRecord(s.goals, goalID, g)
	if err != nil {
		return fmt.Errorf("could not add goal: %w", err)
	}
	s.goals = list
	persist(s, slotGoals, s.goals)
	return nil
}

// UpdateGoal replaces the goal with the same id.
func (s *Store) UpdateGoal(g Goal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := updateRecord(s.goals, goalID, g)
	if !ok {
		return false
	}
	s.goals = list
	persist(s, slotGoals, s.goals)
	return true
}

// DeleteGoal removes the goal with the given id, if any.
func (s *Store) DeleteGoal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.goals)
	s.goals = deleteRecord(s.goals, goalID, id)
	if len(s.goals) != n {
		persist(s, slotGoals, s.goals)
	}
}

// Goals returns a copy of the collection in insertion order.
func (s *Store) Goals() []Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Goal{}, s.goals...)
}

// Goal returns the goal with the given id.
func (s *Store) Goal(id string) (Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// Cards

// AddCard records a card as is. Most callers want
// CreateCardIfNotExists instead; AddCard does not check the name
// against existing cards, only the id.
func (s *Store) AddCard(c Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := addRecord(s.cards, cardID, c)
	if err != nil {
		return fmt.Errorf("could not add card: %w", err)
	}
	s.cards = list
	persist(s, slotCards, s.cards)
	return nil
}

// CreateCardIfNotExists records a card under the given name unless one
// already exists with the same name, compared case-insensitively. It
// returns the surviving card either way. The id is used only when a
// card is actually created.
func (s *Store) CreateCardIfNotExists(id, name string) (Card, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Card{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.cards {
		if c.SameName(name) {
			return c, nil
		}
	}
	card := Card{ID: id, Name: name}
	list, err := addRecord(s.cards, cardID, card)
	if err != nil {
		return Card{}, fmt.Errorf("could not add card: %w", err)
	}
	s.cards = list
	persist(s, slotCards, s.cards)
	return card, nil
}

// DeleteCard removes the card with the given id, if any. Payments that
// reference the card keep their card name; it simply no longer resolves.
func (s *Store) DeleteCard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.cards)
	s.cards = deleteRecord(s.cards, cardID, id)
	if len(s.cards) != n {
		persist(s, slotCards, s.cards)
	}
}

// Cards returns a copy of the collection in insertion order.
func (s *Store) Cards() []Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Card{}, s.cards...)
}

// Payments

// AddPayment records a new payment and persists the collection.
func (s *Store) AddPayment(p Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := addRecord(s.payments, paymentID, p)
	if err != nil {
		return fmt.Errorf("could not add payment: %w", err)
	}
	s.payments = list
	persist(s, slotPayments, s.payments)
	return nil
}

// UpdatePayment replaces the payment with the same id.
func (s *Store) UpdatePayment(p Payment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := updateRecord(s.payments, paymentID, p)
	if !ok {
		return false
	}
	s.payments = list
	persist(s, slotPayments, s.payments)
	return true
}

// TogglePaymentPaid flips the paid flag of the payment with the given
// id and returns the updated payment.
func (s *Store) TogglePaymentPaid(id string) (Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, p := range s.payments {
		if p.ID == id {
			s.payments[idx] = p.TogglePaid()
			persist(s, slotPayments, s.payments)
			return s.payments[idx], true
		}
	}
	return Payment{}, false
}

// DeletePayment removes the payment with the given id, if any.
func (s *Store) DeletePayment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.payments)
	s.payments = deleteRecord(s.payments, paymentID, id)
	if len(s.payments) != n {
		persist(s, slotPayments, s.payments)
	}
}

// Payments returns a copy of the collection in insertion order.
func (s *Store) Payments() []Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Payment{}, s.payments...)
}

// Payment returns the payment with the given id.
func (s *Store) Payment(id string) (Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == id {
			return p, true
		}
	}
	return Payment{}, false
}

// Aggregates

// Income is the sum of all income transactions.
func (s *Store) Income() Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.income()
}

func (s *Store) income() Money {
	var total Money
	for _, t := range s.transactions {
		if t.Type == Income {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Expenses is the sum of all expense transactions, as a positive value.
func (s *Store) Expenses() Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expenses()
}

func (s *Store) expenses() Money {
	var total Money
	for _, t := range s.transactions {
		if t.Type == Expense {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Balance is income minus expenses. It goes negative when spending
// exceeds earnings.
func (s *Store) Balance() Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.income().Sub(s.expenses())
}

// SavingsRate is the share of income not spent, as a rounded percent.
// With no income it is zero, never a division error.
func (s *Store) SavingsRate() Percent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savingsRate()
}

// savingsRate is the single definition of the rate; every consumer
// derives it here so the formula cannot drift.
func (s *Store) savingsRate() Percent {
	income := s.income()
	if income.IsZero() {
		return 0
	}
	return income.Sub(s.expenses()).ShareOf(income).Round()
}

// TotalInvestments is the sum of invested principals, not current
// values: it tracks what was put in, the portfolio listing shows what
// it is worth.
func (s *Store) TotalInvestments() Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalInvestments()
}

func (s *Store) totalInvestments() Money {
	var total Money
	for _, i := range s.investments {
		total = total.Add(i.Value)
	}
	return total
}

// CurrentPortfolioValue is the sum of current values across the
// portfolio.
func (s *Store) CurrentPortfolioValue() Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total Money
	for _, i := range s.investments {
		total = total.Add(i.CurrentValue)
	}
	return total
}
