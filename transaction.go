package finance

import (
	"encoding/json"
	"fmt"
)

// TransactionType tells whether a transaction adds to or subtracts from
// the balance. The amount itself is always stored unsigned.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single income or expense event.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      Money           `json:"amount"`
	Date        Date            `json:"date"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
}

// NewTransaction creates a new Transaction.
func NewTransaction(id, description string, amount Money, day Date, category string, typ TransactionType) Transaction {
	return Transaction{
		ID:          id,
		Description: description,
		Amount:      amount,
		Date:        day,
		Category:    category,
		Type:        typ,
	}
}

// Signed returns the transaction's contribution to the balance: the
// amount for income, its negation for expenses. The sign is always
// derived from the type, never stored.
func (t Transaction) Signed() Money {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Date == o.Date &&
		t.Category == o.Category &&
		t.Type == o.Type
}

// MarshalJSON implements the json.Marshaler interface for Transaction
// with a canonical field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("date", t.Date)
	w.Append("category", t.Category)
	w.Append("type", t.Type)
	return w.MarshalJSON()
}

var _ json.Marshaler = Transaction{}
