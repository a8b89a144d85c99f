package finance

import (
	"encoding/json"
	"fmt"
	"time"
)

// PaymentStatus is derived from a payment's paid flag, its due day and
// a reference day. It is never stored.
type PaymentStatus int

const (
	Paid PaymentStatus = iota
	Pending
	DueToday
	Overdue
)

func (s PaymentStatus) String() string {
	switch s {
	case Paid:
		return "paid"
	case Pending:
		return "pending"
	case DueToday:
		return "due-today"
	case Overdue:
		return "overdue"
	default:
		return "unknown"
	}
}

// Payment is a bill or subscription due on a fixed day of the month,
// optionally recurring, optionally one slice of an installment plan,
// optionally charged on a named card.
type Payment struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      Money     `json:"amount"`
	DueDay      int       `json:"dueDay"` // day of month, 1..31
	IsRecurring bool      `json:"isRecurring"`
	IsPaid      bool      `json:"isPaid"`
	CreatedAt   time.Time `json:"createdAt"`
	CardName    string    `json:"cardName"`

	IsInstallment      bool `json:"isInstallment"`
	TotalInstallments  int  `json:"totalInstallments"`
	CurrentInstallment int  `json:"currentInstallment"`
}

// Status derives the payment's state on the given reference day.
// A paid payment is paid whatever the day; otherwise the due day
// decides between overdue, due-today and pending.
func (p Payment) Status(on Date) PaymentStatus {
	if p.IsPaid {
		return Paid
	}
	switch {
	case p.DueDay < on.Day():
		return Overdue
	case p.DueDay == on.Day():
		return DueToday
	default:
		return Pending
	}
}

// InstallmentLabel returns the "current/total" display label, or the
// empty string for payments that are not part of an installment plan.
func (p Payment) InstallmentLabel() string {
	if !p.IsInstallment {
		return ""
	}
	return fmt.Sprintf("%d/%d", p.CurrentInstallment, p.TotalInstallments)
}

// TogglePaid returns a copy of the payment with the paid flag flipped.
func (p Payment) TogglePaid() Payment {
	p.IsPaid = !p.IsPaid
	return p
}

func (p Payment) Equal(o Payment) bool {
	return p.ID == o.ID &&
		p.Description == o.Description &&
		p.Amount.Equal(o.Amount) &&
		p.DueDay == o.DueDay &&
		p.IsRecurring == o.IsRecurring &&
		p.IsPaid == o.IsPaid &&
		p.CreatedAt.Equal(o.CreatedAt) &&
		p.CardName == o.CardName &&
		p.IsInstallment == o.IsInstallment &&
		p.TotalInstallments == o.TotalInstallments &&
		p.CurrentInstallment == o.CurrentInstallment
}

// MarshalJSON implements the json.Marshaler interface for Payment with
// a canonical field order. Installment fields and the card name are
// omitted when absent, matching the original record shape.
func (p Payment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("description", p.Description)
	w.Append("amount", p.Amount)
	w.Append("dueDay", p.DueDay)
	w.Append("isRecurring", p.IsRecurring)
	w.Append("isPaid", p.IsPaid)
	w.Append("createdAt", p.CreatedAt.Format(DatetimeFormat))
	w.Optional("cardName", p.CardName)
	w.Optional("isInstallment", p.IsInstallment)
	w.Optional("totalInstallments", p.TotalInstallments)
	w.Optional("currentInstallment", p.CurrentInstallment)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a payment defensively: a record may carry a
// null card name, and non-installment records omit the installment
// fields entirely.
func (p *Payment) UnmarshalJSON(data []byte) error {
	type alias Payment
	var temp struct {
		alias
		CardName *string `json:"cardName"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*p = Payment(temp.alias)
	if temp.CardName != nil {
		p.CardName = *temp.CardName
	}
	return nil
}

var _ json.Marshaler = Payment{}
var _ json.Unmarshaler = (*Payment)(nil)
