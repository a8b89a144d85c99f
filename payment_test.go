package finance

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPaymentStatus(t *testing.T) {
	tests := []struct {
		name   string
		dueDay int
		paid   bool
		on     Date
		want   PaymentStatus
	}{
		{"before due day", 10, false, NewDate(2026, 8, 5), Pending},
		{"on due day", 10, false, NewDate(2026, 8, 10), DueToday},
		{"after due day", 10, false, NewDate(2026, 8, 15), Overdue},
		{"paid before due day", 10, true, NewDate(2026, 8, 5), Paid},
		{"paid after due day", 10, true, NewDate(2026, 8, 15), Paid},
		{"due first of month", 1, false, NewDate(2026, 8, 1), DueToday},
		{"due last possible day", 31, false, NewDate(2026, 8, 30), Pending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payment{ID: "p", Description: "Conta", Amount: M(100), DueDay: tt.dueDay, IsPaid: tt.paid}
			if got := p.Status(tt.on); got != tt.want {
				t.Errorf("Status(%s) = %s, want %s", tt.on, got, tt.want)
			}
		})
	}
}

func TestPaymentTogglePaid(t *testing.T) {
	p := Payment{ID: "p", IsPaid: false}
	if got := p.TogglePaid(); !got.IsPaid {
		t.Error("TogglePaid() from unpaid: still unpaid")
	}
	// value semantics: the original is untouched.
	if p.IsPaid {
		t.Error("TogglePaid() mutated its receiver")
	}
	if got := p.TogglePaid().TogglePaid(); got.IsPaid {
		t.Error("double TogglePaid() did not return to unpaid")
	}
}

func TestPaymentInstallmentLabel(t *testing.T) {
	p := Payment{ID: "p", IsInstallment: true, CurrentInstallment: 3, TotalInstallments: 12}
	if got, want := p.InstallmentLabel(), "3/12"; got != want {
		t.Errorf("InstallmentLabel() = %q, want %q", got, want)
	}
	if got := (Payment{ID: "p"}).InstallmentLabel(); got != "" {
		t.Errorf("InstallmentLabel() on plain payment = %q, want empty", got)
	}
}

func TestPaymentDecodeNullCardName(t *testing.T) {
	// older snapshots persisted an explicit null for cardless payments.
	raw := `{"id":"p1","description":"Internet","amount":99.9,"dueDay":20,"isRecurring":true,"isPaid":false,"createdAt":"2026-08-01T12:00:00Z","cardName":null}`
	var p Payment
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatal(err)
	}
	if p.CardName != "" {
		t.Errorf("CardName = %q, want empty", p.CardName)
	}
	if got, want := p.Amount, M(99.9); !got.Equal(want) {
		t.Errorf("Amount = %s, want %s", got, want)
	}
	if p.IsInstallment || p.TotalInstallments != 0 {
		t.Error("installment fields should default to zero when absent")
	}
}

func TestPaymentMarshalOmitsAbsentFields(t *testing.T) {
	p := Payment{
		ID: "p1", Description: "Luz", Amount: M(150), DueDay: 12,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"p1","description":"Luz","amount":150,"dueDay":12,"isRecurring":false,"isPaid":false,"createdAt":"2026-08-01T12:00:00Z"}`
	if string(data) != want {
		t.Errorf("Marshal = %s\nwant      %s", data, want)
	}
}
