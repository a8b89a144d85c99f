package finance

import (
	"errors"
	"fmt"
)

// Form-level checks shared by every consumer that builds records from
// user input. The store itself trusts its inputs once they arrive; only
// identity rules (id collisions, card names) are enforced there.

// ValidateAmount checks that a monetary amount is strictly positive.
func ValidateAmount(m Money) error {
	if !m.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", m)
	}
	return nil
}

// ValidateDueDay checks that a payment due day is a valid day of month.
func ValidateDueDay(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("due day must be between 1 and 31, got %d", day)
	}
	return nil
}

// ValidateInstallments checks the installment plan invariants: at least
// two slices, and the current slice within the plan.
func ValidateInstallments(current, total int) error {
	if total < 2 {
		return fmt.Errorf("an installment plan needs at least 2 installments, got %d", total)
	}
	if current < 1 || current > total {
		return fmt.Errorf("current installment %d is outside the plan 1..%d", current, total)
	}
	return nil
}

// ValidateInvestmentType checks the type against the known set.
func ValidateInvestmentType(typ string) error {
	for _, t := range InvestmentTypes {
		if t == typ {
			return nil
		}
	}
	return fmt.Errorf("unknown investment type %q", typ)
}

// ErrEmptyName is returned when a record that requires a name is
// created without one.
var ErrEmptyName = errors.New("name must not be empty")
