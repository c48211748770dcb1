package kernel

import (
	"fmt"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money values must be created using NewMoney, MoneyFromString, or ZeroMoney constructors.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney constructors")

// Money represents a non-negative monetary amount used for unit prices and
// order totals. It wraps shopspring/decimal to avoid floating point drift in
// price arithmetic.
//
// Money is an immutable value object. The zero value of Money is invalid and
// will fail validation - use constructors to create instances. A constructed
// Money with amount 0 is valid (a unit price of zero is allowed).
//
// Example:
//
//	price, err := kernel.MoneyFromString("5.00")
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.MulQuantity(10)
//	fmt.Println(total) // Output: 50
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// The amount must not be negative.
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a Money value from its decimal string representation,
// e.g. "5.00" or "129.99". Returns an error if the string is not a valid
// decimal or the parsed amount is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney creates a valid Money value of zero.
// Used as the identity element when summing line totals.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// MulQuantity multiplies the amount by an integer quantity.
// Used to compute line totals as quantity x unit price.
func (m Money) MulQuantity(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares two Money values for numeric equality.
// "5" and "5.00" are considered equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// Validate checks that the Money value was properly constructed and is not negative.
func (m Money) Validate() error {
	if err := m.guard.Validate(ErrMoneyIsNotConstructed); err != nil {
		return err
	}
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", m.amount))
	}
	return nil
}
