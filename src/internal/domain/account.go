package domain

import (
	"crypto/subtle"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Account is a stored-value card. The balance is the only mutable state and is
// guarded by mu; accountNumber and pin never change after construction.
type Account struct {
	accountNumber string
	pin           string

	mu      sync.Mutex
	balance decimal.Decimal
}

// NewAccount does not validate its inputs; accounts are meant to be created
// through an AccountRegistry, which does.
func NewAccount(accountNumber string, openingBalance decimal.Decimal, pin string) *Account {
	return &Account{
		accountNumber: accountNumber,
		pin:           pin,
		balance:       openingBalance,
	}
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrNonPositiveAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Withdraw checks the PIN outside the lock. The stored PIN is immutable, so
// the comparison cannot race with a concurrent deposit or withdrawal.
func (a *Account) Withdraw(pin string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrNonPositiveAmount
	}
	if !a.pinMatches(pin) {
		return decimal.Zero, ErrInvalidPin
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	remaining := a.balance.Sub(amount)
	if remaining.IsNegative() {
		return decimal.Zero, ErrInsufficientBalance
	}

	a.balance = remaining
	return a.balance, nil
}

func (a *Account) pinMatches(pin string) bool {
	supplied := strings.ToLower(strings.TrimSpace(pin))
	stored := strings.ToLower(a.pin)
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(stored)) == 1
}
