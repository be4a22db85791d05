package memory

import (
	"strings"
	"sync"

	"github.com/api-sage/magic-card/src/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountRegistry hands out one *domain.Account per account number for the
// life of the process. Creation goes through sync.Map.LoadOrStore so that
// unrelated account numbers never contend on a registry-wide lock.
type AccountRegistry struct {
	accounts sync.Map // map[string]*domain.Account
}

func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{}
}

// GetOrCreate returns the account registered under accountNumber, creating it
// with openingBalance and pin on first access. For an existing account the
// supplied balance and pin are ignored. Inputs are validated before the map is
// touched, so a rejected call never creates an account.
func (r *AccountRegistry) GetOrCreate(accountNumber string, openingBalance decimal.Decimal, pin string) (*domain.Account, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return nil, domain.ErrAccountNumberRequired
	}
	if openingBalance.IsNegative() {
		return nil, domain.ErrNegativeOpeningBalance
	}
	if err := domain.ValidatePin(pin); err != nil {
		return nil, err
	}

	if existing, ok := r.accounts.Load(accountNumber); ok {
		return existing.(*domain.Account), nil
	}

	// Only one candidate wins LoadOrStore; the others are dropped unobserved.
	candidate := domain.NewAccount(accountNumber, openingBalance, strings.TrimSpace(pin))
	actual, _ := r.accounts.LoadOrStore(accountNumber, candidate)
	return actual.(*domain.Account), nil
}

func (r *AccountRegistry) Get(accountNumber string) (*domain.Account, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return nil, domain.ErrAccountNumberRequired
	}

	account, ok := r.accounts.Load(accountNumber)
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return account.(*domain.Account), nil
}
