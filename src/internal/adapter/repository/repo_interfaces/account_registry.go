package repo_interfaces

import (
	"github.com/api-sage/magic-card/src/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountRegistry interface {
	GetOrCreate(accountNumber string, openingBalance decimal.Decimal, pin string) (*domain.Account, error)
	Get(accountNumber string) (*domain.Account, error)
}
