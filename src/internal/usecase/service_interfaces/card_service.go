package service_interfaces

import (
	"context"

	"github.com/api-sage/magic-card/src/internal/commons"
	"github.com/api-sage/magic-card/src/internal/models"
)

type CardService interface {
	OpenCard(ctx context.Context, req models.OpenCardRequest) (commons.Response[models.CardResponse], error)
	GetBalance(ctx context.Context, accountNumber string) (commons.Response[models.CardResponse], error)
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.CardResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.CardResponse], error)
}
