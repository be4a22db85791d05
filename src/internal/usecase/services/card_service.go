package services

import (
	"context"
	"errors"

	"github.com/api-sage/magic-card/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/magic-card/src/internal/commons"
	"github.com/api-sage/magic-card/src/internal/domain"
	"github.com/api-sage/magic-card/src/internal/logger"
	"github.com/api-sage/magic-card/src/internal/metrics"
	"github.com/api-sage/magic-card/src/internal/models"
	"github.com/shopspring/decimal"
)

type CardService struct {
	registry repo_interfaces.AccountRegistry
	metrics  *metrics.Collector
}

func NewCardService(registry repo_interfaces.AccountRegistry, collector *metrics.Collector) *CardService {
	return &CardService{
		registry: registry,
		metrics:  collector,
	}
}

func (s *CardService) OpenCard(ctx context.Context, req models.OpenCardRequest) (commons.Response[models.CardResponse], error) {
	logger.Info("card service open card request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := ctx.Err(); err != nil {
		return s.fail(metrics.OperationOpen, "failed to open card", err, nil)
	}

	account, err := s.registry.GetOrCreate(req.AccountNumber, req.OpeningBalance, req.Pin)
	if err != nil {
		return s.fail(metrics.OperationOpen, "failed to open card", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
	}

	return s.succeed(metrics.OperationOpen, "card opened successfully", account.AccountNumber(), account.Balance())
}

func (s *CardService) GetBalance(ctx context.Context, accountNumber string) (commons.Response[models.CardResponse], error) {
	logger.Info("card service get balance request", logger.Fields{
		"accountNumber": accountNumber,
	})

	if err := ctx.Err(); err != nil {
		return s.fail(metrics.OperationBalance, "failed to get balance", err, nil)
	}

	account, err := s.registry.Get(accountNumber)
	if err != nil {
		return s.fail(metrics.OperationBalance, "failed to get balance", err, logger.Fields{
			"accountNumber": accountNumber,
		})
	}

	return s.succeed(metrics.OperationBalance, "balance fetched successfully", account.AccountNumber(), account.Balance())
}

func (s *CardService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.CardResponse], error) {
	logger.Info("card service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := ctx.Err(); err != nil {
		return s.fail(metrics.OperationDeposit, "failed to deposit", err, nil)
	}

	account, err := s.registry.Get(req.AccountNumber)
	if err != nil {
		return s.fail(metrics.OperationDeposit, "failed to deposit", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
	}

	balance, err := account.Deposit(req.Amount)
	if err != nil {
		return s.fail(metrics.OperationDeposit, "failed to deposit", err, logger.Fields{
			"accountNumber": req.AccountNumber,
			"amount":        req.Amount,
		})
	}

	return s.succeed(metrics.OperationDeposit, "funds deposited successfully", account.AccountNumber(), balance)
}

func (s *CardService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.CardResponse], error) {
	logger.Info("card service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := ctx.Err(); err != nil {
		return s.fail(metrics.OperationWithdraw, "failed to withdraw", err, nil)
	}

	account, err := s.registry.Get(req.AccountNumber)
	if err != nil {
		return s.fail(metrics.OperationWithdraw, "failed to withdraw", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
	}

	balance, err := account.Withdraw(req.Pin, req.Amount)
	if err != nil {
		return s.fail(metrics.OperationWithdraw, "failed to withdraw", err, logger.Fields{
			"accountNumber": req.AccountNumber,
			"amount":        req.Amount,
		})
	}

	return s.succeed(metrics.OperationWithdraw, "funds withdrawn successfully", account.AccountNumber(), balance)
}

func (s *CardService) succeed(operation string, message string, accountNumber string, balance decimal.Decimal) (commons.Response[models.CardResponse], error) {
	s.metrics.Observe(operation, nil)

	response := models.CardResponse{
		AccountNumber: accountNumber,
		Balance:       balance,
	}

	logger.Info("card service "+operation+" success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse(message, response), nil
}

func (s *CardService) fail(operation string, message string, err error, fields logger.Fields) (commons.Response[models.CardResponse], error) {
	s.metrics.Observe(operation, err)
	outcome := metrics.Outcome(err)

	if outcome == metrics.OutcomeError {
		logger.Error("card service "+operation+" failed", err, fields)
	} else {
		logger.Info("card service "+operation+" rejected", mergeFields(fields, logger.Fields{
			"reason": err.Error(),
		}))
	}

	if errors.Is(err, domain.ErrRecordNotFound) {
		return commons.ErrorResponse[models.CardResponse](outcome, "Card not found"), err
	}

	return commons.ErrorResponse[models.CardResponse](outcome, message, err.Error()), err
}

func mergeFields(base logger.Fields, extra logger.Fields) logger.Fields {
	out := logger.Fields{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
