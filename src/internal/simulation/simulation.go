// Package simulation drives many concurrent withdrawals against one card and
// checks that the final balance reconciles with what was actually withdrawn.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/api-sage/magic-card/src/internal/domain"
	"github.com/api-sage/magic-card/src/internal/logger"
	"github.com/api-sage/magic-card/src/internal/models"
	"github.com/api-sage/magic-card/src/internal/usecase/service_interfaces"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var ErrUnreconciled = errors.New("final balance does not reconcile with withdrawals")

type Params struct {
	AccountNumber  string
	OpeningBalance decimal.Decimal
	Pin            string
	Withdrawals    int
}

type Result struct {
	RunID          string
	OpeningBalance decimal.Decimal
	Withdrawn      decimal.Decimal
	FinalBalance   decimal.Decimal
	Succeeded      int
	Rejected       int
}

// Run opens (or reuses) the card, issues p.Withdrawals concurrent withdrawals
// of a random whole amount in [1,9], and verifies
// final == opening - sum(successful withdrawals). Overdraft rejections are
// counted in Result.Rejected; any other failure aborts the run.
func Run(ctx context.Context, svc service_interfaces.CardService, p Params) (Result, error) {
	runID := uuid.NewString()

	opened, err := svc.OpenCard(ctx, models.OpenCardRequest{
		AccountNumber:  p.AccountNumber,
		OpeningBalance: p.OpeningBalance,
		Pin:            p.Pin,
	})
	if err != nil {
		return Result{RunID: runID}, fmt.Errorf("open card: %w", err)
	}
	opening := opened.Data.Balance

	logger.Info("simulation started", logger.Fields{
		"runId":          runID,
		"accountNumber":  p.AccountNumber,
		"openingBalance": opening,
		"withdrawals":    p.Withdrawals,
	})

	var (
		mu        sync.Mutex
		withdrawn = decimal.Zero
		succeeded int
		rejected  int
	)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < p.Withdrawals; i++ {
		amount := decimal.NewFromInt(int64(rand.Intn(9) + 1))
		g.Go(func() error {
			resp, err := svc.Withdraw(gctx, models.WithdrawRequest{
				AccountNumber: p.AccountNumber,
				Pin:           p.Pin,
				Amount:        amount,
			})

			mu.Lock()
			defer mu.Unlock()

			if errors.Is(err, domain.ErrInsufficientBalance) {
				rejected++
				return nil
			}
			if err != nil {
				return err
			}

			withdrawn = withdrawn.Add(amount)
			succeeded++
			logger.Info("simulation withdrawal", logger.Fields{
				"runId":   runID,
				"amount":  amount,
				"balance": resp.Data.Balance,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{RunID: runID}, fmt.Errorf("withdraw: %w", err)
	}

	final, err := svc.GetBalance(ctx, p.AccountNumber)
	if err != nil {
		return Result{RunID: runID}, fmt.Errorf("get balance: %w", err)
	}

	result := Result{
		RunID:          runID,
		OpeningBalance: opening,
		Withdrawn:      withdrawn,
		FinalBalance:   final.Data.Balance,
		Succeeded:      succeeded,
		Rejected:       rejected,
	}

	logger.Info("simulation finished", logger.Fields{
		"runId":        runID,
		"withdrawn":    result.Withdrawn,
		"finalBalance": result.FinalBalance,
		"succeeded":    result.Succeeded,
		"rejected":     result.Rejected,
	})

	if !opening.Sub(withdrawn).Equal(result.FinalBalance) {
		return result, fmt.Errorf("%w: expected %s, got %s", ErrUnreconciled, opening.Sub(withdrawn), result.FinalBalance)
	}

	return result, nil
}
