package models

import "github.com/shopspring/decimal"

type OpenCardRequest struct {
	AccountNumber  string          `json:"accountNumber"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Pin            string          `json:"pin"`
}

type DepositRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

type WithdrawRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Pin           string          `json:"pin"`
	Amount        decimal.Decimal `json:"amount"`
}

type CardResponse struct {
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}
