package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const defaultLogLevel = "info"
const defaultSimAccountNumber = "34567890"
const defaultSimOpeningBalance = "10000"
const defaultSimPin = "1234"
const defaultSimWithdrawals = 100

type Config struct {
	LogLevel          string
	SimAccountNumber  string
	SimOpeningBalance decimal.Decimal
	SimPin            string
	SimWithdrawals    int
}

// Load reads the configuration from the environment. Values from a .env file
// in the working directory are applied first and never override variables
// that are already set.
func Load() (Config, error) {
	_ = godotenv.Load()

	openingBalance, err := decimal.NewFromString(envOrDefault("SIM_OPENING_BALANCE", defaultSimOpeningBalance))
	if err != nil {
		return Config{}, fmt.Errorf("SIM_OPENING_BALANCE must be a valid number: %w", err)
	}

	withdrawals := defaultSimWithdrawals
	if raw := strings.TrimSpace(os.Getenv("SIM_WITHDRAWALS")); raw != "" {
		withdrawals, err = strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("SIM_WITHDRAWALS must be an integer: %w", err)
		}
		if withdrawals <= 0 {
			return Config{}, fmt.Errorf("SIM_WITHDRAWALS must be greater than zero")
		}
	}

	return Config{
		LogLevel:          envOrDefault("LOG_LEVEL", defaultLogLevel),
		SimAccountNumber:  envOrDefault("SIM_ACCOUNT_NUMBER", defaultSimAccountNumber),
		SimOpeningBalance: openingBalance,
		SimPin:            envOrDefault("SIM_PIN", defaultSimPin),
		SimWithdrawals:    withdrawals,
	}, nil
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	return value
}
