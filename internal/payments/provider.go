// Package payments abstracts payment intent creation behind a small
// provider interface so the checkout endpoints work the same whether a
// real Stripe key is configured or the simulated provider is in play.
package payments

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Status enumerates the normalised payment intent states shared across providers.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

var (
	ErrInvalidAmount   = errors.New("payments: amount must be positive")
	ErrInvalidCurrency = errors.New("payments: currency is required")
	ErrIntentNotFound  = errors.New("payments: intent not found")
)

// IntentRequest captures the payload required to create a payment intent.
type IntentRequest struct {
	Amount         int64
	Currency       string
	ReceiptEmail   string
	IdempotencyKey string
	Metadata       map[string]string
}

// Intent describes a created payment intent returned to the client.
type Intent struct {
	ID           string
	Provider     string
	ClientSecret string
	Status       Status
	Amount       int64
	Currency     string
	CreatedAt    time.Time
}

// Provider is the contract payment adapters implement.
type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (Intent, error)
	LookupIntent(ctx context.Context, id string) (Intent, error)
}

// Logger is the logging hook shared by provider implementations.
type Logger func(ctx context.Context, event string, fields map[string]any)

func validateIntentRequest(req IntentRequest) error {
	if req.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(req.Currency) == "" {
		return ErrInvalidCurrency
	}
	return nil
}
