package payment

import (
	"context"
	"errors"
)

// Sheet is the boundary to the card payment-sheet SDK. The intent is
// created against the payment provider, the sheet is initialized with the
// returned client secret and presented to the user; settlement lands via a
// provider webhook that marks the pending payment paid. Implementations
// live outside this module.
type Sheet interface {
	CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (clientSecret string, err error)
	Init(ctx context.Context, clientSecret string) error
	Present(ctx context.Context) error
}

var ErrCardNotConfigured = errors.New("card payments are not configured")

// DisabledSheet rejects card checkouts until a provider client is wired in.
// Pix and credits settle without it, and webhook settlement still works for
// intents created elsewhere.
type DisabledSheet struct{}

func (DisabledSheet) CreateIntent(context.Context, int64, map[string]string) (string, error) {
	return "", ErrCardNotConfigured
}

func (DisabledSheet) Init(context.Context, string) error { return ErrCardNotConfigured }

func (DisabledSheet) Present(context.Context) error { return ErrCardNotConfigured }
