package payment

import "context"

type Repository interface {
	// UpsertPending creates or refreshes the pending row for
	// (user, template, date), resetting method, amount and status.
	UpsertPending(ctx context.Context, userID, templateID, classDate string, method Method, amountCents int64) (*PendingPayment, error)
	GetStatus(ctx context.Context, userID, templateID, classDate string) (Status, error)
	MarkPaid(ctx context.Context, userID, templateID, classDate string) error
	// CancelPending flips pendente to cancelado; a no-op for rows already
	// settled or cancelled.
	CancelPending(ctx context.Context, userID, templateID, classDate string) error
	// ChargeCredits calls the server-side procedure that debits the profile
	// balance and marks the pending payment paid in one transaction.
	ChargeCredits(ctx context.Context, userID, templateID, classDate string) error
}
