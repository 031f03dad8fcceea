package payment

import (
	"context"
	"errors"
	"strconv"

	"github.com/Emersonn00/arevoapp/internal/logger"
	"github.com/Emersonn00/arevoapp/internal/metrics"

	"github.com/jonboulle/clockwork"
)

type Service interface {
	// StartCheckout creates or refreshes the pending payment record for a
	// pay-now enrollment.
	StartCheckout(ctx context.Context, userID, templateID, classDate string, method Method, amountCents int64) (*PendingPayment, error)
	Status(ctx context.Context, userID, templateID, classDate string) (Status, error)
	// AwaitSettlement polls the pending payment until it leaves pendente or
	// the context is cancelled.
	AwaitSettlement(ctx context.Context, userID, templateID, classDate string) (Status, error)
	Cancel(ctx context.Context, userID, templateID, classDate string) error
	// PayWithCredits debits the profile balance and marks the payment paid
	// in a single server-side transaction.
	PayWithCredits(ctx context.Context, userID, templateID, classDate string) error
	// PayWithCard runs the payment-sheet boundary; settlement itself lands
	// asynchronously via the provider webhook.
	PayWithCard(ctx context.Context, userID, templateID, classDate string, amountCents int64) error
	// ConfirmPaid records a settlement reported by the provider webhook.
	ConfirmPaid(ctx context.Context, userID, templateID, classDate string) error
}

type service struct {
	repo  Repository
	sheet Sheet
	clock clockwork.Clock
}

func NewService(repo Repository, sheet Sheet, clock clockwork.Clock) Service {
	return &service{
		repo:  repo,
		sheet: sheet,
		clock: clock,
	}
}

func (s *service) StartCheckout(ctx context.Context, userID, templateID, classDate string, method Method, amountCents int64) (*PendingPayment, error) {
	if !ValidMethod(method) {
		return nil, errors.New("invalid payment method")
	}

	p, err := s.repo.UpsertPending(ctx, userID, templateID, classDate, method, amountCents)
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(string(method), string(StatusPending))
	return p, nil
}

func (s *service) Status(ctx context.Context, userID, templateID, classDate string) (Status, error) {
	return s.repo.GetStatus(ctx, userID, templateID, classDate)
}

func (s *service) Cancel(ctx context.Context, userID, templateID, classDate string) error {
	if err := s.repo.CancelPending(ctx, userID, templateID, classDate); err != nil {
		return err
	}
	metrics.RecordPayment("", string(StatusCancelled))
	return nil
}

func (s *service) PayWithCredits(ctx context.Context, userID, templateID, classDate string) error {
	if err := s.repo.ChargeCredits(ctx, userID, templateID, classDate); err != nil {
		metrics.RecordPayment(string(MethodCredits), string(StatusFailed))
		return err
	}
	metrics.RecordPayment(string(MethodCredits), string(StatusPaid))
	return nil
}

func (s *service) ConfirmPaid(ctx context.Context, userID, templateID, classDate string) error {
	if err := s.repo.MarkPaid(ctx, userID, templateID, classDate); err != nil {
		return err
	}
	metrics.RecordPayment("", string(StatusPaid))
	return nil
}

func (s *service) PayWithCard(ctx context.Context, userID, templateID, classDate string, amountCents int64) error {
	clientSecret, err := s.sheet.CreateIntent(ctx, amountCents, map[string]string{
		"user_id":   userID,
		"aula_id":   templateID,
		"data_aula": classDate,
		"amount":    strconv.FormatInt(amountCents, 10),
	})
	if err != nil {
		return err
	}

	if err := s.sheet.Init(ctx, clientSecret); err != nil {
		return err
	}
	if err := s.sheet.Present(ctx); err != nil {
		logger.Error("payment sheet dismissed or failed", "user_id", userID, "error", err)
		return err
	}

	return nil
}
