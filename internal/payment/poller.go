package payment

import (
	"context"
	"errors"
	"time"

	"github.com/Emersonn00/arevoapp/internal/logger"
	"github.com/Emersonn00/arevoapp/internal/metrics"
)

// AwaitSettlement polls the pending payment status every two seconds until
// it leaves pendente. The ticker is always stopped on return; cancellation
// of ctx (the caller navigating away, or an explicit cancel) ends the loop
// without side effects.
func (s *service) AwaitSettlement(ctx context.Context, userID, templateID, classDate string) (Status, error) {
	ticker := s.clock.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.Chan():
			status, err := s.repo.GetStatus(ctx, userID, templateID, classDate)
			if err != nil {
				if errors.Is(err, ErrPaymentNotFound) {
					return "", err
				}
				// Transient read failures keep the poll alive; the next
				// tick retries.
				logger.Debug("payment status poll failed", "error", err)
				continue
			}
			if status != StatusPending {
				metrics.RecordPayment("", string(status))
				return status, nil
			}
		}
	}
}
