package payment

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Emersonn00/arevoapp/internal/logger"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type MockPaymentRepo struct{ mock.Mock }

func (m *MockPaymentRepo) UpsertPending(ctx context.Context, userID, templateID, classDate string, method Method, amountCents int64) (*PendingPayment, error) {
	args := m.Called(ctx, userID, templateID, classDate, method, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PendingPayment), args.Error(1)
}

func (m *MockPaymentRepo) GetStatus(ctx context.Context, userID, templateID, classDate string) (Status, error) {
	args := m.Called(ctx, userID, templateID, classDate)
	return args.Get(0).(Status), args.Error(1)
}

func (m *MockPaymentRepo) MarkPaid(ctx context.Context, userID, templateID, classDate string) error {
	return m.Called(ctx, userID, templateID, classDate).Error(0)
}

func (m *MockPaymentRepo) CancelPending(ctx context.Context, userID, templateID, classDate string) error {
	return m.Called(ctx, userID, templateID, classDate).Error(0)
}

func (m *MockPaymentRepo) ChargeCredits(ctx context.Context, userID, templateID, classDate string) error {
	return m.Called(ctx, userID, templateID, classDate).Error(0)
}

const (
	pollUserID = "7f6f3c1a-9a0e-4d5b-8c2d-0e1f2a3b4c5d"
	pollClass  = "2b1e4a6c-3f5d-4e7a-9c8b-1a2b3c4d5e6f"
	pollDate   = "2024-06-10"
)

// advanceUntil feeds two-second ticks to the poll loop, pacing each advance
// on the polled channel so no tick is lost.
func advanceUntil(clock *clockwork.FakeClock, polled <-chan struct{}, done <-chan struct{}, ticks int) {
	for i := 0; i < ticks; i++ {
		clock.Advance(2 * time.Second)
		select {
		case <-polled:
		case <-done:
			return
		}
	}
}

func TestAwaitSettlementReturnsOnPaid(t *testing.T) {
	repo := new(MockPaymentRepo)
	clock := clockwork.NewFakeClock()
	svc := NewService(repo, DisabledSheet{}, clock).(*service)

	polled := make(chan struct{}, 4)
	notify := func(mock.Arguments) { polled <- struct{}{} }

	repo.On("GetStatus", mock.Anything, pollUserID, pollClass, pollDate).
		Return(StatusPending, nil).Once().Run(notify)
	repo.On("GetStatus", mock.Anything, pollUserID, pollClass, pollDate).
		Return(StatusPaid, nil).Once().Run(notify)

	done := make(chan struct{})
	var status Status
	var err error
	go func() {
		status, err = svc.AwaitSettlement(context.Background(), pollUserID, pollClass, pollDate)
		close(done)
	}()

	clock.BlockUntil(1)
	advanceUntil(clock, polled, done, 2)

	<-done
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, status)
	repo.AssertNumberOfCalls(t, "GetStatus", 2)
}

func TestAwaitSettlementKeepsPollingThroughTransientErrors(t *testing.T) {
	repo := new(MockPaymentRepo)
	clock := clockwork.NewFakeClock()
	svc := NewService(repo, DisabledSheet{}, clock).(*service)

	polled := make(chan struct{}, 4)
	notify := func(mock.Arguments) { polled <- struct{}{} }

	repo.On("GetStatus", mock.Anything, pollUserID, pollClass, pollDate).
		Return(Status(""), errors.New("connection reset")).Once().Run(notify)
	repo.On("GetStatus", mock.Anything, pollUserID, pollClass, pollDate).
		Return(StatusFailed, nil).Once().Run(notify)

	done := make(chan struct{})
	var status Status
	var err error
	go func() {
		status, err = svc.AwaitSettlement(context.Background(), pollUserID, pollClass, pollDate)
		close(done)
	}()

	clock.BlockUntil(1)
	advanceUntil(clock, polled, done, 2)

	<-done
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, status)
}

func TestAwaitSettlementStopsOnCancel(t *testing.T) {
	repo := new(MockPaymentRepo)
	clock := clockwork.NewFakeClock()
	svc := NewService(repo, DisabledSheet{}, clock).(*service)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	var err error
	go func() {
		_, err = svc.AwaitSettlement(ctx, pollUserID, pollClass, pollDate)
		close(done)
	}()

	clock.BlockUntil(1)
	cancel()

	<-done
	assert.ErrorIs(t, err, context.Canceled)
	repo.AssertNotCalled(t, "GetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAwaitSettlementStopsWhenPaymentVanishes(t *testing.T) {
	repo := new(MockPaymentRepo)
	clock := clockwork.NewFakeClock()
	svc := NewService(repo, DisabledSheet{}, clock).(*service)

	polled := make(chan struct{}, 2)
	repo.On("GetStatus", mock.Anything, pollUserID, pollClass, pollDate).
		Return(Status(""), ErrPaymentNotFound).Once().
		Run(func(mock.Arguments) { polled <- struct{}{} })

	done := make(chan struct{})
	var err error
	go func() {
		_, err = svc.AwaitSettlement(context.Background(), pollUserID, pollClass, pollDate)
		close(done)
	}()

	clock.BlockUntil(1)
	advanceUntil(clock, polled, done, 1)

	<-done
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
