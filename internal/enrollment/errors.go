package enrollment

import (
	"errors"
	"fmt"
	"time"
)

// Rejection reasons of the enrollment workflow. The commit step maps store
// constraint failures onto the same set, so callers see one taxonomy
// regardless of which check caught the problem first.
var (
	ErrSessionExpired    = errors.New("session expired, sign in again")
	ErrClassNotFound     = errors.New("class not found")
	ErrNotYetBookable    = errors.New("booking has not opened for this class yet")
	ErrClassFull         = errors.New("class is full")
	ErrAlreadySubscribed = errors.New("already enrolled in this class")
	ErrArenaDayLimit     = errors.New("already enrolled at this arena on this date")
	ErrWeeklyLimit       = errors.New("weekly enrollment limit reached")
	ErrPermissionDenied  = errors.New("enrollment not permitted")
	ErrPaymentRequired   = errors.New("payment required before enrollment")
	ErrRemoteUnavailable = errors.New("store temporarily unavailable")

	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrPolicyRejected is the raw write-time policy rejection. The workflow
	// never returns it; it re-reads the ban status to report the real cause.
	ErrPolicyRejected = errors.New("insert rejected by store policy")
)

// BanError rejects enrollment at an arena the user is banned from.
// Until is nil for indefinite bans.
type BanError struct {
	Until *time.Time
}

func (e *BanError) Error() string {
	if e.Until == nil {
		return "banned from this arena"
	}
	return fmt.Sprintf("banned from this arena until %s", e.Until.Format("2006-01-02"))
}
