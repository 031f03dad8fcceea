package enrollment

import (
	"context"
	"errors"

	"github.com/Emersonn00/arevoapp/internal/arena"
	"github.com/Emersonn00/arevoapp/internal/capacity"
	"github.com/Emersonn00/arevoapp/internal/class"
	"github.com/Emersonn00/arevoapp/internal/logger"
	"github.com/Emersonn00/arevoapp/internal/metrics"
	"github.com/Emersonn00/arevoapp/internal/payment"
	"github.com/Emersonn00/arevoapp/internal/user"
)

type Service interface {
	// Enroll runs the full enrollment workflow for one class instance. It
	// returns a workflow error on rejection, or a Result that either carries
	// the created enrollment or asks for a wellness program choice.
	Enroll(ctx context.Context, userID string, req EnrollRequest) (*Result, error)
	Cancel(ctx context.Context, userID, classID string) error
	ListMine(ctx context.Context, userID string) ([]Enrollment, error)
}

type templateSource interface {
	GetTemplateByID(ctx context.Context, id string) (*class.Template, error)
}

type banSource interface {
	BanStatus(ctx context.Context, userID, arenaID string) (*arena.BanStatus, error)
}

type profileSource interface {
	GetByID(ctx context.Context, userID string) (*user.User, error)
}

type paymentSource interface {
	Status(ctx context.Context, userID, templateID, classDate string) (payment.Status, error)
}

// Notifier delivers enrollment emails. Delivery failures never fail the
// enrollment itself.
type Notifier interface {
	EnrollmentConfirmed(ctx context.Context, to, studentName, classTitle, classDate, timeOfDay string) error
	EnrollmentCancelled(ctx context.Context, to, studentName, classTitle, classDate string) error
}

type service struct {
	repo      Repository
	templates templateSource
	bans      banSource
	profiles  profileSource
	capacity  capacity.Client
	sched     *class.Schedule
	payments  paymentSource
	notifier  Notifier
}

func NewService(repo Repository, templates templateSource, bans banSource, profiles profileSource, cap capacity.Client, sched *class.Schedule, payments paymentSource, notifier Notifier) Service {
	return &service{
		repo:      repo,
		templates: templates,
		bans:      bans,
		profiles:  profiles,
		capacity:  cap,
		sched:     sched,
		payments:  payments,
		notifier:  notifier,
	}
}

func (s *service) reject(m *Machine, err error) (*Result, error) {
	m.Fail(err)
	metrics.RecordEnrollment(m.Outcome(), "")
	return nil, err
}

func (s *service) Enroll(ctx context.Context, userID string, req EnrollRequest) (*Result, error) {
	m := NewMachine()

	ref := class.ParseRef(req.ClassID)
	if !ref.IsInstance() {
		return s.reject(m, ErrClassNotFound)
	}

	// Identity: the profile must still resolve; a vanished profile means the
	// session outlived its account state.
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return s.reject(m, ErrSessionExpired)
	}
	m.Pass()

	// Window: the booking window must be open right now, regardless of what
	// the listing said when the user tapped.
	tmpl, err := s.templates.GetTemplateByID(ctx, ref.TemplateID)
	if err != nil || !tmpl.Active {
		return s.reject(m, ErrClassNotFound)
	}
	if !s.sched.BookingOpen(ref.Date, tmpl.TimeOfDay) {
		return s.reject(m, ErrNotYetBookable)
	}
	m.Pass()

	// Arena: the class must be bound to an arena for the conflict and ban
	// checks to have a subject.
	if tmpl.ArenaID == "" {
		logger.Error("class template without arena", "class_id", tmpl.ID)
		return s.reject(m, ErrClassNotFound)
	}
	m.Pass()

	// Capacity: a full class short-circuits before any further store work.
	// The aggregation is advisory; when it fails the attempt proceeds with
	// an unknown snapshot and the insert trigger still enforces the seat
	// limit at commit.
	snaps, err := s.capacity.ForDate(ctx, []string{ref.TemplateID}, ref.Date)
	if err != nil {
		metrics.RecordCapacityLookup("error")
		logger.Error("capacity aggregation failed, continuing without snapshot",
			"class_id", ref.TemplateID, "class_date", ref.Date, "error", err)
		snaps = nil
	} else {
		metrics.RecordCapacityLookup("ok")
	}
	if snap, ok := snaps[ref.TemplateID]; ok && snap.IsFull {
		return s.reject(m, ErrClassFull)
	}
	m.Pass()

	// Conflict: one enrollment per arena per day.
	conflict, err := s.repo.HasSameArenaEnrollment(ctx, userID, tmpl.ArenaID, ref.Date, ref.TemplateID)
	if err != nil {
		return s.reject(m, ErrRemoteUnavailable)
	}
	if conflict {
		return s.reject(m, ErrArenaDayLimit)
	}
	m.Pass()

	// Payment: resolve the wellness program, pausing when the class accepts
	// both and the user has not chosen yet.
	program, needsChoice := payment.ResolveProgram(
		tmpl.AcceptsTotalPass, tmpl.AcceptsWellhub,
		req.Program, payment.Program(profile.WellnessProgram))
	if needsChoice {
		m.Pause()
		metrics.RecordEnrollment(m.Outcome(), "")
		return &Result{NeedsProgramChoice: true}, nil
	}

	// A priced class with no wellness program settles through checkout
	// before the enrollment commits. Program-covered classes settle out of
	// band with the provider.
	if program == payment.ProgramNone && tmpl.PriceCents != nil && *tmpl.PriceCents > 0 {
		status, perr := s.payments.Status(ctx, userID, ref.TemplateID, ref.Date)
		if perr != nil {
			if errors.Is(perr, payment.ErrPaymentNotFound) {
				return s.reject(m, ErrPaymentRequired)
			}
			return s.reject(m, ErrRemoteUnavailable)
		}
		if status != payment.StatusPaid {
			return s.reject(m, ErrPaymentRequired)
		}
	}
	m.Pass()

	// Ban.
	ban, err := s.bans.BanStatus(ctx, userID, tmpl.ArenaID)
	if err != nil {
		return s.reject(m, ErrRemoteUnavailable)
	}
	if ban.Banned {
		return s.reject(m, &BanError{Until: ban.BanEnd})
	}
	m.Pass()

	// Commit. Constraint failures arrive mapped; a policy rejection means
	// the ban landed between the check and the insert, so re-read it.
	created, err := s.repo.Create(ctx, &Enrollment{
		UserID:       userID,
		TemplateID:   ref.TemplateID,
		ClassDate:    ref.Date,
		StudentName:  profile.Name,
		StudentPhone: profile.Phone,
		Program:      program,
	})
	if err != nil {
		if errors.Is(err, ErrPolicyRejected) {
			if ban, berr := s.bans.BanStatus(ctx, userID, tmpl.ArenaID); berr == nil && ban.Banned {
				return s.reject(m, &BanError{Until: ban.BanEnd})
			}
			return s.reject(m, ErrPermissionDenied)
		}
		return s.reject(m, err)
	}
	m.Pass()

	metrics.RecordEnrollment(m.Outcome(), string(program))

	if s.notifier != nil {
		if err := s.notifier.EnrollmentConfirmed(ctx, profile.Email, profile.Name, tmpl.Title, ref.Date, tmpl.TimeOfDay); err != nil {
			logger.Error("failed to queue confirmation email", "user_id", userID, "error", err)
		}
	}

	return &Result{Enrollment: created}, nil
}

func (s *service) Cancel(ctx context.Context, userID, classID string) error {
	ref := class.ParseRef(classID)
	if !ref.IsInstance() {
		return ErrEnrollmentNotFound
	}

	if err := s.repo.Cancel(ctx, userID, ref.TemplateID, ref.Date); err != nil {
		return err
	}

	if s.notifier != nil {
		profile, perr := s.profiles.GetByID(ctx, userID)
		tmpl, terr := s.templates.GetTemplateByID(ctx, ref.TemplateID)
		if perr == nil && terr == nil {
			if err := s.notifier.EnrollmentCancelled(ctx, profile.Email, profile.Name, tmpl.Title, ref.Date); err != nil {
				logger.Error("failed to queue cancellation email", "user_id", userID, "error", err)
			}
		}
	}

	return nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]Enrollment, error) {
	return s.repo.ListForUser(ctx, userID)
}
