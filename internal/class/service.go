package class

import (
	"context"
	"errors"
	"sort"

	"github.com/Emersonn00/arevoapp/internal/capacity"
	"github.com/Emersonn00/arevoapp/internal/logger"
	"github.com/Emersonn00/arevoapp/internal/metrics"

	"github.com/lib/pq"
)

var (
	ErrTemplateNotFound = errors.New("class template not found")
	ErrInvalidTemplate  = errors.New("invalid class template")
)

type Service interface {
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*Template, error)
	GetTemplate(ctx context.Context, id string) (*Template, error)
	// ListForDate merges the arena's non-recurring classes on the date with
	// the expanded instances of its recurring templates, sorted by time of
	// day, with best-effort capacity snapshots attached.
	ListForDate(ctx context.Context, arenaID, date string) ([]Instance, error)
	AvailableDates(ctx context.Context, arenaID, startDate, endDate string) ([]string, error)
}

type service struct {
	repo     Repository
	capacity capacity.Client
	sched    *Schedule
}

func NewService(repo Repository, capClient capacity.Client, sched *Schedule) Service {
	return &service{
		repo:     repo,
		capacity: capClient,
		sched:    sched,
	}
}

func (s *service) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*Template, error) {
	if req.Recurring {
		if len(req.Weekdays) == 0 {
			return nil, ErrInvalidTemplate
		}
		for _, d := range req.Weekdays {
			if !validWeekday(d) {
				return nil, ErrInvalidTemplate
			}
		}
	} else if req.Date == "" {
		return nil, ErrInvalidTemplate
	}
	if req.Date != "" {
		if _, err := ParseCivilDate(req.Date); err != nil {
			return nil, ErrInvalidTemplate
		}
	}
	if _, err := StartInstant("2000-01-01", req.TimeOfDay); err != nil {
		return nil, ErrInvalidTemplate
	}

	t := &Template{
		ArenaID:          req.ArenaID,
		Title:            req.Title,
		TimeOfDay:        req.TimeOfDay,
		DurationMin:      req.DurationMin,
		Recurring:        req.Recurring,
		Weekdays:         pq.StringArray(req.Weekdays),
		AcceptsTotalPass: req.AcceptsTotalPass,
		AcceptsWellhub:   req.AcceptsWellhub,
	}
	if req.Date != "" {
		t.Date = &req.Date
	}
	if req.Description != "" {
		t.Description = &req.Description
	}
	if req.MaxSeats > 0 {
		seats := req.MaxSeats
		t.MaxSeats = &seats
	}
	if req.PriceCents > 0 {
		price := req.PriceCents
		t.PriceCents = &price
	}

	return s.repo.CreateTemplate(ctx, t)
}

func (s *service) GetTemplate(ctx context.Context, id string) (*Template, error) {
	t, err := s.repo.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, ErrTemplateNotFound
	}
	return t, nil
}

func (s *service) ListForDate(ctx context.Context, arenaID, date string) ([]Instance, error) {
	if _, err := ParseCivilDate(date); err != nil {
		return nil, err
	}

	nonRecurring, err := s.repo.ListNonRecurringForDate(ctx, arenaID, date)
	if err != nil {
		return nil, err
	}

	recurring, err := s.repo.ListRecurring(ctx, arenaID)
	if err != nil {
		return nil, err
	}

	instances := make([]Instance, 0, len(nonRecurring)+len(recurring))
	for i := range nonRecurring {
		instances = append(instances, s.materialize(&nonRecurring[i], date))
	}
	for i := range recurring {
		if s.sched.IncludesOnDate(&recurring[i], date) {
			instances = append(instances, s.materialize(&recurring[i], date))
		}
	}

	sort.Slice(instances, func(a, b int) bool {
		if instances[a].TimeOfDay != instances[b].TimeOfDay {
			return instances[a].TimeOfDay < instances[b].TimeOfDay
		}
		return instances[a].Title < instances[b].Title
	})

	s.attachCapacity(ctx, instances, date)

	return instances, nil
}

func (s *service) AvailableDates(ctx context.Context, arenaID, startDate, endDate string) ([]string, error) {
	if _, err := ParseCivilDate(startDate); err != nil {
		return nil, err
	}
	if _, err := ParseCivilDate(endDate); err != nil {
		return nil, err
	}
	return s.repo.ListActiveDatesInRange(ctx, arenaID, startDate, endDate)
}

func (s *service) materialize(t *Template, date string) Instance {
	ref := InstanceRef(t.ID, date)
	return Instance{
		Template:   *t,
		InstanceID: ref.String(),
		ClassDate:  date,
		Bookable:   s.sched.BookingOpen(date, t.TimeOfDay),
	}
}

// attachCapacity makes the one batched aggregation call for the listing.
// Capacity display is best-effort: on failure the instances simply carry no
// snapshot, since the store re-validates at enrollment time anyway.
func (s *service) attachCapacity(ctx context.Context, instances []Instance, date string) {
	if len(instances) == 0 {
		return
	}

	templateIDs := make([]string, 0, len(instances))
	seen := make(map[string]bool, len(instances))
	for i := range instances {
		id := instances[i].Template.ID
		if !seen[id] {
			seen[id] = true
			templateIDs = append(templateIDs, id)
		}
	}

	snaps, err := s.capacity.ForDate(ctx, templateIDs, date)
	if err != nil {
		logger.Error("capacity aggregation failed, listing without capacity", "date", date, "error", err)
		metrics.RecordCapacityLookup("error")
		return
	}
	metrics.RecordCapacityLookup("ok")

	for i := range instances {
		if snap, ok := snaps[instances[i].Template.ID]; ok {
			snapCopy := snap
			instances[i].Capacity = &snapCopy
		}
	}
}

func validWeekday(name string) bool {
	for _, d := range weekdayNames {
		if d == name {
			return true
		}
	}
	return false
}
