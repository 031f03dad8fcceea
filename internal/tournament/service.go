package tournament

import (
	"context"
	"errors"

	"github.com/Emersonn00/arevoapp/internal/class"
	"github.com/Emersonn00/arevoapp/internal/logger"
	"github.com/Emersonn00/arevoapp/internal/metrics"
)

var (
	ErrNotManager           = errors.New("only the owner or a collaborator may do this")
	ErrMatchAlreadyComplete = errors.New("match already completed")
	ErrMatchMissingTeams    = errors.New("both team slots must be filled before scoring")
	ErrDrawAlreadyDone      = errors.New("draw already performed for this category")
)

type Service interface {
	ListTournaments(ctx context.Context, arenaID string) ([]Tournament, error)
	GetTournament(ctx context.Context, id string) (*Tournament, error)
	ListCategories(ctx context.Context, tournamentID string) ([]Category, error)
	// Bracket returns a category's matches with display labels attached.
	Bracket(ctx context.Context, categoryID string) ([]Match, error)
	// EnterScore validates the scores, completes the match and advances the
	// winner into the downstream slot.
	EnterScore(ctx context.Context, userID, matchID string, score1, score2 int) (*Match, error)
	// Draw runs the store-side seeding for a category.
	Draw(ctx context.Context, userID, categoryID string) error
}

type service struct {
	repo  Repository
	sched *class.Schedule
}

func NewService(repo Repository, sched *class.Schedule) Service {
	return &service{repo: repo, sched: sched}
}

// registrationOpen: today must fall inside [start, end], both ends included.
func (s *service) registrationOpen(t *Tournament) bool {
	today := s.sched.Today()
	return t.StartDate <= today && today <= t.EndDate
}

func (s *service) ListTournaments(ctx context.Context, arenaID string) ([]Tournament, error) {
	tournaments, err := s.repo.ListTournaments(ctx, arenaID)
	if err != nil {
		return nil, err
	}

	for i := range tournaments {
		tournaments[i].RegistrationOpen = s.registrationOpen(&tournaments[i])
	}

	return tournaments, nil
}

func (s *service) GetTournament(ctx context.Context, id string) (*Tournament, error) {
	t, err := s.repo.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	t.RegistrationOpen = s.registrationOpen(t)
	return t, nil
}

func (s *service) ListCategories(ctx context.Context, tournamentID string) ([]Category, error) {
	return s.repo.ListCategories(ctx, tournamentID)
}

func (s *service) Bracket(ctx context.Context, categoryID string) ([]Match, error) {
	matches, err := s.repo.ListMatches(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return Labeled(matches), nil
}

func (s *service) EnterScore(ctx context.Context, userID, matchID string, score1, score2 int) (*Match, error) {
	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	category, err := s.repo.GetCategory(ctx, match.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(ctx, userID, category.TournamentID); err != nil {
		return nil, err
	}

	if match.Status == MatchCompleted {
		return nil, ErrMatchAlreadyComplete
	}
	if match.Team1ID == nil || match.Team2ID == nil {
		return nil, ErrMatchMissingTeams
	}

	winnerSlot, err := DecideWinner(score1, score2)
	if err != nil {
		return nil, err
	}

	winnerID := *match.Team1ID
	if winnerSlot == 2 {
		winnerID = *match.Team2ID
	}

	if err := s.repo.CompleteMatch(ctx, matchID, score1, score2, winnerID); err != nil {
		return nil, err
	}
	metrics.RecordMatchCompleted()

	match.Score1 = &score1
	match.Score2 = &score2
	match.WinnerID = &winnerID
	match.Status = MatchCompleted

	// Advance the winner. The final carries no link; a broken link is logged
	// and left alone rather than failing the completed match.
	if match.NextMatchWinnerID != nil {
		bracket, err := s.repo.ListMatches(ctx, match.CategoryID)
		if err != nil {
			logger.Error("failed to load bracket for winner propagation",
				"match_id", matchID, "category_id", match.CategoryID, "error", err)
			return match, nil
		}
		downstream := FindDownstream(match, bracket)
		if downstream == nil {
			logger.Error("winner link points at a missing match",
				"match_id", matchID, "next_match_id", *match.NextMatchWinnerID)
			return match, nil
		}
		slot := WinnerSlot(downstream.Round)
		if err := s.repo.SetTeamSlot(ctx, downstream.ID, slot, winnerID); err != nil {
			logger.Error("failed to advance winner",
				"match_id", matchID, "next_match_id", downstream.ID, "slot", slot, "error", err)
		}
	}

	return match, nil
}

func (s *service) Draw(ctx context.Context, userID, categoryID string) error {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if err := s.requireManager(ctx, userID, category.TournamentID); err != nil {
		return err
	}
	if category.DrawDone {
		return ErrDrawAlreadyDone
	}

	if err := s.repo.PerformDraw(ctx, categoryID); err != nil {
		metrics.RecordDraw("error")
		return err
	}

	metrics.RecordDraw("ok")
	return nil
}

func (s *service) requireManager(ctx context.Context, userID, tournamentID string) error {
	can, err := s.repo.CanManage(ctx, userID, tournamentID)
	if err != nil {
		return err
	}
	if !can {
		return ErrNotManager
	}
	return nil
}
