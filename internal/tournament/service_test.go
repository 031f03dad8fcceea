package tournament

import (
	"context"
	"os"
	"testing"

	"github.com/Emersonn00/arevoapp/internal/class"
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

type MockTournamentRepo struct{ mock.Mock }

func (m *MockTournamentRepo) ListTournaments(ctx context.Context, arenaID string) ([]Tournament, error) {
	args := m.Called(ctx, arenaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Tournament), args.Error(1)
}

func (m *MockTournamentRepo) GetTournament(ctx context.Context, id string) (*Tournament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tournament), args.Error(1)
}

func (m *MockTournamentRepo) ListCategories(ctx context.Context, tournamentID string) ([]Category, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func (m *MockTournamentRepo) GetCategory(ctx context.Context, id string) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockTournamentRepo) ListMatches(ctx context.Context, categoryID string) ([]Match, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Match), args.Error(1)
}

func (m *MockTournamentRepo) GetMatch(ctx context.Context, id string) (*Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Match), args.Error(1)
}

func (m *MockTournamentRepo) CompleteMatch(ctx context.Context, matchID string, score1, score2 int, winnerTeamID string) error {
	return m.Called(ctx, matchID, score1, score2, winnerTeamID).Error(0)
}

func (m *MockTournamentRepo) SetTeamSlot(ctx context.Context, matchID string, slot int, teamID string) error {
	return m.Called(ctx, matchID, slot, teamID).Error(0)
}

func (m *MockTournamentRepo) PerformDraw(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

func (m *MockTournamentRepo) CanManage(ctx context.Context, userID, tournamentID string) (bool, error) {
	args := m.Called(ctx, userID, tournamentID)
	return args.Bool(0), args.Error(1)
}

const (
	mgrID    = "7f6f3c1a-9a0e-4d5b-8c2d-0e1f2a3b4c5d"
	tournID  = "9c8b7a6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	catID    = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5e"
	team1ID  = "aaaa1111-2222-4333-8444-555566667777"
	team2ID  = "bbbb1111-2222-4333-8444-555566667777"
	upMatch  = "cccc1111-2222-4333-8444-555566667777"
	downOdd  = "dddd1111-2222-4333-8444-555566667777"
	downEven = "eeee1111-2222-4333-8444-555566667777"
)

func newTournamentService(repo Repository) Service {
	now, _ := class.StartInstant("2024-06-10", "12:00")
	return NewService(repo, class.NewSchedule(clockwork.NewFakeClockAt(now)))
}

func pendingMatch(nextID string) *Match {
	t1, t2 := team1ID, team2ID
	m := &Match{
		ID:          upMatch,
		CategoryID:  catID,
		Round:       1,
		MatchNumber: 1,
		Bracket:     BracketWinner,
		Team1ID:     &t1,
		Team2ID:     &t2,
		Status:      MatchPending,
	}
	if nextID != "" {
		m.NextMatchWinnerID = &nextID
	}
	return m
}

func grantManager(repo *MockTournamentRepo) {
	repo.On("GetCategory", mock.Anything, catID).Return(&Category{ID: catID, TournamentID: tournID}, nil)
	repo.On("CanManage", mock.Anything, mgrID, tournID).Return(true, nil)
}

func TestEnterScorePropagatesToOddRoundSlot1(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	grantManager(repo)
	repo.On("GetMatch", mock.Anything, upMatch).Return(pendingMatch(downOdd), nil)
	repo.On("CompleteMatch", mock.Anything, upMatch, 6, 4, team1ID).Return(nil)
	repo.On("ListMatches", mock.Anything, catID).Return([]Match{
		{ID: downOdd, CategoryID: catID, Round: 3, MatchNumber: 1, Bracket: BracketWinner, Status: MatchPending},
	}, nil)
	repo.On("SetTeamSlot", mock.Anything, downOdd, 1, team1ID).Return(nil)

	match, err := svc.EnterScore(context.Background(), mgrID, upMatch, 6, 4)
	require.NoError(t, err)
	assert.Equal(t, MatchCompleted, match.Status)
	require.NotNil(t, match.WinnerID)
	assert.Equal(t, team1ID, *match.WinnerID)
	repo.AssertExpectations(t)
}

func TestEnterScorePropagatesToEvenRoundSlot2(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	grantManager(repo)
	repo.On("GetMatch", mock.Anything, upMatch).Return(pendingMatch(downEven), nil)
	repo.On("CompleteMatch", mock.Anything, upMatch, 2, 5, team2ID).Return(nil)
	repo.On("ListMatches", mock.Anything, catID).Return([]Match{
		{ID: downEven, CategoryID: catID, Round: 2, MatchNumber: 1, Bracket: BracketWinner, Status: MatchPending},
	}, nil)
	repo.On("SetTeamSlot", mock.Anything, downEven, 2, team2ID).Return(nil)

	_, err := svc.EnterScore(context.Background(), mgrID, upMatch, 2, 5)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEnterScoreFinalHasNoPropagation(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	grantManager(repo)
	repo.On("GetMatch", mock.Anything, upMatch).Return(pendingMatch(""), nil)
	repo.On("CompleteMatch", mock.Anything, upMatch, 7, 5, team1ID).Return(nil)

	_, err := svc.EnterScore(context.Background(), mgrID, upMatch, 7, 5)
	require.NoError(t, err)
	repo.AssertNotCalled(t, "SetTeamSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnterScoreBrokenLinkKeepsResult(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	grantManager(repo)
	repo.On("GetMatch", mock.Anything, upMatch).Return(pendingMatch(downOdd), nil)
	repo.On("CompleteMatch", mock.Anything, upMatch, 6, 4, team1ID).Return(nil)
	// The winner link points outside the category's bracket.
	repo.On("ListMatches", mock.Anything, catID).Return([]Match{
		{ID: "ffff1111-2222-4333-8444-555566667777", CategoryID: catID, Round: 2, Bracket: BracketWinner},
	}, nil)

	match, err := svc.EnterScore(context.Background(), mgrID, upMatch, 6, 4)
	require.NoError(t, err)
	assert.Equal(t, MatchCompleted, match.Status)
	repo.AssertNotCalled(t, "SetTeamSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnterScoreRejectsTie(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	grantManager(repo)
	repo.On("GetMatch", mock.Anything, upMatch).Return(pendingMatch(downOdd), nil)

	_, err := svc.EnterScore(context.Background(), mgrID, upMatch, 4, 4)
	assert.ErrorIs(t, err, ErrTiedScore)
	repo.AssertNotCalled(t, "CompleteMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnterScoreRequiresBothTeams(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	m := pendingMatch(downOdd)
	m.Team2ID = nil

	grantManager(repo)
	repo.On("GetMatch", mock.Anything, upMatch).Return(m, nil)

	_, err := svc.EnterScore(context.Background(), mgrID, upMatch, 6, 4)
	assert.ErrorIs(t, err, ErrMatchMissingTeams)
}

func TestEnterScoreRejectsCompletedMatch(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	m := pendingMatch(downOdd)
	m.Status = MatchCompleted

	grantManager(repo)
	repo.On("GetMatch", mock.Anything, upMatch).Return(m, nil)

	_, err := svc.EnterScore(context.Background(), mgrID, upMatch, 6, 4)
	assert.ErrorIs(t, err, ErrMatchAlreadyComplete)
}

func TestEnterScoreRequiresManager(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	repo.On("GetMatch", mock.Anything, upMatch).Return(pendingMatch(downOdd), nil)
	repo.On("GetCategory", mock.Anything, catID).Return(&Category{ID: catID, TournamentID: tournID}, nil)
	repo.On("CanManage", mock.Anything, mgrID, tournID).Return(false, nil)

	_, err := svc.EnterScore(context.Background(), mgrID, upMatch, 6, 4)
	assert.ErrorIs(t, err, ErrNotManager)
}

func TestDraw(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	grantManager(repo)
	repo.On("PerformDraw", mock.Anything, catID).Return(nil)

	require.NoError(t, svc.Draw(context.Background(), mgrID, catID))
	repo.AssertExpectations(t)
}

func TestDrawAlreadyDone(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	repo.On("GetCategory", mock.Anything, catID).Return(&Category{ID: catID, TournamentID: tournID, DrawDone: true}, nil)
	repo.On("CanManage", mock.Anything, mgrID, tournID).Return(true, nil)

	err := svc.Draw(context.Background(), mgrID, catID)
	assert.ErrorIs(t, err, ErrDrawAlreadyDone)
	repo.AssertNotCalled(t, "PerformDraw", mock.Anything, mock.Anything)
}

func TestRegistrationWindowInclusive(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo) // today is 2024-06-10

	tests := []struct {
		start, end string
		want       bool
	}{
		{"2024-06-01", "2024-06-10", true},  // last day still open
		{"2024-06-10", "2024-06-20", true},  // first day already open
		{"2024-06-01", "2024-06-09", false}, // closed yesterday
		{"2024-06-11", "2024-06-20", false}, // opens tomorrow
	}

	for _, tt := range tests {
		repo.On("GetTournament", mock.Anything, tournID).Return(&Tournament{
			ID: tournID, StartDate: tt.start, EndDate: tt.end,
		}, nil).Once()

		got, err := svc.GetTournament(context.Background(), tournID)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.RegistrationOpen, "%s..%s", tt.start, tt.end)
	}
}

func TestBracketAttachesLabels(t *testing.T) {
	repo := new(MockTournamentRepo)
	svc := newTournamentService(repo)

	repo.On("ListMatches", mock.Anything, catID).Return([]Match{
		{ID: "m1", Round: 1, Bracket: BracketWinner},
		{ID: "m2", Round: 2, Bracket: BracketWinner},
	}, nil)

	matches, err := svc.Bracket(context.Background(), catID)
	require.NoError(t, err)
	assert.Equal(t, "Semi-final", matches[0].Label)
	assert.Equal(t, "Final", matches[1].Label)
}
