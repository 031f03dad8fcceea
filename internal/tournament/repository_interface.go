package tournament

import "context"

type Repository interface {
	ListTournaments(ctx context.Context, arenaID string) ([]Tournament, error)
	GetTournament(ctx context.Context, id string) (*Tournament, error)
	ListCategories(ctx context.Context, tournamentID string) ([]Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)

	// ListMatches returns a category's bracket with team names resolved by
	// the listing procedure.
	ListMatches(ctx context.Context, categoryID string) ([]Match, error)
	GetMatch(ctx context.Context, id string) (*Match, error)
	// CompleteMatch stores the scores and winner and marks the match
	// completed.
	CompleteMatch(ctx context.Context, matchID string, score1, score2 int, winnerTeamID string) error
	// SetTeamSlot places a team into slot 1 or 2 of a pending match.
	SetTeamSlot(ctx context.Context, matchID string, slot int, teamID string) error

	// PerformDraw runs the store-side seeding procedure for a category.
	PerformDraw(ctx context.Context, categoryID string) error

	// CanManage reports whether the user owns the tournament or is listed
	// as a collaborator.
	CanManage(ctx context.Context, userID, tournamentID string) (bool, error)
}
