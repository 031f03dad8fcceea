package tournament

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrMatchNotFound      = errors.New("match not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const tournamentColumns = `
	id, nome, arena_id, owner_id,
	to_char(data_inicio, 'YYYY-MM-DD') AS data_inicio,
	to_char(data_fim, 'YYYY-MM-DD') AS data_fim,
	status, created_at`

func (r *repository) ListTournaments(ctx context.Context, arenaID string) ([]Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM campeonatos
		WHERE arena_id = $1
		ORDER BY data_inicio DESC
	`

	var tournaments []Tournament
	err := r.db.SelectContext(ctx, &tournaments, query, arenaID)
	if err != nil {
		return nil, err
	}

	return tournaments, nil
}

func (r *repository) GetTournament(ctx context.Context, id string) (*Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM campeonatos
		WHERE id = $1
	`

	var t Tournament
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	return &t, nil
}

func (r *repository) ListCategories(ctx context.Context, tournamentID string) ([]Category, error) {
	query := `
		SELECT id, campeonato_id, nome, max_duplas, sorteio_realizado
		FROM categorias_campeonatos
		WHERE campeonato_id = $1
		ORDER BY nome
	`

	var categories []Category
	err := r.db.SelectContext(ctx, &categories, query, tournamentID)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *repository) GetCategory(ctx context.Context, id string) (*Category, error) {
	query := `
		SELECT id, campeonato_id, nome, max_duplas, sorteio_realizado
		FROM categorias_campeonatos
		WHERE id = $1
	`

	var c Category
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return &c, nil
}

const matchColumns = `
	id, categoria_id, round, match_number, bracket,
	team1_id, team2_id, team1_name, team2_name,
	score1, score2, winner_id, status,
	next_match_winner_id, next_match_loser_id`

func (r *repository) ListMatches(ctx context.Context, categoryID string) ([]Match, error) {
	query := `
		SELECT` + matchColumns + `
		FROM get_tournament_matches_with_teams($1)
		ORDER BY bracket, round, match_number
	`

	var matches []Match
	err := r.db.SelectContext(ctx, &matches, query, categoryID)
	if err != nil {
		return nil, err
	}

	return matches, nil
}

func (r *repository) GetMatch(ctx context.Context, id string) (*Match, error) {
	query := `
		SELECT id, categoria_id, round, match_number, bracket,
		       team1_id, team2_id, NULL::text AS team1_name, NULL::text AS team2_name,
		       score1, score2, winner_id, status,
		       next_match_winner_id, next_match_loser_id
		FROM tournament_matches
		WHERE id = $1
	`

	var m Match
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) CompleteMatch(ctx context.Context, matchID string, score1, score2 int, winnerTeamID string) error {
	query := `
		UPDATE tournament_matches
		SET score1 = $2, score2 = $3, winner_id = $4, status = 'completed', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, matchID, score1, score2, winnerTeamID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMatchNotFound
	}

	return nil
}

func (r *repository) SetTeamSlot(ctx context.Context, matchID string, slot int, teamID string) error {
	var column string
	switch slot {
	case 1:
		column = "team1_id"
	case 2:
		column = "team2_id"
	default:
		return fmt.Errorf("invalid team slot %d", slot)
	}

	query := fmt.Sprintf(`
		UPDATE tournament_matches
		SET %s = $2, updated_at = NOW()
		WHERE id = $1
	`, column)

	result, err := r.db.ExecContext(ctx, query, matchID, teamID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMatchNotFound
	}

	return nil
}

func (r *repository) PerformDraw(ctx context.Context, categoryID string) error {
	query := `SELECT perform_tournament_draw($1)`

	_, err := r.db.ExecContext(ctx, query, categoryID)
	return err
}

func (r *repository) CanManage(ctx context.Context, userID, tournamentID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM campeonatos
			WHERE id = $1 AND (owner_id = $2 OR $2::uuid = ANY(colaboradores))
		)
	`

	var can bool
	err := r.db.GetContext(ctx, &can, query, tournamentID, userID)
	if err != nil {
		return false, err
	}

	return can, nil
}
