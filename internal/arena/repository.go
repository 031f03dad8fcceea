package arena

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateArena(ctx context.Context, name, district, city string) (*Arena, error) {
	query := `
		INSERT INTO arenas (nome, endereco_bairro, endereco_cidade, ativo)
		VALUES ($1, $2, $3, true)
		RETURNING id, nome, endereco_bairro, endereco_cidade, ativo, created_at
	`

	var arena Arena
	err := r.db.GetContext(ctx, &arena, query, name, district, city)
	if err != nil {
		return nil, err
	}

	return &arena, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Arena, error) {
	query := `
		SELECT id, nome, endereco_bairro, endereco_cidade, ativo, created_at
		FROM arenas
		WHERE ativo = true
		ORDER BY nome ASC
	`

	var arenas []Arena
	err := r.db.SelectContext(ctx, &arenas, query)
	if err != nil {
		return nil, err
	}

	return arenas, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Arena, error) {
	query := `
		SELECT id, nome, endereco_bairro, endereco_cidade, ativo, created_at
		FROM arenas
		WHERE id = $1
	`

	var arena Arena
	err := r.db.GetContext(ctx, &arena, query, id)
	if err != nil {
		return nil, err
	}

	return &arena, nil
}

// GetBanStatus calls the server-side ban procedure. A user with no ban row
// comes back as a not-banned status, never as an error.
func (r *repository) GetBanStatus(ctx context.Context, userID, arenaID string) (*BanStatus, error) {
	query := `SELECT banned, ban_end FROM get_arena_ban_status($1, $2)`

	var status BanStatus
	err := r.db.GetContext(ctx, &status, query, userID, arenaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &BanStatus{Banned: false}, nil
		}
		return nil, err
	}

	return &status, nil
}
