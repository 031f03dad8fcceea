package class

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const templateColumns = `
	id, arena_id, titulo, descricao,
	to_char(data, 'YYYY-MM-DD') AS data,
	to_char(horario, 'HH24:MI') AS horario,
	duracao, max_alunos, tipo, nivel, preco_centavos,
	is_recorrente, dias_semana, aceita_totalpass, aceita_wellhub,
	ativo, professor_id, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTemplate(ctx context.Context, t *Template) (*Template, error) {
	query := `
		INSERT INTO aulas (
			arena_id, titulo, descricao, data, horario, duracao, max_alunos,
			preco_centavos, is_recorrente, dias_semana, aceita_totalpass,
			aceita_wellhub, ativo, professor_id
		)
		VALUES ($1, $2, $3, NULLIF($4, '')::date, $5::time, $6, $7, $8, $9, $10, $11, $12, true, $13)
		RETURNING` + templateColumns

	var date string
	if t.Date != nil {
		date = *t.Date
	}
	var desc string
	if t.Description != nil {
		desc = *t.Description
	}

	var created Template
	err := r.db.GetContext(ctx, &created, query,
		t.ArenaID, t.Title, desc, date, t.TimeOfDay, t.DurationMin, t.MaxSeats,
		t.PriceCents, t.Recurring, pq.Array([]string(t.Weekdays)),
		t.AcceptsTotalPass, t.AcceptsWellhub, t.InstructorID,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetTemplateByID(ctx context.Context, id string) (*Template, error) {
	query := `SELECT` + templateColumns + `
		FROM aulas
		WHERE id = $1`

	var t Template
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) ListNonRecurringForDate(ctx context.Context, arenaID, date string) ([]Template, error) {
	query := `SELECT` + templateColumns + `
		FROM aulas
		WHERE arena_id = $1
		  AND ativo = true
		  AND is_recorrente = false
		  AND data = $2::date`

	var templates []Template
	err := r.db.SelectContext(ctx, &templates, query, arenaID, date)
	if err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *repository) ListRecurring(ctx context.Context, arenaID string) ([]Template, error) {
	query := `SELECT` + templateColumns + `
		FROM aulas
		WHERE arena_id = $1
		  AND ativo = true
		  AND is_recorrente = true`

	var templates []Template
	err := r.db.SelectContext(ctx, &templates, query, arenaID)
	if err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *repository) ListActiveDatesInRange(ctx context.Context, arenaID, startDate, endDate string) ([]string, error) {
	query := `
		SELECT DISTINCT to_char(data, 'YYYY-MM-DD') AS data
		FROM aulas
		WHERE arena_id = $1
		  AND ativo = true
		  AND data IS NOT NULL
		  AND data >= $2::date
		  AND data <= $3::date
		ORDER BY data ASC
	`

	var dates []string
	err := r.db.SelectContext(ctx, &dates, query, arenaID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return dates, nil
}
