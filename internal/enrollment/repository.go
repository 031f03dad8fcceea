package enrollment

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const enrollmentColumns = `
	id, user_id, aula_id,
	to_char(data_aula, 'YYYY-MM-DD') AS data_aula,
	nome_aluno, telefone_aluno, aplicativo_bem_estar, status, created_at`

// MapConstraintError translates the marker texts raised by the store's
// enrollment triggers into workflow errors. Write-time policy rejections get
// a sentinel; the workflow re-reads the ban status to report the real cause.
func MapConstraintError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "CLASS_FULL"):
		return ErrClassFull
	case strings.Contains(msg, "ALREADY_SUBSCRIBED"):
		return ErrAlreadySubscribed
	case strings.Contains(msg, "ARENA_DAY_LIMIT"):
		return ErrArenaDayLimit
	case strings.Contains(msg, "WEEKLY_LIMIT_REACHED"):
		return ErrWeeklyLimit
	case strings.Contains(msg, "row-level security"):
		return ErrPolicyRejected
	}
	return err
}

func (r *repository) Create(ctx context.Context, e *Enrollment) (*Enrollment, error) {
	query := `
		INSERT INTO inscricoes_aulas (user_id, aula_id, data_aula, nome_aluno, telefone_aluno, aplicativo_bem_estar, status)
		VALUES ($1, $2, $3::date, $4, $5, $6, 'confirmada')
		RETURNING` + enrollmentColumns

	var created Enrollment
	err := r.db.GetContext(ctx, &created, query,
		e.UserID, e.TemplateID, e.ClassDate, e.StudentName, e.StudentPhone, e.Program)
	if err != nil {
		return nil, MapConstraintError(err)
	}

	return &created, nil
}

func (r *repository) HasSameArenaEnrollment(ctx context.Context, userID, arenaID, classDate, excludeTemplateID string) (bool, error) {
	query := `
		SELECT has_enrollment
		FROM check_same_arena_enrollment($1, $2, $3::date, $4)
	`

	var has bool
	err := r.db.GetContext(ctx, &has, query, userID, arenaID, classDate, excludeTemplateID)
	if err != nil {
		return false, err
	}

	return has, nil
}

func (r *repository) Cancel(ctx context.Context, userID, templateID, classDate string) error {
	query := `
		UPDATE inscricoes_aulas
		SET status = 'cancelada', updated_at = NOW()
		WHERE user_id = $1 AND aula_id = $2 AND data_aula = $3::date AND status = 'confirmada'
	`

	result, err := r.db.ExecContext(ctx, query, userID, templateID, classDate)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}

func (r *repository) ListForUser(ctx context.Context, userID string) ([]Enrollment, error) {
	query := `
		SELECT` + enrollmentColumns + `
		FROM inscricoes_aulas
		WHERE user_id = $1 AND status = 'confirmada'
		ORDER BY data_aula, created_at
	`

	var enrollments []Enrollment
	err := r.db.SelectContext(ctx, &enrollments, query, userID)
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}
