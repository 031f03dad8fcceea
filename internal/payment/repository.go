package payment

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	ErrPaymentNotFound     = errors.New("pending payment not found")
	ErrInsufficientCredits = errors.New("insufficient credits balance")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const pendingColumns = `
	id, user_id, aula_id,
	to_char(data_aula, 'YYYY-MM-DD') AS data_aula,
	forma_pagamento, valor_centavos, status, created_at, updated_at`

func (r *repository) UpsertPending(ctx context.Context, userID, templateID, classDate string, method Method, amountCents int64) (*PendingPayment, error) {
	query := `
		INSERT INTO pagamentos_aulas (user_id, aula_id, data_aula, forma_pagamento, valor_centavos, status)
		VALUES ($1, $2, $3::date, $4, $5, 'pendente')
		ON CONFLICT (user_id, aula_id, data_aula)
		DO UPDATE SET forma_pagamento = EXCLUDED.forma_pagamento,
		              valor_centavos = EXCLUDED.valor_centavos,
		              status = 'pendente',
		              updated_at = NOW()
		RETURNING` + pendingColumns

	var p PendingPayment
	err := r.db.GetContext(ctx, &p, query, userID, templateID, classDate, method, amountCents)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetStatus(ctx context.Context, userID, templateID, classDate string) (Status, error) {
	query := `
		SELECT status
		FROM pagamentos_aulas
		WHERE user_id = $1 AND aula_id = $2 AND data_aula = $3::date
	`

	var status Status
	err := r.db.GetContext(ctx, &status, query, userID, templateID, classDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrPaymentNotFound
		}
		return "", err
	}

	return status, nil
}

func (r *repository) MarkPaid(ctx context.Context, userID, templateID, classDate string) error {
	query := `
		UPDATE pagamentos_aulas
		SET status = 'pago', updated_at = NOW()
		WHERE user_id = $1 AND aula_id = $2 AND data_aula = $3::date
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
		return ErrPaymentNotFound
	}

	return nil
}

func (r *repository) CancelPending(ctx context.Context, userID, templateID, classDate string) error {
	query := `
		UPDATE pagamentos_aulas
		SET status = 'cancelado', updated_at = NOW()
		WHERE user_id = $1 AND aula_id = $2 AND data_aula = $3::date AND status = 'pendente'
	`

	_, err := r.db.ExecContext(ctx, query, userID, templateID, classDate)
	return err
}

func (r *repository) ChargeCredits(ctx context.Context, userID, templateID, classDate string) error {
	query := `SELECT charge_credits_and_mark_paid($1, $2, $3::date)`

	var ok bool
	err := r.db.GetContext(ctx, &ok, query, userID, templateID, classDate)
	if err != nil {
		if strings.Contains(err.Error(), "INSUFFICIENT_CREDITS") {
			return ErrInsufficientCredits
		}
		return err
	}
	if !ok {
		return ErrInsufficientCredits
	}

	return nil
}
