package capacity

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Snapshot is the per-class result of the batched aggregation procedure.
// It is derived data, recomputed on every call and never cached beyond one
// listing; the store re-validates capacity at enrollment time regardless.
type Snapshot struct {
	TemplateID string `db:"aula_id" json:"-"`
	MaxSeats   int    `db:"max_alunos" json:"max_seats"`
	Available  int    `db:"vagas_disponiveis" json:"available"`
	Enrolled   int    `db:"current_inscricoes" json:"enrolled"`
	IsFull     bool   `db:"is_full" json:"is_full"`
	Waitlist   int    `db:"waitlist_count" json:"waitlist"`
}

// Client batches one capacity computation for a set of templates sharing a
// target date. The returned map is keyed by template id; callers that work
// with composite instance ids strip the date suffix before calling and
// re-attach it when indexing the result.
type Client interface {
	ForDate(ctx context.Context, templateIDs []string, date string) (map[string]Snapshot, error)
}

type client struct {
	db *sqlx.DB
}

func NewClient(db *sqlx.DB) Client {
	return &client{db: db}
}

func (c *client) ForDate(ctx context.Context, templateIDs []string, date string) (map[string]Snapshot, error) {
	if len(templateIDs) == 0 {
		return map[string]Snapshot{}, nil
	}

	query := `
		SELECT aula_id, max_alunos, vagas_disponiveis, current_inscricoes, is_full, waitlist_count
		FROM get_capacity_for_classes($1::uuid[], $2::date)
	`

	var rows []Snapshot
	err := c.db.SelectContext(ctx, &rows, query, pq.Array(templateIDs), date)
	if err != nil {
		return nil, err
	}

	result := make(map[string]Snapshot, len(rows))
	for _, s := range rows {
		result[s.TemplateID] = s
	}

	return result, nil
}
