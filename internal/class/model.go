package class

import (
	"time"

	"github.com/Emersonn00/arevoapp/internal/capacity"

	"github.com/lib/pq"
)

// Template is a class definition row from aulas, possibly recurring weekly.
type Template struct {
	ID               string         `db:"id" json:"id"`
	ArenaID          string         `db:"arena_id" json:"arena_id"`
	Title            string         `db:"titulo" json:"title"`
	Description      *string        `db:"descricao" json:"description,omitempty"`
	Date             *string        `db:"data" json:"date,omitempty"`
	TimeOfDay        string         `db:"horario" json:"time_of_day"`
	DurationMin      int            `db:"duracao" json:"duration_min"`
	MaxSeats         *int           `db:"max_alunos" json:"max_seats,omitempty"`
	Type             *string        `db:"tipo" json:"type,omitempty"`
	Level            *string        `db:"nivel" json:"level,omitempty"`
	PriceCents       *int64         `db:"preco_centavos" json:"price_cents,omitempty"`
	Recurring        bool           `db:"is_recorrente" json:"recurring"`
	Weekdays         pq.StringArray `db:"dias_semana" json:"weekdays"`
	AcceptsTotalPass bool           `db:"aceita_totalpass" json:"accepts_totalpass"`
	AcceptsWellhub   bool           `db:"aceita_wellhub" json:"accepts_wellhub"`
	Active           bool           `db:"ativo" json:"active"`
	InstructorID     *string        `db:"professor_id" json:"instructor_id,omitempty"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
}

// Instance is a template materialized for one concrete date. It only lives
// in query responses; nothing persists it.
type Instance struct {
	Template
	InstanceID string             `json:"instance_id"`
	ClassDate  string             `json:"class_date"`
	Bookable   bool               `json:"bookable"`
	Capacity   *capacity.Snapshot `json:"capacity,omitempty"`
}

// Ref returns the composite reference for this instance.
func (i Instance) Ref() Ref {
	return InstanceRef(i.Template.ID, i.ClassDate)
}

type CreateTemplateRequest struct {
	ArenaID          string   `json:"arena_id" binding:"required,uuid"`
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	Date             string   `json:"date"`
	TimeOfDay        string   `json:"time_of_day" binding:"required"`
	DurationMin      int      `json:"duration_min" binding:"required,min=1"`
	MaxSeats         int      `json:"max_seats" binding:"required,min=1"`
	PriceCents       int64    `json:"price_cents" binding:"min=0"`
	Recurring        bool     `json:"recurring"`
	Weekdays         []string `json:"weekdays"`
	AcceptsTotalPass bool     `json:"accepts_totalpass"`
	AcceptsWellhub   bool     `json:"accepts_wellhub"`
}
