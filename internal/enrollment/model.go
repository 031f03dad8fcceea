package enrollment

import (
	"time"

	"github.com/Emersonn00/arevoapp/internal/payment"
)

// Enrollment is one row of inscricoes_aulas. The pair (aula_id, data_aula)
// identifies the class instance; recurring instances never exist as rows of
// their own.
type Enrollment struct {
	ID           string          `db:"id" json:"id"`
	UserID       string          `db:"user_id" json:"user_id"`
	TemplateID   string          `db:"aula_id" json:"class_id"`
	ClassDate    string          `db:"data_aula" json:"class_date"`
	StudentName  string          `db:"nome_aluno" json:"student_name"`
	StudentPhone string          `db:"telefone_aluno" json:"student_phone"`
	Program      payment.Program `db:"aplicativo_bem_estar" json:"wellness_program"`
	Status       string          `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

type EnrollRequest struct {
	// ClassID is the composite instance id, <template uuid>-<YYYY-MM-DD>.
	ClassID string `json:"class_id" binding:"required"`
	// Program is the session choice, required only when the class accepts
	// both wellness programs.
	Program *payment.Program `json:"wellness_program,omitempty"`
}

// Result is the outcome of an enrollment attempt that did not reject.
type Result struct {
	Enrollment *Enrollment `json:"enrollment,omitempty"`
	// NeedsProgramChoice pauses the attempt: the class accepts both wellness
	// programs and no session choice was given. Retry with Program set.
	NeedsProgramChoice bool `json:"needs_program_choice,omitempty"`
}
