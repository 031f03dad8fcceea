package payment

import "time"

// Program is a third-party wellness program a class may accept. "nao" is the
// explicit none value carried by profiles and enrollment rows.
type Program string

const (
	ProgramTotalPass Program = "totalpass"
	ProgramWellhub   Program = "wellhub"
	ProgramNone      Program = "nao"
)

// Method is a pay-now checkout method. Wellness programs settle out of band;
// these three go through the pending-payment flow.
type Method string

const (
	MethodPix     Method = "pix"
	MethodCard    Method = "cartao"
	MethodCredits Method = "creditos"
)

type Status string

const (
	StatusPending   Status = "pendente"
	StatusPaid      Status = "pago"
	StatusFailed    Status = "falha"
	StatusCancelled Status = "cancelado"
)

func ValidMethod(m Method) bool {
	return m == MethodPix || m == MethodCard || m == MethodCredits
}

// PendingPayment is one row of pagamentos_aulas, keyed by
// (user, template, class date).
type PendingPayment struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	TemplateID  string    `db:"aula_id" json:"template_id"`
	ClassDate   string    `db:"data_aula" json:"class_date"`
	Method      Method    `db:"forma_pagamento" json:"method"`
	AmountCents int64     `db:"valor_centavos" json:"amount_cents"`
	Status      Status    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ResolveProgram decides the wellness program for an enrollment attempt.
// A class accepting exactly one program auto-selects it. Accepting both
// requires an explicit user choice once per session (needsChoice). Accepting
// neither falls back to the profile default, or none.
func ResolveProgram(acceptsTotalPass, acceptsWellhub bool, sessionChoice *Program, profileDefault Program) (Program, bool) {
	switch {
	case acceptsTotalPass && acceptsWellhub:
		if sessionChoice != nil {
			return *sessionChoice, false
		}
		return "", true
	case acceptsTotalPass:
		return ProgramTotalPass, false
	case acceptsWellhub:
		return ProgramWellhub, false
	default:
		if profileDefault == "" {
			return ProgramNone, false
		}
		return profileDefault, false
	}
}
