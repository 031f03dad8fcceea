package arena

import "time"

type Arena struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"nome" json:"name"`
	District  string    `db:"endereco_bairro" json:"district"`
	City      string    `db:"endereco_cidade" json:"city"`
	Active    bool      `db:"ativo" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// BanStatus is the result of the get_arena_ban_status procedure. The ban
// itself is created and enforced server-side; the client only reads it.
type BanStatus struct {
	Banned bool       `db:"banned" json:"banned"`
	BanEnd *time.Time `db:"ban_end" json:"ban_end,omitempty"`
}

type CreateArenaRequest struct {
	Name     string `json:"name" binding:"required"`
	District string `json:"district"`
	City     string `json:"city" binding:"required"`
}
