package user

import "time"

type User struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"nome" json:"name"`
	Email           string    `db:"email" json:"email"`
	PasswordHash    string    `db:"password_hash" json:"-"`
	Role            string    `db:"role" json:"role"`
	Phone           string    `db:"telefone" json:"phone"`
	WellnessProgram string    `db:"aplicativo_bem_estar" json:"wellness_program"`
	CreditsCents    int64     `db:"creditos_saldo" json:"credits_cents"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	WellnessProgram string `json:"wellness_program" binding:"omitempty,oneof=totalpass wellhub nao"`
}
