package user

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash, role, phone string) (*User, error) {
	query := `
		INSERT INTO profiles (nome, email, password_hash, role, telefone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, nome, email, password_hash, role, telefone, aplicativo_bem_estar, creditos_saldo, created_at
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, name, email, passwordHash, role, phone)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, nome, email, password_hash, role, telefone, aplicativo_bem_estar, creditos_saldo, created_at
		FROM profiles
		WHERE email = $1
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, nome, email, password_hash, role, telefone, aplicativo_bem_estar, creditos_saldo, created_at
		FROM profiles
		WHERE id = $1
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id, name, phone, wellnessProgram string) (*User, error) {
	query := `
		UPDATE profiles
		SET nome = COALESCE(NULLIF($2, ''), nome),
		    telefone = COALESCE(NULLIF($3, ''), telefone),
		    aplicativo_bem_estar = COALESCE(NULLIF($4, ''), aplicativo_bem_estar)
		WHERE id = $1
		RETURNING id, nome, email, password_hash, role, telefone, aplicativo_bem_estar, creditos_saldo, created_at
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, id, name, phone, wellnessProgram)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
