package arena

import (
	"context"
	"errors"
)

var ErrArenaNotFound = errors.New("arena not found")

type Service interface {
	CreateArena(ctx context.Context, req CreateArenaRequest) (*Arena, error)
	ListArenas(ctx context.Context) ([]Arena, error)
	GetArenaByID(ctx context.Context, id string) (*Arena, error)
	BanStatus(ctx context.Context, userID, arenaID string) (*BanStatus, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateArena(ctx context.Context, req CreateArenaRequest) (*Arena, error) {
	return s.repo.CreateArena(ctx, req.Name, req.District, req.City)
}

func (s *service) ListArenas(ctx context.Context) ([]Arena, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) GetArenaByID(ctx context.Context, id string) (*Arena, error) {
	arena, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrArenaNotFound
	}
	return arena, nil
}

func (s *service) BanStatus(ctx context.Context, userID, arenaID string) (*BanStatus, error) {
	return s.repo.GetBanStatus(ctx, userID, arenaID)
}
