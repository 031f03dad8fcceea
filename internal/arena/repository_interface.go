package arena

import "context"

type Repository interface {
	CreateArena(ctx context.Context, name, district, city string) (*Arena, error)
	ListActive(ctx context.Context) ([]Arena, error)
	GetByID(ctx context.Context, id string) (*Arena, error)
	GetBanStatus(ctx context.Context, userID, arenaID string) (*BanStatus, error)
}
