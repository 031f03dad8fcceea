package class

import "context"

type Repository interface {
	CreateTemplate(ctx context.Context, t *Template) (*Template, error)
	GetTemplateByID(ctx context.Context, id string) (*Template, error)
	ListNonRecurringForDate(ctx context.Context, arenaID, date string) ([]Template, error)
	ListRecurring(ctx context.Context, arenaID string) ([]Template, error)
	ListActiveDatesInRange(ctx context.Context, arenaID, startDate, endDate string) ([]string, error)
}
