package enrollment

import "context"

type Repository interface {
	// Create inserts the enrollment row. Store constraint failures come back
	// already mapped onto the workflow error taxonomy.
	Create(ctx context.Context, e *Enrollment) (*Enrollment, error)
	// HasSameArenaEnrollment reports whether the user already holds an
	// active enrollment at the arena on the date, excluding the given class.
	HasSameArenaEnrollment(ctx context.Context, userID, arenaID, classDate, excludeTemplateID string) (bool, error)
	Cancel(ctx context.Context, userID, templateID, classDate string) error
	ListForUser(ctx context.Context, userID string) ([]Enrollment, error)
}
