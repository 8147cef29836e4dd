package repository

import (
	"context"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
)

// OrganizationRepository resolves organization profiles.
type OrganizationRepository interface {
	List(ctx context.Context) ([]domain.Organization, error)
	// GetByID returns domain.ErrNotFound when the organization does not exist.
	GetByID(ctx context.Context, orgID string) (*domain.Organization, error)
}

// UserRepository returns cohort snapshots. Returned slices are owned by the caller.
type UserRepository interface {
	// ListByOrg returns the enrolled users of one organization; the result may be empty.
	ListByOrg(ctx context.Context, orgID string) ([]domain.User, error)
	CountByOrg(ctx context.Context) (map[string]int, error)
}
