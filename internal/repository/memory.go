package repository

import (
	"context"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
)

// MemoryStore serves an immutable dataset snapshot. It satisfies both
// OrganizationRepository and UserRepository.
type MemoryStore struct {
	orgs   []domain.Organization
	byID   map[string]int
	cohort map[string][]domain.User
}

// NewMemoryStore indexes a copy of the dataset.
func NewMemoryStore(dataset domain.Dataset) *MemoryStore {
	s := &MemoryStore{
		orgs:   make([]domain.Organization, len(dataset.Organizations)),
		byID:   make(map[string]int, len(dataset.Organizations)),
		cohort: make(map[string][]domain.User, len(dataset.Organizations)),
	}
	copy(s.orgs, dataset.Organizations)
	for i, org := range s.orgs {
		s.byID[org.OrgID] = i
	}
	for _, u := range dataset.Users {
		s.cohort[u.OrgID] = append(s.cohort[u.OrgID], u.Clone())
	}
	return s
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Organization, error) {
	out := make([]domain.Organization, len(s.orgs))
	copy(out, s.orgs)
	return out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, orgID string) (*domain.Organization, error) {
	i, ok := s.byID[orgID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	org := s.orgs[i]
	return &org, nil
}

func (s *MemoryStore) ListByOrg(_ context.Context, orgID string) ([]domain.User, error) {
	return cloneUsers(s.cohort[orgID]), nil
}

func (s *MemoryStore) CountByOrg(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(s.cohort))
	for orgID, users := range s.cohort {
		counts[orgID] = len(users)
	}
	return counts, nil
}
