package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"gorm.io/gorm"
)

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	var records []OrganizationRecord
	if err := r.db.WithContext(ctx).Order("position ASC, org_id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	orgs := make([]domain.Organization, len(records))
	for i, rec := range records {
		orgs[i] = rec.toDomain()
	}
	return orgs, nil
}

func (r *organizationRepository) GetByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	var rec OrganizationRecord
	err := r.db.WithContext(ctx).First(&rec, "org_id = ?", orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	org := rec.toDomain()
	return &org, nil
}
