package repository

import (
	"context"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) ListByOrg(ctx context.Context, orgID string) ([]domain.User, error) {
	var records []UserRecord
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("user_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, len(records))
	for i, rec := range records {
		users[i] = rec.toDomain()
	}
	return users, nil
}

func (r *userRepository) CountByOrg(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		OrgID string
		Count int
	}
	err := r.db.WithContext(ctx).
		Model(&UserRecord{}).
		Select("org_id, COUNT(*) AS count").
		Group("org_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.OrgID] = row.Count
	}
	return counts, nil
}
