package repo

import (
	"context"

	"github.com/avoronkov/catalog-api/internal/models"
)

func (r *GormRepo) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser exists for provisioning and tests; the API itself never
// registers, mutates or deletes users.
func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}
