package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	domainRepo "github.com/stationops/fuelpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) domainRepo.OperatorRepository {
	return &operatorRepository{db: db}
}

func (r *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	return r.db.WithContext(ctx).Create(operator).Error
}

func (r *operatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	var operator entity.Operator
	err := r.db.WithContext(ctx).First(&operator, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &operator, err
}

func (r *operatorRepository) GetByUsername(ctx context.Context, username string) (*entity.Operator, error) {
	var operator entity.Operator
	err := r.db.WithContext(ctx).First(&operator, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &operator, err
}
