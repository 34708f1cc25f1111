package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/domain/entity"
	"github.com/stationops/fuelpos-api/internal/domain/enum"
	domainRepo "github.com/stationops/fuelpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) domainRepo.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Insert(ctx context.Context, item *entity.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

func (r *cartRepository) GetByItem(ctx context.Context, customerID uuid.UUID, kind enum.ItemKind, itemID uuid.UUID) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.db.WithContext(ctx).
		First(&item, "customer_id = ? AND item_kind = ? AND item_id = ?", customerID, kind, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// Delete removes a line by its ID and returns the removed line so the
// caller knows which customer's session to reset. Returns nil when no
// such line exists.
func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&entity.CartItem{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) DeleteByItem(ctx context.Context, customerID uuid.UUID, kind enum.ItemKind, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.CartItem{}, "customer_id = ? AND item_kind = ? AND item_id = ?", customerID, kind, itemID).Error
}

func (r *cartRepository) DeleteAllByCustomer(ctx context.Context, customerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.CartItem{}, "customer_id = ?", customerID).Error
}
