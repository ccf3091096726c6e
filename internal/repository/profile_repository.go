package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nurpe/orders-service/internal/model"
)

// ProfileRepository maintains the customers and executors projection tables.
type ProfileRepository struct {
	db     *gorm.DB
	orders *OrderRepository
}

func NewProfileRepository(db *gorm.DB, orders *OrderRepository) *ProfileRepository {
	return &ProfileRepository{db: db, orders: orders}
}

func (r *ProfileRepository) CreateCustomer(ctx context.Context, userID uint) error {
	return classify(r.db.WithContext(ctx).Omit(clause.Associations).Create(&model.Customer{UserID: userID}).Error)
}

func (r *ProfileRepository) CreateExecutor(ctx context.Context, userID uint) error {
	return classify(r.db.WithContext(ctx).Omit(clause.Associations).Create(&model.Executor{UserID: userID}).Error)
}

func (r *ProfileRepository) HasCustomer(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *ProfileRepository) HasExecutor(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Executor{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// DeleteCustomer drops the customer row and the orders it owns.
func (r *ProfileRepository) DeleteCustomer(ctx context.Context, userID uint) error {
	if err := r.orders.DeleteByCustomer(ctx, userID); err != nil {
		return err
	}
	return classify(r.db.WithContext(ctx).Delete(&model.Customer{}, "user_id = ?", userID).Error)
}

// DeleteExecutor drops the executor row, the orders assigned to it and its offers.
func (r *ProfileRepository) DeleteExecutor(ctx context.Context, userID uint) error {
	if err := r.orders.DeleteByExecutor(ctx, userID); err != nil {
		return err
	}
	return classify(r.db.WithContext(ctx).Delete(&model.Executor{}, "user_id = ?", userID).Error)
}
