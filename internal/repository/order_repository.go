package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nurpe/orders-service/internal/model"
)

type OrderRepository struct {
	db     *gorm.DB
	offers *OfferRepository
}

func NewOrderRepository(db *gorm.DB, offers *OfferRepository) *OrderRepository {
	return &OrderRepository{db: db, offers: offers}
}

func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) Get(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	explicitID := order.ID != 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error; err != nil {
		return classify(err)
	}
	if explicitID {
		return syncSequence(ctx, r.db, "orders")
	}
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, order *model.Order) error {
	return classify(r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error)
}

// Delete removes the order and its offers. Callers run it inside Store.Atomic.
func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	if err := r.offers.DeleteByOrders(ctx, []uint{id}); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&model.Order{}, "id = ?", id)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrderRepository) DeleteByCustomer(ctx context.Context, customerID uint) error {
	ids, err := r.idsWhere(ctx, "customer_id = ?", customerID)
	if err != nil {
		return err
	}
	return r.deleteWithOffers(ctx, ids)
}

func (r *OrderRepository) DeleteByExecutor(ctx context.Context, executorID uint) error {
	if err := r.offers.DeleteByExecutor(ctx, executorID); err != nil {
		return err
	}
	ids, err := r.idsWhere(ctx, "executor_id = ?", executorID)
	if err != nil {
		return err
	}
	return r.deleteWithOffers(ctx, ids)
}

func (r *OrderRepository) idsWhere(ctx context.Context, query string, args ...interface{}) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Where(query, args...).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *OrderRepository) deleteWithOffers(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.offers.DeleteByOrders(ctx, ids); err != nil {
		return err
	}
	return classify(r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Order{}).Error)
}
