package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nurpe/orders-service/internal/model"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) List(ctx context.Context) ([]model.Offer, error) {
	offers := make([]model.Offer, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepository) ListByOrder(ctx context.Context, orderID uint) ([]model.Offer, error) {
	offers := make([]model.Offer, 0)
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepository) Get(ctx context.Context, id uint) (*model.Offer, error) {
	var offer model.Offer
	if err := r.db.WithContext(ctx).First(&offer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) Create(ctx context.Context, offer *model.Offer) error {
	explicitID := offer.ID != 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(offer).Error; err != nil {
		return classify(err)
	}
	if explicitID {
		return syncSequence(ctx, r.db, "offers")
	}
	return nil
}

func (r *OfferRepository) Update(ctx context.Context, offer *model.Offer) error {
	return classify(r.db.WithContext(ctx).Omit(clause.Associations).Save(offer).Error)
}

func (r *OfferRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Offer{}, "id = ?", id)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OfferRepository) DeleteByOrders(ctx context.Context, orderIDs []uint) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return classify(r.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Delete(&model.Offer{}).Error)
}

func (r *OfferRepository) DeleteByExecutor(ctx context.Context, executorID uint) error {
	return classify(r.db.WithContext(ctx).Where("executor_id = ?", executorID).Delete(&model.Offer{}).Error)
}
