package service

import (
	"context"

	"github.com/nurpe/orders-service/internal/model"
	"github.com/nurpe/orders-service/internal/repository"
)

type OfferService struct {
	store *repository.Store
}

func NewOfferService(store *repository.Store) *OfferService {
	return &OfferService{store: store}
}

type OfferInput struct {
	ID         uint
	OrderID    *uint
	ExecutorID *uint
}

func (in OfferInput) apply(offer *model.Offer) {
	offer.OrderID = optionalID(in.OrderID)
	offer.ExecutorID = optionalID(in.ExecutorID)
}

func (s *OfferService) List(ctx context.Context) ([]model.Offer, error) {
	return s.store.Offers.List(ctx)
}

func (s *OfferService) Get(ctx context.Context, id uint) (*model.Offer, error) {
	offer, err := s.store.Offers.Get(ctx, id)
	if err != nil {
		return nil, lookup(err, "offer", id)
	}
	return offer, nil
}

func (s *OfferService) Create(ctx context.Context, in OfferInput) (*model.Offer, error) {
	offer := &model.Offer{ID: in.ID}
	in.apply(offer)

	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		return tx.Offers.Create(ctx, offer)
	})
	if err != nil {
		return nil, translate(err)
	}
	return offer, nil
}

func (s *OfferService) Update(ctx context.Context, id uint, in OfferInput) (*model.Offer, error) {
	var offer *model.Offer
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		existing, err := tx.Offers.Get(ctx, id)
		if err != nil {
			return lookup(err, "offer", id)
		}
		in.apply(existing)
		if err := tx.Offers.Update(ctx, existing); err != nil {
			return err
		}
		offer = existing
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return offer, nil
}

func (s *OfferService) Delete(ctx context.Context, id uint) error {
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		return tx.Offers.Delete(ctx, id)
	})
	if err != nil {
		return lookup(err, "offer", id)
	}
	return nil
}
