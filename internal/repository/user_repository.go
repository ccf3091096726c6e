package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nurpe/orders-service/internal/model"
)

type UserRepository struct {
	db       *gorm.DB
	profiles *ProfileRepository
}

func NewUserRepository(db *gorm.DB, profiles *ProfileRepository) *UserRepository {
	return &UserRepository{db: db, profiles: profiles}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ListIDsByRole(ctx context.Context, role string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("role = ?", role).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	explicitID := user.ID != 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		return classify(err)
	}
	if explicitID {
		return syncSequence(ctx, r.db, "users")
	}
	return nil
}

// Update overwrites every column of the row keyed by user.ID.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	return classify(r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error)
}

// Delete removes the user together with its role rows and everything they
// own. Callers run it inside Store.Atomic.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.profiles.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	if err := r.profiles.DeleteExecutor(ctx, id); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
