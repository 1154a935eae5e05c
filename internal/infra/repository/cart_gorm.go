package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"furnistore/internal/domain/model"
	repo "furnistore/internal/repository"
)

type CartGormRepository struct {
	db *gorm.DB
}

func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

func (r *CartGormRepository) List(ctx context.Context, q repo.CartListQuery) ([]model.Cart, error) {
	var carts []model.Cart

	tx := r.db.WithContext(ctx).Model(&model.Cart{})

	if q.CustomerName != nil {
		// literal substring match: % and _ in the filter are not wildcards
		tx = tx.Where(`customer_name LIKE ? ESCAPE '\'`, "%"+escapeLike(*q.CustomerName)+"%")
	}

	if err := tx.Order("id asc").Offset(q.Skip).Limit(q.Limit).Find(&carts).Error; err != nil {
		return []model.Cart{}, err
	}
	return carts, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *CartGormRepository) FindByID(ctx context.Context, id int64) (model.Cart, error) {
	var c model.Cart
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return c, nil
}

func (r *CartGormRepository) Create(ctx context.Context, c model.Cart) (model.Cart, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Cart{}, err
	}
	return c, nil
}

func (r *CartGormRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (model.Cart, error) {
	res := r.db.WithContext(ctx).Model(&model.Cart{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return model.Cart{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Cart{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// DeleteWithItems deletes the cart's items and then the cart itself.
// The item delete is explicit application-level cleanup, not a storage cascade.
func (r *CartGormRepository) DeleteWithItems(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart model.Cart
		if err := tx.First(&cart, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		if err := tx.Where("cart_id = ?", id).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Cart{}, id).Error
	})
}
