package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"furnistore/internal/domain/model"
	repo "furnistore/internal/repository"
)

type SofaGormRepository struct {
	db *gorm.DB
}

func NewSofaGormRepository(db *gorm.DB) *SofaGormRepository {
	return &SofaGormRepository{db: db}
}

// List applies the given filters conjunctively, in insertion order.
func (r *SofaGormRepository) List(ctx context.Context, q repo.SofaListQuery) ([]model.Sofa, error) {
	var sofas []model.Sofa

	tx := r.db.WithContext(ctx).Model(&model.Sofa{})

	if q.Material != nil {
		tx = tx.Where("material = ?", *q.Material)
	}
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}
	if q.HasSleeper != nil {
		tx = tx.Where("has_sleeper = ?", *q.HasSleeper)
	}

	if err := tx.Order("id asc").Offset(q.Skip).Limit(q.Limit).Find(&sofas).Error; err != nil {
		return []model.Sofa{}, err
	}
	return sofas, nil
}

func (r *SofaGormRepository) FindByID(ctx context.Context, id int64) (model.Sofa, error) {
	var s model.Sofa
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Sofa{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Sofa{}, err
	}
	return s, nil
}

func (r *SofaGormRepository) Create(ctx context.Context, s model.Sofa) (model.Sofa, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Sofa{}, err
	}
	return s, nil
}

// Update writes only the given columns, then reloads the row.
func (r *SofaGormRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (model.Sofa, error) {
	res := r.db.WithContext(ctx).Model(&model.Sofa{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return model.Sofa{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Sofa{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *SofaGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Sofa{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
