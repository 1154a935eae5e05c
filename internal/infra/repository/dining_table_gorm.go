package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"furnistore/internal/domain/model"
	repo "furnistore/internal/repository"
)

type DiningTableGormRepository struct {
	db *gorm.DB
}

func NewDiningTableGormRepository(db *gorm.DB) *DiningTableGormRepository {
	return &DiningTableGormRepository{db: db}
}

func (r *DiningTableGormRepository) List(ctx context.Context, q repo.DiningTableListQuery) ([]model.DiningTable, error) {
	var tables []model.DiningTable

	tx := r.db.WithContext(ctx).Model(&model.DiningTable{})

	if q.Material != nil {
		tx = tx.Where("material = ?", *q.Material)
	}
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}
	if q.Shape != nil {
		tx = tx.Where("shape = ?", *q.Shape)
	}
	if q.Extendable != nil {
		tx = tx.Where("extendable = ?", *q.Extendable)
	}

	if err := tx.Order("id asc").Offset(q.Skip).Limit(q.Limit).Find(&tables).Error; err != nil {
		return []model.DiningTable{}, err
	}
	return tables, nil
}

func (r *DiningTableGormRepository) FindByID(ctx context.Context, id int64) (model.DiningTable, error) {
	var t model.DiningTable
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DiningTable{}, repo.ErrNotFound
	}
	if err != nil {
		return model.DiningTable{}, err
	}
	return t, nil
}

func (r *DiningTableGormRepository) Create(ctx context.Context, t model.DiningTable) (model.DiningTable, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.DiningTable{}, err
	}
	return t, nil
}

func (r *DiningTableGormRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (model.DiningTable, error) {
	res := r.db.WithContext(ctx).Model(&model.DiningTable{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return model.DiningTable{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.DiningTable{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *DiningTableGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.DiningTable{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
