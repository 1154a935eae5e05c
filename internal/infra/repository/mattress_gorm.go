package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"furnistore/internal/domain/model"
	repo "furnistore/internal/repository"
)

type MattressGormRepository struct {
	db *gorm.DB
}

func NewMattressGormRepository(db *gorm.DB) *MattressGormRepository {
	return &MattressGormRepository{db: db}
}

func (r *MattressGormRepository) List(ctx context.Context, q repo.MattressListQuery) ([]model.Mattress, error) {
	var mattresses []model.Mattress

	tx := r.db.WithContext(ctx).Model(&model.Mattress{})

	if q.Material != nil {
		tx = tx.Where("material = ?", *q.Material)
	}
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}
	if q.Size != nil {
		tx = tx.Where("size = ?", *q.Size)
	}
	if q.Firmness != nil {
		tx = tx.Where("firmness = ?", *q.Firmness)
	}

	if err := tx.Order("id asc").Offset(q.Skip).Limit(q.Limit).Find(&mattresses).Error; err != nil {
		return []model.Mattress{}, err
	}
	return mattresses, nil
}

func (r *MattressGormRepository) FindByID(ctx context.Context, id int64) (model.Mattress, error) {
	var m model.Mattress
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Mattress{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Mattress{}, err
	}
	return m, nil
}

func (r *MattressGormRepository) Create(ctx context.Context, m model.Mattress) (model.Mattress, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.Mattress{}, err
	}
	return m, nil
}

func (r *MattressGormRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (model.Mattress, error) {
	res := r.db.WithContext(ctx).Model(&model.Mattress{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return model.Mattress{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Mattress{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *MattressGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Mattress{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
