package repository

import (
	"context"
	"errors"

	"furnistore/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// Filters are conjunctive; nil means no constraint.
type SofaListQuery struct {
	Material   *string
	MinPrice   *float64
	MaxPrice   *float64
	HasSleeper *bool
	Skip       int
	Limit      int
}

type DiningTableListQuery struct {
	Material   *string
	MinPrice   *float64
	MaxPrice   *float64
	Shape      *model.TableShape
	Extendable *bool
	Skip       int
	Limit      int
}

type MattressListQuery struct {
	Material *string
	MinPrice *float64
	MaxPrice *float64
	Size     *model.MattressSize
	Firmness *model.MattressFirm
	Skip     int
	Limit    int
}

// Persistence contract per catalog table. Update applies only the given
// columns; Update and DeleteByID report ErrNotFound on a missing id.
type SofaRepository interface {
	List(ctx context.Context, q SofaListQuery) ([]model.Sofa, error)
	FindByID(ctx context.Context, id int64) (model.Sofa, error)
	Create(ctx context.Context, s model.Sofa) (model.Sofa, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (model.Sofa, error)
	DeleteByID(ctx context.Context, id int64) error
}

type DiningTableRepository interface {
	List(ctx context.Context, q DiningTableListQuery) ([]model.DiningTable, error)
	FindByID(ctx context.Context, id int64) (model.DiningTable, error)
	Create(ctx context.Context, t model.DiningTable) (model.DiningTable, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (model.DiningTable, error)
	DeleteByID(ctx context.Context, id int64) error
}

type MattressRepository interface {
	List(ctx context.Context, q MattressListQuery) ([]model.Mattress, error)
	FindByID(ctx context.Context, id int64) (model.Mattress, error)
	Create(ctx context.Context, m model.Mattress) (model.Mattress, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (model.Mattress, error)
	DeleteByID(ctx context.Context, id int64) error
}
