package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"furnistore/internal/domain/model"
	repo "furnistore/internal/repository"
)

type DiningTableUsecase struct {
	tableRepo repo.DiningTableRepository
}

func NewDiningTableUsecase(tableRepo repo.DiningTableRepository) *DiningTableUsecase {
	return &DiningTableUsecase{tableRepo: tableRepo}
}

type CreateDiningTableInput struct {
	Name       string
	Price      float64
	Color      string
	Material   string
	WeightKg   float64
	DateAdded  *time.Time
	InStock    *bool
	Seats      int
	Shape      model.TableShape
	Extendable bool
}

type ListDiningTablesInput struct {
	Material   *string
	MinPrice   *float64
	MaxPrice   *float64
	Shape      *model.TableShape
	Extendable *bool
	Skip       int
	Limit      int
}

type UpdateDiningTableInput struct {
	Name       *string
	Price      *float64
	Color      *string
	Material   *string
	WeightKg   *float64
	DateAdded  *time.Time
	InStock    *bool
	Seats      *int
	Shape      *model.TableShape
	Extendable *bool
}

func (u *DiningTableUsecase) CreateDiningTable(ctx context.Context, in CreateDiningTableInput) (model.DiningTable, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.DiningTable{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.DiningTable{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.WeightKg < 0 {
		return model.DiningTable{}, NewHTTPError(http.StatusBadRequest, "weight_kg must be >= 0")
	}
	if !in.Shape.Valid() {
		return model.DiningTable{}, NewHTTPError(http.StatusBadRequest, "invalid shape")
	}

	t := model.DiningTable{
		Furniture: model.Furniture{
			Name:      strings.TrimSpace(in.Name),
			Price:     in.Price,
			Color:     in.Color,
			Material:  in.Material,
			WeightKg:  in.WeightKg,
			DateAdded: time.Now(),
			InStock:   true,
		},
		Seats:      in.Seats,
		Shape:      in.Shape,
		Extendable: in.Extendable,
	}
	if in.DateAdded != nil {
		t.DateAdded = *in.DateAdded
	}
	if in.InStock != nil {
		t.InStock = *in.InStock
	}

	created, err := u.tableRepo.Create(ctx, t)
	if err != nil {
		return model.DiningTable{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *DiningTableUsecase) ListDiningTables(ctx context.Context, in ListDiningTablesInput) ([]model.DiningTable, error) {
	if err := validatePageWindow(in.Skip, in.Limit); err != nil {
		return nil, err
	}
	if err := validatePriceRange(in.MinPrice, in.MaxPrice); err != nil {
		return nil, err
	}
	if in.Shape != nil && !in.Shape.Valid() {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid shape")
	}

	tables, err := u.tableRepo.List(ctx, repo.DiningTableListQuery{
		Material:   in.Material,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
		Shape:      in.Shape,
		Extendable: in.Extendable,
		Skip:       in.Skip,
		Limit:      in.Limit,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return tables, nil
}

func (u *DiningTableUsecase) GetDiningTable(ctx context.Context, id int64) (model.DiningTable, error) {
	if id <= 0 {
		return model.DiningTable{}, NewHTTPError(http.StatusBadRequest, "invalid dining table id")
	}

	t, err := u.tableRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.DiningTable{}, NewHTTPError(http.StatusNotFound, "dining table not found")
	}
	if err != nil {
		return model.DiningTable{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}

func (u *DiningTableUsecase) UpdateDiningTable(ctx context.Context, id int64, in UpdateDiningTableInput) (model.DiningTable, error) {
	if id <= 0 {
		return model.DiningTable{}, NewHTTPError(http.StatusBadRequest, "invalid dining table id")
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return model.DiningTable{}, NewHTTPError(http.StatusBadRequest, "name required")
		}
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.DiningTable{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
		}
		fields["price"] = *in.Price
	}
	if in.Color != nil {
		fields["color"] = *in.Color
	}
	if in.Material != nil {
		fields["material"] = *in.Material
	}
	if in.WeightKg != nil {
		if *in.WeightKg < 0 {
			return model.DiningTable{}, NewHTTPError(http.StatusBadRequest, "weight_kg must be >= 0")
		}
		fields["weight_kg"] = *in.WeightKg
	}
	if in.DateAdded != nil {
		fields["date_added"] = *in.DateAdded
	}
	if in.InStock != nil {
		fields["in_stock"] = *in.InStock
	}
	if in.Seats != nil {
		fields["seats"] = *in.Seats
	}
	if in.Shape != nil {
		if !in.Shape.Valid() {
			return model.DiningTable{}, NewHTTPError(http.StatusBadRequest, "invalid shape")
		}
		fields["shape"] = *in.Shape
	}
	if in.Extendable != nil {
		fields["extendable"] = *in.Extendable
	}

	if len(fields) == 0 {
		return u.GetDiningTable(ctx, id)
	}

	t, err := u.tableRepo.Update(ctx, id, fields)
	if err == repo.ErrNotFound {
		return model.DiningTable{}, NewHTTPError(http.StatusNotFound, "dining table not found")
	}
	if err != nil {
		return model.DiningTable{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}

func (u *DiningTableUsecase) DeleteDiningTable(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid dining table id")
	}

	err := u.tableRepo.DeleteByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "dining table not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
