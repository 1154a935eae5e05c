package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"furnistore/internal/domain/model"
	repo "furnistore/internal/repository"
)

type SofaUsecase struct {
	sofaRepo repo.SofaRepository
}

func NewSofaUsecase(sofaRepo repo.SofaRepository) *SofaUsecase {
	return &SofaUsecase{sofaRepo: sofaRepo}
}

type CreateSofaInput struct {
	Name       string
	Price      float64
	Color      string
	Material   string
	WeightKg   float64
	DateAdded  *time.Time
	InStock    *bool
	Seats      int
	HasSleeper bool
	FabricType string
}

type ListSofasInput struct {
	Material   *string
	MinPrice   *float64
	MaxPrice   *float64
	HasSleeper *bool
	Skip       int
	Limit      int
}

// UpdateSofaInput carries PATCH semantics: nil fields are left untouched.
type UpdateSofaInput struct {
	Name       *string
	Price      *float64
	Color      *string
	Material   *string
	WeightKg   *float64
	DateAdded  *time.Time
	InStock    *bool
	Seats      *int
	HasSleeper *bool
	FabricType *string
}

func (u *SofaUsecase) CreateSofa(ctx context.Context, in CreateSofaInput) (model.Sofa, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Sofa{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.Sofa{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.WeightKg < 0 {
		return model.Sofa{}, NewHTTPError(http.StatusBadRequest, "weight_kg must be >= 0")
	}

	s := model.Sofa{
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
		HasSleeper: in.HasSleeper,
		FabricType: in.FabricType,
	}
	if in.DateAdded != nil {
		s.DateAdded = *in.DateAdded
	}
	if in.InStock != nil {
		s.InStock = *in.InStock
	}

	created, err := u.sofaRepo.Create(ctx, s)
	if err != nil {
		return model.Sofa{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *SofaUsecase) ListSofas(ctx context.Context, in ListSofasInput) ([]model.Sofa, error) {
	if err := validatePageWindow(in.Skip, in.Limit); err != nil {
		return nil, err
	}
	if err := validatePriceRange(in.MinPrice, in.MaxPrice); err != nil {
		return nil, err
	}

	sofas, err := u.sofaRepo.List(ctx, repo.SofaListQuery{
		Material:   in.Material,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
		HasSleeper: in.HasSleeper,
		Skip:       in.Skip,
		Limit:      in.Limit,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return sofas, nil
}

func (u *SofaUsecase) GetSofa(ctx context.Context, id int64) (model.Sofa, error) {
	if id <= 0 {
		return model.Sofa{}, NewHTTPError(http.StatusBadRequest, "invalid sofa id")
	}

	s, err := u.sofaRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Sofa{}, NewHTTPError(http.StatusNotFound, "sofa not found")
	}
	if err != nil {
		return model.Sofa{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SofaUsecase) UpdateSofa(ctx context.Context, id int64, in UpdateSofaInput) (model.Sofa, error) {
	if id <= 0 {
		return model.Sofa{}, NewHTTPError(http.StatusBadRequest, "invalid sofa id")
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return model.Sofa{}, NewHTTPError(http.StatusBadRequest, "name required")
		}
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Sofa{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
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
			return model.Sofa{}, NewHTTPError(http.StatusBadRequest, "weight_kg must be >= 0")
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
	if in.HasSleeper != nil {
		fields["has_sleeper"] = *in.HasSleeper
	}
	if in.FabricType != nil {
		fields["fabric_type"] = *in.FabricType
	}

	// nothing to change; just return the current row
	if len(fields) == 0 {
		return u.GetSofa(ctx, id)
	}

	s, err := u.sofaRepo.Update(ctx, id, fields)
	if err == repo.ErrNotFound {
		return model.Sofa{}, NewHTTPError(http.StatusNotFound, "sofa not found")
	}
	if err != nil {
		return model.Sofa{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SofaUsecase) DeleteSofa(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid sofa id")
	}

	err := u.sofaRepo.DeleteByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "sofa not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
