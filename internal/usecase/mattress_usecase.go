package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"furnistore/internal/domain/model"
	repo "furnistore/internal/repository"
)

type MattressUsecase struct {
	mattressRepo repo.MattressRepository
}

func NewMattressUsecase(mattressRepo repo.MattressRepository) *MattressUsecase {
	return &MattressUsecase{mattressRepo: mattressRepo}
}

type CreateMattressInput struct {
	Name        string
	Price       float64
	Color       string
	Material    string
	WeightKg    float64
	DateAdded   *time.Time
	InStock     *bool
	Size        model.MattressSize
	Firmness    model.MattressFirm
	ThicknessCm float64
}

type ListMattressesInput struct {
	Material *string
	MinPrice *float64
	MaxPrice *float64
	Size     *model.MattressSize
	Firmness *model.MattressFirm
	Skip     int
	Limit    int
}

type UpdateMattressInput struct {
	Name        *string
	Price       *float64
	Color       *string
	Material    *string
	WeightKg    *float64
	DateAdded   *time.Time
	InStock     *bool
	Size        *model.MattressSize
	Firmness    *model.MattressFirm
	ThicknessCm *float64
}

func (u *MattressUsecase) CreateMattress(ctx context.Context, in CreateMattressInput) (model.Mattress, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.WeightKg < 0 {
		return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "weight_kg must be >= 0")
	}
	if !in.Size.Valid() {
		return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "invalid size")
	}
	if !in.Firmness.Valid() {
		return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "invalid firmness")
	}

	m := model.Mattress{
		Furniture: model.Furniture{
			Name:      strings.TrimSpace(in.Name),
			Price:     in.Price,
			Color:     in.Color,
			Material:  in.Material,
			WeightKg:  in.WeightKg,
			DateAdded: time.Now(),
			InStock:   true,
		},
		Size:        in.Size,
		Firmness:    in.Firmness,
		ThicknessCm: in.ThicknessCm,
	}
	if in.DateAdded != nil {
		m.DateAdded = *in.DateAdded
	}
	if in.InStock != nil {
		m.InStock = *in.InStock
	}

	created, err := u.mattressRepo.Create(ctx, m)
	if err != nil {
		return model.Mattress{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *MattressUsecase) ListMattresses(ctx context.Context, in ListMattressesInput) ([]model.Mattress, error) {
	if err := validatePageWindow(in.Skip, in.Limit); err != nil {
		return nil, err
	}
	if err := validatePriceRange(in.MinPrice, in.MaxPrice); err != nil {
		return nil, err
	}
	if in.Size != nil && !in.Size.Valid() {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid size")
	}
	if in.Firmness != nil && !in.Firmness.Valid() {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid firmness")
	}

	mattresses, err := u.mattressRepo.List(ctx, repo.MattressListQuery{
		Material: in.Material,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Size:     in.Size,
		Firmness: in.Firmness,
		Skip:     in.Skip,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return mattresses, nil
}

func (u *MattressUsecase) GetMattress(ctx context.Context, id int64) (model.Mattress, error) {
	if id <= 0 {
		return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "invalid mattress id")
	}

	m, err := u.mattressRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Mattress{}, NewHTTPError(http.StatusNotFound, "mattress not found")
	}
	if err != nil {
		return model.Mattress{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m, nil
}

func (u *MattressUsecase) UpdateMattress(ctx context.Context, id int64, in UpdateMattressInput) (model.Mattress, error) {
	if id <= 0 {
		return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "invalid mattress id")
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "name required")
		}
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
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
			return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "weight_kg must be >= 0")
		}
		fields["weight_kg"] = *in.WeightKg
	}
	if in.DateAdded != nil {
		fields["date_added"] = *in.DateAdded
	}
	if in.InStock != nil {
		fields["in_stock"] = *in.InStock
	}
	if in.Size != nil {
		if !in.Size.Valid() {
			return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "invalid size")
		}
		fields["size"] = *in.Size
	}
	if in.Firmness != nil {
		if !in.Firmness.Valid() {
			return model.Mattress{}, NewHTTPError(http.StatusBadRequest, "invalid firmness")
		}
		fields["firmness"] = *in.Firmness
	}
	if in.ThicknessCm != nil {
		fields["thickness_cm"] = *in.ThicknessCm
	}

	if len(fields) == 0 {
		return u.GetMattress(ctx, id)
	}

	m, err := u.mattressRepo.Update(ctx, id, fields)
	if err == repo.ErrNotFound {
		return model.Mattress{}, NewHTTPError(http.StatusNotFound, "mattress not found")
	}
	if err != nil {
		return model.Mattress{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m, nil
}

func (u *MattressUsecase) DeleteMattress(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid mattress id")
	}

	err := u.mattressRepo.DeleteByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "mattress not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
