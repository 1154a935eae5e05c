package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"furnistore/internal/domain/model"
	"furnistore/internal/usecase"
)

type MattressHandler struct {
	uc *usecase.MattressUsecase
}

func NewMattressHandler(uc *usecase.MattressUsecase) *MattressHandler {
	return &MattressHandler{uc: uc}
}

type CreateMattressRequest struct {
	Name        string             `json:"name"`
	Price       float64            `json:"price"`
	Color       string             `json:"color"`
	Material    string             `json:"material"`
	WeightKg    float64            `json:"weight_kg"`
	DateAdded   *string            `json:"date_added"`
	InStock     *bool              `json:"in_stock"`
	Size        model.MattressSize `json:"size"`
	Firmness    model.MattressFirm `json:"firmness"`
	ThicknessCm float64            `json:"thickness_cm"`
}

type UpdateMattressRequest struct {
	Name        *string             `json:"name"`
	Price       *float64            `json:"price"`
	Color       *string             `json:"color"`
	Material    *string             `json:"material"`
	WeightKg    *float64            `json:"weight_kg"`
	DateAdded   *string             `json:"date_added"`
	InStock     *bool               `json:"in_stock"`
	Size        *model.MattressSize `json:"size"`
	Firmness    *model.MattressFirm `json:"firmness"`
	ThicknessCm *float64            `json:"thickness_cm"`
}

func (h *MattressHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/mattresses")

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *MattressHandler) create(c echo.Context) error {
	var req CreateMattressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.CreateMattressInput{
		Name:        req.Name,
		Price:       req.Price,
		Color:       req.Color,
		Material:    req.Material,
		WeightKg:    req.WeightKg,
		InStock:     req.InStock,
		Size:        req.Size,
		Firmness:    req.Firmness,
		ThicknessCm: req.ThicknessCm,
	}
	if req.DateAdded != nil {
		d, err := parseDate(*req.DateAdded)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date_added"})
		}
		in.DateAdded = &d
	}

	m, err := h.uc.CreateMattress(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MattressHandler) list(c echo.Context) error {
	skip, limit, err := queryWindow(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid skip or limit"})
	}

	minPrice, err := queryFloat(c, "min_price")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price"})
	}
	maxPrice, err := queryFloat(c, "max_price")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max_price"})
	}

	var size *model.MattressSize
	if v := c.QueryParam("size"); v != "" {
		s := model.MattressSize(v)
		size = &s
	}
	var firmness *model.MattressFirm
	if v := c.QueryParam("firmness"); v != "" {
		f := model.MattressFirm(v)
		firmness = &f
	}

	mattresses, err := h.uc.ListMattresses(c.Request().Context(), usecase.ListMattressesInput{
		Material: queryString(c, "material"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Size:     size,
		Firmness: firmness,
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, mattresses)
}

func (h *MattressHandler) get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	m, err := h.uc.GetMattress(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MattressHandler) update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateMattressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.UpdateMattressInput{
		Name:        req.Name,
		Price:       req.Price,
		Color:       req.Color,
		Material:    req.Material,
		WeightKg:    req.WeightKg,
		InStock:     req.InStock,
		Size:        req.Size,
		Firmness:    req.Firmness,
		ThicknessCm: req.ThicknessCm,
	}
	if req.DateAdded != nil {
		d, err := parseDate(*req.DateAdded)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date_added"})
		}
		in.DateAdded = &d
	}

	m, err := h.uc.UpdateMattress(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MattressHandler) delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteMattress(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: fmt.Sprintf("Mattress with ID %d deleted successfully", id)})
}
