package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"furnistore/internal/domain/model"
	"furnistore/internal/usecase"
)

type DiningTableHandler struct {
	uc *usecase.DiningTableUsecase
}

func NewDiningTableHandler(uc *usecase.DiningTableUsecase) *DiningTableHandler {
	return &DiningTableHandler{uc: uc}
}

type CreateDiningTableRequest struct {
	Name       string           `json:"name"`
	Price      float64          `json:"price"`
	Color      string           `json:"color"`
	Material   string           `json:"material"`
	WeightKg   float64          `json:"weight_kg"`
	DateAdded  *string          `json:"date_added"`
	InStock    *bool            `json:"in_stock"`
	Seats      int              `json:"seats"`
	Shape      model.TableShape `json:"shape"`
	Extendable bool             `json:"extendable"`
}

type UpdateDiningTableRequest struct {
	Name       *string           `json:"name"`
	Price      *float64          `json:"price"`
	Color      *string           `json:"color"`
	Material   *string           `json:"material"`
	WeightKg   *float64          `json:"weight_kg"`
	DateAdded  *string           `json:"date_added"`
	InStock    *bool             `json:"in_stock"`
	Seats      *int              `json:"seats"`
	Shape      *model.TableShape `json:"shape"`
	Extendable *bool             `json:"extendable"`
}

func (h *DiningTableHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/dining-tables")

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *DiningTableHandler) create(c echo.Context) error {
	var req CreateDiningTableRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.CreateDiningTableInput{
		Name:       req.Name,
		Price:      req.Price,
		Color:      req.Color,
		Material:   req.Material,
		WeightKg:   req.WeightKg,
		InStock:    req.InStock,
		Seats:      req.Seats,
		Shape:      req.Shape,
		Extendable: req.Extendable,
	}
	if req.DateAdded != nil {
		d, err := parseDate(*req.DateAdded)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date_added"})
		}
		in.DateAdded = &d
	}

	t, err := h.uc.CreateDiningTable(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *DiningTableHandler) list(c echo.Context) error {
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
	extendable, err := queryBool(c, "extendable")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid extendable"})
	}

	var shape *model.TableShape
	if v := c.QueryParam("shape"); v != "" {
		s := model.TableShape(v)
		shape = &s
	}

	tables, err := h.uc.ListDiningTables(c.Request().Context(), usecase.ListDiningTablesInput{
		Material:   queryString(c, "material"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Shape:      shape,
		Extendable: extendable,
		Skip:       skip,
		Limit:      limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tables)
}

func (h *DiningTableHandler) get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	t, err := h.uc.GetDiningTable(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *DiningTableHandler) update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateDiningTableRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.UpdateDiningTableInput{
		Name:       req.Name,
		Price:      req.Price,
		Color:      req.Color,
		Material:   req.Material,
		WeightKg:   req.WeightKg,
		InStock:    req.InStock,
		Seats:      req.Seats,
		Shape:      req.Shape,
		Extendable: req.Extendable,
	}
	if req.DateAdded != nil {
		d, err := parseDate(*req.DateAdded)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date_added"})
		}
		in.DateAdded = &d
	}

	t, err := h.uc.UpdateDiningTable(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *DiningTableHandler) delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteDiningTable(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: fmt.Sprintf("Dining table with ID %d deleted successfully", id)})
}
