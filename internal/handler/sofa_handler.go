package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"furnistore/internal/usecase"
)

type SofaHandler struct {
	uc *usecase.SofaUsecase
}

func NewSofaHandler(uc *usecase.SofaUsecase) *SofaHandler {
	return &SofaHandler{uc: uc}
}

type CreateSofaRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Color      string  `json:"color"`
	Material   string  `json:"material"`
	WeightKg   float64 `json:"weight_kg"`
	DateAdded  *string `json:"date_added"`
	InStock    *bool   `json:"in_stock"`
	Seats      int     `json:"seats"`
	HasSleeper bool    `json:"has_sleeper"`
	FabricType string  `json:"fabric_type"`
}

type UpdateSofaRequest struct {
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	Color      *string  `json:"color"`
	Material   *string  `json:"material"`
	WeightKg   *float64 `json:"weight_kg"`
	DateAdded  *string  `json:"date_added"`
	InStock    *bool    `json:"in_stock"`
	Seats      *int     `json:"seats"`
	HasSleeper *bool    `json:"has_sleeper"`
	FabricType *string  `json:"fabric_type"`
}

func (h *SofaHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/sofas")

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *SofaHandler) create(c echo.Context) error {
	var req CreateSofaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.CreateSofaInput{
		Name:       req.Name,
		Price:      req.Price,
		Color:      req.Color,
		Material:   req.Material,
		WeightKg:   req.WeightKg,
		InStock:    req.InStock,
		Seats:      req.Seats,
		HasSleeper: req.HasSleeper,
		FabricType: req.FabricType,
	}
	if req.DateAdded != nil {
		d, err := parseDate(*req.DateAdded)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date_added"})
		}
		in.DateAdded = &d
	}

	s, err := h.uc.CreateSofa(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SofaHandler) list(c echo.Context) error {
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
	hasSleeper, err := queryBool(c, "has_sleeper")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid has_sleeper"})
	}

	sofas, err := h.uc.ListSofas(c.Request().Context(), usecase.ListSofasInput{
		Material:   queryString(c, "material"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		HasSleeper: hasSleeper,
		Skip:       skip,
		Limit:      limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sofas)
}

func (h *SofaHandler) get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	s, err := h.uc.GetSofa(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SofaHandler) update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateSofaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.UpdateSofaInput{
		Name:       req.Name,
		Price:      req.Price,
		Color:      req.Color,
		Material:   req.Material,
		WeightKg:   req.WeightKg,
		InStock:    req.InStock,
		Seats:      req.Seats,
		HasSleeper: req.HasSleeper,
		FabricType: req.FabricType,
	}
	if req.DateAdded != nil {
		d, err := parseDate(*req.DateAdded)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date_added"})
		}
		in.DateAdded = &d
	}

	s, err := h.uc.UpdateSofa(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SofaHandler) delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteSofa(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: fmt.Sprintf("Sofa with ID %d deleted successfully", id)})
}
