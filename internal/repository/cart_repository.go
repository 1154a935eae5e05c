package repository

import (
	"context"

	"furnistore/internal/domain/model"
)

type CartListQuery struct {
	// substring match on customer_name
	CustomerName *string
	Skip         int
	Limit        int
}

type CartRepository interface {
	List(ctx context.Context, q CartListQuery) ([]model.Cart, error)
	FindByID(ctx context.Context, id int64) (model.Cart, error)
	Create(ctx context.Context, c model.Cart) (model.Cart, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (model.Cart, error)
	// DeleteWithItems removes the cart's items and then the cart, in one
	// transaction. Items first, so a failure never leaves orphans behind.
	DeleteWithItems(ctx context.Context, id int64) error
}
