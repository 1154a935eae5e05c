package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"furnistore/internal/domain/model"
	repo "furnistore/internal/repository"
)

// CartUsecase implements the shopping-cart aggregate: carts own line items,
// and each line item keeps a snapshot of the furniture taken when it was
// added. Totals always come from the snapshots.
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	sofaRepo     repo.SofaRepository
	tableRepo    repo.DiningTableRepository
	mattressRepo repo.MattressRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	sofaRepo repo.SofaRepository,
	tableRepo repo.DiningTableRepository,
	mattressRepo repo.MattressRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		sofaRepo:     sofaRepo,
		tableRepo:    tableRepo,
		mattressRepo: mattressRepo,
	}
}

type CreateCartInput struct {
	CustomerName  string
	CustomerEmail string
}

type ListCartsInput struct {
	CustomerName *string
	Skip         int
	Limit        int
}

type UpdateCartInput struct {
	CustomerName  *string
	CustomerEmail *string
}

type AddItemInput struct {
	FurnitureType model.FurnitureType
	FurnitureID   int64
	Quantity      int64
}

// CartItemSummary is returned from add/update item calls.
type CartItemSummary struct {
	ID            int64               `json:"id"`
	FurnitureType model.FurnitureType `json:"furniture_type"`
	FurnitureID   int64               `json:"furniture_id"`
	Quantity      int64               `json:"quantity"`
	Name          string              `json:"name"`
	Price         float64             `json:"price"`
	Subtotal      float64             `json:"subtotal"`
}

type CartCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CartSummaryItem struct {
	ID       int64               `json:"id"`
	Type     model.FurnitureType `json:"type"`
	Name     string              `json:"name"`
	Price    float64             `json:"price"`
	Quantity int64               `json:"quantity"`
	Subtotal float64             `json:"subtotal"`
}

type CartSummaryOutput struct {
	Customer   CartCustomer      `json:"customer"`
	Items      []CartSummaryItem `json:"items"`
	TotalItems int64             `json:"total_items"`
	TotalPrice float64           `json:"total_price"`
}

type CartTotalOutput struct {
	CartID        int64   `json:"cart_id"`
	CustomerName  string  `json:"customer_name"`
	TotalPrice    float64 `json:"total_price"`
	TotalQuantity int64   `json:"total_quantity"`
}

func (u *CartUsecase) CreateCart(ctx context.Context, in CreateCartInput) (model.Cart, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "customer_name required")
	}

	cart, err := u.cartRepo.Create(ctx, model.Cart{
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: in.CustomerEmail,
	})
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cart, nil
}

func (u *CartUsecase) ListCarts(ctx context.Context, in ListCartsInput) ([]model.Cart, error) {
	if err := validatePageWindow(in.Skip, in.Limit); err != nil {
		return nil, err
	}

	carts, err := u.cartRepo.List(ctx, repo.CartListQuery{
		CustomerName: in.CustomerName,
		Skip:         in.Skip,
		Limit:        in.Limit,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return carts, nil
}

func (u *CartUsecase) GetCart(ctx context.Context, cartID int64) (model.Cart, error) {
	if cartID <= 0 {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return model.Cart{}, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cart, nil
}

// UpdateCart changes customer fields only; line items are untouched.
func (u *CartUsecase) UpdateCart(ctx context.Context, cartID int64, in UpdateCartInput) (model.Cart, error) {
	if cartID <= 0 {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	fields := map[string]interface{}{}
	if in.CustomerName != nil {
		if strings.TrimSpace(*in.CustomerName) == "" {
			return model.Cart{}, NewHTTPError(http.StatusBadRequest, "customer_name required")
		}
		fields["customer_name"] = strings.TrimSpace(*in.CustomerName)
	}
	if in.CustomerEmail != nil {
		fields["customer_email"] = *in.CustomerEmail
	}

	if len(fields) == 0 {
		return u.GetCart(ctx, cartID)
	}

	cart, err := u.cartRepo.Update(ctx, cartID, fields)
	if err == repo.ErrNotFound {
		return model.Cart{}, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cart, nil
}

// DeleteCart removes the cart's items first and then the cart, so no orphan
// items survive the cart.
func (u *CartUsecase) DeleteCart(ctx context.Context, cartID int64) error {
	if cartID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	err := u.cartRepo.DeleteWithItems(ctx, cartID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AddItem snapshots the referenced furniture into a new line item. Adding the
// same furniture twice makes two distinct items, each with its own snapshot.
func (u *CartUsecase) AddItem(ctx context.Context, cartID int64, in AddItemInput) (CartItemSummary, error) {
	if cartID <= 0 {
		return CartItemSummary{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	if in.FurnitureID <= 0 {
		return CartItemSummary{}, NewHTTPError(http.StatusBadRequest, "invalid furniture_id")
	}
	if in.Quantity < 1 {
		return CartItemSummary{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	if _, err := u.cartRepo.FindByID(ctx, cartID); err != nil {
		if err == repo.ErrNotFound {
			return CartItemSummary{}, NewHTTPError(http.StatusNotFound, "cart not found")
		}
		return CartItemSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	snap, err := u.resolveSnapshot(ctx, in.FurnitureType, in.FurnitureID)
	if err != nil {
		return CartItemSummary{}, err
	}

	data, err := snap.Encode()
	if err != nil {
		return CartItemSummary{}, NewHTTPError(http.StatusInternalServerError, "snapshot encode failed")
	}

	item, err := u.cartItemRepo.Create(ctx, model.CartItem{
		CartID:        cartID,
		FurnitureType: in.FurnitureType,
		FurnitureID:   in.FurnitureID,
		Quantity:      in.Quantity,
		FurnitureData: data,
	})
	if err != nil {
		return CartItemSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return itemSummary(item, snap), nil
}

// UpdateItemQuantity overwrites the quantity. The subtotal comes from the
// snapshot stored at add time, even if the catalog price has moved since.
func (u *CartUsecase) UpdateItemQuantity(ctx context.Context, cartID int64, itemID int64, quantity int64) (CartItemSummary, error) {
	if cartID <= 0 || itemID <= 0 {
		return CartItemSummary{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if quantity < 1 {
		return CartItemSummary{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	item, err := u.findOwnedItem(ctx, cartID, itemID)
	if err != nil {
		return CartItemSummary{}, err
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, itemID, quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartItemSummary{}, NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		return CartItemSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	item.Quantity = quantity

	snap, _ := item.DecodeSnapshot()
	return itemSummary(item, snap), nil
}

func (u *CartUsecase) RemoveItem(ctx context.Context, cartID int64, itemID int64) error {
	if cartID <= 0 || itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.findOwnedItem(ctx, cartID, itemID); err != nil {
		return err
	}

	if err := u.cartItemRepo.DeleteByID(ctx, itemID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// CartSummary is a read-only composition: customer info, per-item detail and
// the two totals. Nothing here is stored separately.
func (u *CartUsecase) CartSummary(ctx context.Context, cartID int64) (CartSummaryOutput, error) {
	cart, err := u.GetCart(ctx, cartID)
	if err != nil {
		return CartSummaryOutput{}, err
	}

	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartSummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := CartSummaryOutput{
		Customer: CartCustomer{Name: cart.CustomerName, Email: cart.CustomerEmail},
		Items:    make([]CartSummaryItem, 0, len(items)),
	}
	for _, item := range items {
		snap, _ := item.DecodeSnapshot()
		out.Items = append(out.Items, CartSummaryItem{
			ID:       item.ID,
			Type:     item.FurnitureType,
			Name:     snap.Name,
			Price:    snap.Price,
			Quantity: item.Quantity,
			Subtotal: snap.Price * float64(item.Quantity),
		})
		out.TotalItems += item.Quantity
		out.TotalPrice += snap.Price * float64(item.Quantity)
	}
	return out, nil
}

func (u *CartUsecase) CartTotal(ctx context.Context, cartID int64) (CartTotalOutput, error) {
	cart, err := u.GetCart(ctx, cartID)
	if err != nil {
		return CartTotalOutput{}, err
	}

	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartTotalOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := CartTotalOutput{CartID: cart.ID, CustomerName: cart.CustomerName}
	for _, item := range items {
		snap, _ := item.DecodeSnapshot()
		out.TotalPrice += snap.Price * float64(item.Quantity)
		out.TotalQuantity += item.Quantity
	}
	return out, nil
}

// findOwnedItem loads the item and checks it belongs to the cart. A missing
// item and an ownership mismatch look the same to the caller.
func (u *CartUsecase) findOwnedItem(ctx context.Context, cartID int64, itemID int64) (model.CartItem, error) {
	if _, err := u.cartRepo.FindByID(ctx, cartID); err != nil {
		if err == repo.ErrNotFound {
			return model.CartItem{}, NewHTTPError(http.StatusNotFound, "cart not found")
		}
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.cartItemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.CartItem{}, NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if item.CartID != cartID {
		return model.CartItem{}, NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	return item, nil
}

// resolveSnapshot looks the furniture up in the table named by the tag and
// captures its current attributes.
func (u *CartUsecase) resolveSnapshot(ctx context.Context, ftype model.FurnitureType, fid int64) (model.FurnitureSnapshot, error) {
	var (
		snap model.FurnitureSnapshot
		err  error
	)

	switch ftype {
	case model.FurnitureTypeSofa:
		var s model.Sofa
		if s, err = u.sofaRepo.FindByID(ctx, fid); err == nil {
			snap = s.Snapshot()
		}
	case model.FurnitureTypeDiningTable:
		var t model.DiningTable
		if t, err = u.tableRepo.FindByID(ctx, fid); err == nil {
			snap = t.Snapshot()
		}
	case model.FurnitureTypeMattress:
		var m model.Mattress
		if m, err = u.mattressRepo.FindByID(ctx, fid); err == nil {
			snap = m.Snapshot()
		}
	default:
		return model.FurnitureSnapshot{}, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid furniture type: %s", ftype))
	}

	if err == repo.ErrNotFound {
		return model.FurnitureSnapshot{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("%s with ID %d not found", ftype, fid))
	}
	if err != nil {
		return model.FurnitureSnapshot{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return snap, nil
}

func itemSummary(item model.CartItem, snap model.FurnitureSnapshot) CartItemSummary {
	return CartItemSummary{
		ID:            item.ID,
		FurnitureType: item.FurnitureType,
		FurnitureID:   item.FurnitureID,
		Quantity:      item.Quantity,
		Name:          snap.Name,
		Price:         snap.Price,
		Subtotal:      snap.Price * float64(item.Quantity),
	}
}
