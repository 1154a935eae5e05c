package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"furnistore/internal/domain/model"
	repo "furnistore/internal/repository"
	"furnistore/internal/usecase"
)

type cartMocks struct {
	cartRepo     *CartRepoMock
	cartItemRepo *CartItemRepoMock
	sofaRepo     *SofaRepoMock
	tableRepo    *DiningTableRepoMock
	mattressRepo *MattressRepoMock
}

func newCartUsecase() (*usecase.CartUsecase, cartMocks) {
	m := cartMocks{
		cartRepo:     new(CartRepoMock),
		cartItemRepo: new(CartItemRepoMock),
		sofaRepo:     new(SofaRepoMock),
		tableRepo:    new(DiningTableRepoMock),
		mattressRepo: new(MattressRepoMock),
	}
	uc := usecase.NewCartUsecase(m.cartRepo, m.cartItemRepo, m.sofaRepo, m.tableRepo, m.mattressRepo)
	return uc, m
}

func testSofa(id int64, price float64) model.Sofa {
	return model.Sofa{
		ID: id,
		Furniture: model.Furniture{
			Name:     "KIVIK",
			Price:    price,
			Color:    "Gray",
			Material: "Leather",
			WeightKg: 45.5,
			InStock:  true,
		},
		Seats:      3,
		FabricType: "Velvet",
	}
}

// a cart item whose snapshot was taken from the given sofa
func testItem(t *testing.T, itemID int64, cartID int64, sofa model.Sofa, qty int64) model.CartItem {
	t.Helper()
	data, err := sofa.Snapshot().Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return model.CartItem{
		ID:            itemID,
		CartID:        cartID,
		FurnitureType: model.FurnitureTypeSofa,
		FurnitureID:   sofa.ID,
		Quantity:      qty,
		FurnitureData: data,
	}
}

// ---- CreateCart ----

func TestCartUsecase_CreateCart_NameRequired(t *testing.T) {
	uc, _ := newCartUsecase()

	_, err := uc.CreateCart(context.Background(), usecase.CreateCartInput{CustomerName: "   "})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestCartUsecase_CreateCart_Success(t *testing.T) {
	uc, m := newCartUsecase()

	m.cartRepo.On("Create", mock.Anything, model.Cart{CustomerName: "John Doe", CustomerEmail: "john@example.com"}).
		Return(model.Cart{ID: 1, CustomerName: "John Doe", CustomerEmail: "john@example.com"}, nil)

	cart, err := uc.CreateCart(context.Background(), usecase.CreateCartInput{
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), cart.ID)
	m.cartRepo.AssertExpectations(t)
}

// ---- AddItem ----

func TestCartUsecase_AddItem_InvalidFurnitureType(t *testing.T) {
	uc, m := newCartUsecase()
	m.cartRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1}, nil)

	_, err := uc.AddItem(context.Background(), 1, usecase.AddItemInput{
		FurnitureType: "desk",
		FurnitureID:   5,
		Quantity:      1,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Contains(t, he.Message, "invalid furniture type")
}

func TestCartUsecase_AddItem_CartNotFound(t *testing.T) {
	uc, m := newCartUsecase()
	m.cartRepo.On("FindByID", mock.Anything, int64(9)).Return(model.Cart{}, repo.ErrNotFound)

	_, err := uc.AddItem(context.Background(), 9, usecase.AddItemInput{
		FurnitureType: model.FurnitureTypeSofa,
		FurnitureID:   5,
		Quantity:      1,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestCartUsecase_AddItem_FurnitureNotFound(t *testing.T) {
	uc, m := newCartUsecase()
	m.cartRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1}, nil)
	m.sofaRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Sofa{}, repo.ErrNotFound)

	_, err := uc.AddItem(context.Background(), 1, usecase.AddItemInput{
		FurnitureType: model.FurnitureTypeSofa,
		FurnitureID:   5,
		Quantity:      1,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
	assert.Contains(t, he.Message, "sofa with ID 5 not found")
}

func TestCartUsecase_AddItem_InvalidQuantity(t *testing.T) {
	uc, _ := newCartUsecase()

	_, err := uc.AddItem(context.Background(), 1, usecase.AddItemInput{
		FurnitureType: model.FurnitureTypeSofa,
		FurnitureID:   5,
		Quantity:      0,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestCartUsecase_AddItem_SnapshotsPrice(t *testing.T) {
	uc, m := newCartUsecase()

	sofa := testSofa(5, 500.0)
	m.cartRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1}, nil)
	m.sofaRepo.On("FindByID", mock.Anything, int64(5)).Return(sofa, nil)

	m.cartItemRepo.On("Create", mock.Anything, mock.MatchedBy(func(item model.CartItem) bool {
		snap, err := item.DecodeSnapshot()
		if err != nil {
			return false
		}
		return item.CartID == 1 &&
			item.FurnitureType == model.FurnitureTypeSofa &&
			item.FurnitureID == 5 &&
			item.Quantity == 2 &&
			snap.Price == 500.0 &&
			snap.Name == "KIVIK"
	})).Return(testItem(t, 10, 1, sofa, 2), nil)

	out, err := uc.AddItem(context.Background(), 1, usecase.AddItemInput{
		FurnitureType: model.FurnitureTypeSofa,
		FurnitureID:   5,
		Quantity:      2,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	assert.Equal(t, 500.0, out.Price)
	assert.Equal(t, 1000.0, out.Subtotal)
	m.cartItemRepo.AssertExpectations(t)
}

// ---- UpdateItemQuantity ----

func TestCartUsecase_UpdateItemQuantity_UsesStoredSnapshotPrice(t *testing.T) {
	uc, m := newCartUsecase()

	// snapshot was taken when the sofa cost 500; the catalog price has
	// moved since, and the subtotal must not notice
	item := testItem(t, 10, 1, testSofa(5, 500.0), 2)
	m.cartRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1}, nil)
	m.cartItemRepo.On("FindByID", mock.Anything, int64(10)).Return(item, nil)
	m.cartItemRepo.On("UpdateQuantity", mock.Anything, int64(10), int64(3)).Return(nil)

	out, err := uc.UpdateItemQuantity(context.Background(), 1, 10, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.Quantity)
	assert.Equal(t, 500.0, out.Price)
	assert.Equal(t, 1500.0, out.Subtotal)
	m.sofaRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCartUsecase_UpdateItemQuantity_WrongCart(t *testing.T) {
	uc, m := newCartUsecase()

	item := testItem(t, 10, 2, testSofa(5, 500.0), 1)
	m.cartRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1}, nil)
	m.cartItemRepo.On("FindByID", mock.Anything, int64(10)).Return(item, nil)

	_, err := uc.UpdateItemQuantity(context.Background(), 1, 10, 3)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
	m.cartItemRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_UpdateItemQuantity_InvalidQuantity(t *testing.T) {
	uc, _ := newCartUsecase()

	_, err := uc.UpdateItemQuantity(context.Background(), 1, 10, 0)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

// ---- RemoveItem ----

func TestCartUsecase_RemoveItem_NotFound(t *testing.T) {
	uc, m := newCartUsecase()

	m.cartRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1}, nil)
	m.cartItemRepo.On("FindByID", mock.Anything, int64(99)).Return(model.CartItem{}, repo.ErrNotFound)

	err := uc.RemoveItem(context.Background(), 1, 99)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
	m.cartItemRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestCartUsecase_RemoveItem_Success(t *testing.T) {
	uc, m := newCartUsecase()

	item := testItem(t, 10, 1, testSofa(5, 500.0), 1)
	m.cartRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1}, nil)
	m.cartItemRepo.On("FindByID", mock.Anything, int64(10)).Return(item, nil)
	m.cartItemRepo.On("DeleteByID", mock.Anything, int64(10)).Return(nil)

	assert.NoError(t, uc.RemoveItem(context.Background(), 1, 10))
	m.cartItemRepo.AssertExpectations(t)
}

// ---- totals and summary ----

func TestCartUsecase_CartTotal_EmptyCart(t *testing.T) {
	uc, m := newCartUsecase()

	m.cartRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1, CustomerName: "John Doe"}, nil)
	m.cartItemRepo.On("ListByCartID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	out, err := uc.CartTotal(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, out.TotalPrice)
	assert.Equal(t, int64(0), out.TotalQuantity)
}

func TestCartUsecase_CartTotal_Additive(t *testing.T) {
	uc, m := newCartUsecase()

	items := []model.CartItem{
		testItem(t, 10, 1, testSofa(5, 100.0), 1),
		testItem(t, 11, 1, testSofa(6, 250.0), 2),
	}
	m.cartRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Cart{ID: 1, CustomerName: "John Doe"}, nil)
	m.cartItemRepo.On("ListByCartID", mock.Anything, int64(1)).Return(items, nil)

	out, err := uc.CartTotal(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.CartID)
	assert.Equal(t, "John Doe", out.CustomerName)
	assert.Equal(t, 600.0, out.TotalPrice)
	assert.Equal(t, int64(3), out.TotalQuantity)
}

func TestCartUsecase_CartSummary(t *testing.T) {
	uc, m := newCartUsecase()

	items := []model.CartItem{
		testItem(t, 10, 1, testSofa(5, 500.0), 2),
	}
	cart := model.Cart{ID: 1, CustomerName: "John Doe", CustomerEmail: "john@example.com"}
	m.cartRepo.On("FindByID", mock.Anything, int64(1)).Return(cart, nil)
	m.cartItemRepo.On("ListByCartID", mock.Anything, int64(1)).Return(items, nil)

	out, err := uc.CartSummary(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "John Doe", out.Customer.Name)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, model.FurnitureTypeSofa, out.Items[0].Type)
	assert.Equal(t, "KIVIK", out.Items[0].Name)
	assert.Equal(t, 1000.0, out.Items[0].Subtotal)
	assert.Equal(t, int64(2), out.TotalItems)
	assert.Equal(t, 1000.0, out.TotalPrice)
}

// ---- DeleteCart ----

func TestCartUsecase_DeleteCart_NotFound(t *testing.T) {
	uc, m := newCartUsecase()
	m.cartRepo.On("DeleteWithItems", mock.Anything, int64(9)).Return(repo.ErrNotFound)

	err := uc.DeleteCart(context.Background(), 9)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestCartUsecase_DeleteCart_Success(t *testing.T) {
	uc, m := newCartUsecase()
	m.cartRepo.On("DeleteWithItems", mock.Anything, int64(1)).Return(nil)

	assert.NoError(t, uc.DeleteCart(context.Background(), 1))
	m.cartRepo.AssertExpectations(t)
}
