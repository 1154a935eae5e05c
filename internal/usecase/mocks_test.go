package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"furnistore/internal/domain/model"
	repo "furnistore/internal/repository"
)

// Repository mocks shared by the usecase tests.

type SofaRepoMock struct{ mock.Mock }

func (m *SofaRepoMock) List(ctx context.Context, q repo.SofaListQuery) ([]model.Sofa, error) {
	args := m.Called(ctx, q)
	sofas, _ := args.Get(0).([]model.Sofa)
	return sofas, args.Error(1)
}

func (m *SofaRepoMock) FindByID(ctx context.Context, id int64) (model.Sofa, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Sofa)
	return s, args.Error(1)
}

func (m *SofaRepoMock) Create(ctx context.Context, s model.Sofa) (model.Sofa, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Sofa)
	return created, args.Error(1)
}

func (m *SofaRepoMock) Update(ctx context.Context, id int64, fields map[string]interface{}) (model.Sofa, error) {
	args := m.Called(ctx, id, fields)
	s, _ := args.Get(0).(model.Sofa)
	return s, args.Error(1)
}

func (m *SofaRepoMock) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type DiningTableRepoMock struct{ mock.Mock }

func (m *DiningTableRepoMock) List(ctx context.Context, q repo.DiningTableListQuery) ([]model.DiningTable, error) {
	args := m.Called(ctx, q)
	tables, _ := args.Get(0).([]model.DiningTable)
	return tables, args.Error(1)
}

func (m *DiningTableRepoMock) FindByID(ctx context.Context, id int64) (model.DiningTable, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(model.DiningTable)
	return t, args.Error(1)
}

func (m *DiningTableRepoMock) Create(ctx context.Context, t model.DiningTable) (model.DiningTable, error) {
	args := m.Called(ctx, t)
	created, _ := args.Get(0).(model.DiningTable)
	return created, args.Error(1)
}

func (m *DiningTableRepoMock) Update(ctx context.Context, id int64, fields map[string]interface{}) (model.DiningTable, error) {
	args := m.Called(ctx, id, fields)
	t, _ := args.Get(0).(model.DiningTable)
	return t, args.Error(1)
}

func (m *DiningTableRepoMock) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MattressRepoMock struct{ mock.Mock }

func (m *MattressRepoMock) List(ctx context.Context, q repo.MattressListQuery) ([]model.Mattress, error) {
	args := m.Called(ctx, q)
	mattresses, _ := args.Get(0).([]model.Mattress)
	return mattresses, args.Error(1)
}

func (m *MattressRepoMock) FindByID(ctx context.Context, id int64) (model.Mattress, error) {
	args := m.Called(ctx, id)
	mt, _ := args.Get(0).(model.Mattress)
	return mt, args.Error(1)
}

func (m *MattressRepoMock) Create(ctx context.Context, mt model.Mattress) (model.Mattress, error) {
	args := m.Called(ctx, mt)
	created, _ := args.Get(0).(model.Mattress)
	return created, args.Error(1)
}

func (m *MattressRepoMock) Update(ctx context.Context, id int64, fields map[string]interface{}) (model.Mattress, error) {
	args := m.Called(ctx, id, fields)
	mt, _ := args.Get(0).(model.Mattress)
	return mt, args.Error(1)
}

func (m *MattressRepoMock) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) List(ctx context.Context, q repo.CartListQuery) ([]model.Cart, error) {
	args := m.Called(ctx, q)
	carts, _ := args.Get(0).([]model.Cart)
	return carts, args.Error(1)
}

func (m *CartRepoMock) FindByID(ctx context.Context, id int64) (model.Cart, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Create(ctx context.Context, c model.Cart) (model.Cart, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Cart)
	return created, args.Error(1)
}

func (m *CartRepoMock) Update(ctx context.Context, id int64, fields map[string]interface{}) (model.Cart, error) {
	args := m.Called(ctx, id, fields)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) DeleteWithItems(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.CartItem)
	return created, args.Error(1)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}
