package repository_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"furnistore/internal/domain/model"
	infra "furnistore/internal/infra/repository"
	repo "furnistore/internal/repository"
	"furnistore/internal/usecase"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&model.Sofa{},
		&model.DiningTable{},
		&model.Mattress{},
		&model.Cart{},
		&model.CartItem{},
	))
	return db
}

func mustCreateSofa(t *testing.T, r *infra.SofaGormRepository, name string, price float64, material string, sleeper bool) model.Sofa {
	s, err := r.Create(context.Background(), model.Sofa{
		Furniture:  model.Furniture{Name: name, Price: price, Material: material, InStock: true},
		Seats:      3,
		HasSleeper: sleeper,
	})
	assert.NoError(t, err)
	return s
}

func TestSofaGormRepository_List_ConjunctiveFilters(t *testing.T) {
	db := newTestDB(t)
	r := infra.NewSofaGormRepository(db)

	mustCreateSofa(t, r, "KIVIK", 500, "Leather", true)
	mustCreateSofa(t, r, "EKTORP", 800, "Leather", false)  // sleeper mismatch
	mustCreateSofa(t, r, "SODERHAMN", 900, "Cotton", true) // material mismatch
	mustCreateSofa(t, r, "LANDSKRONA", 300, "Leather", true)

	material := "Leather"
	minPrice := 400.0
	sleeper := true
	sofas, err := r.List(context.Background(), repo.SofaListQuery{
		Material:   &material,
		MinPrice:   &minPrice,
		HasSleeper: &sleeper,
		Limit:      100,
	})
	assert.NoError(t, err)
	assert.Len(t, sofas, 1)
	assert.Equal(t, "KIVIK", sofas[0].Name)
}

func TestSofaGormRepository_NotFoundTranslation(t *testing.T) {
	db := newTestDB(t)
	r := infra.NewSofaGormRepository(db)

	_, err := r.FindByID(context.Background(), 42)
	assert.Equal(t, repo.ErrNotFound, err)

	_, err = r.Update(context.Background(), 42, map[string]interface{}{"price": 600.0})
	assert.Equal(t, repo.ErrNotFound, err)

	assert.Equal(t, repo.ErrNotFound, r.DeleteByID(context.Background(), 42))
}

func TestCartGormRepository_DeleteWithItems_NoOrphans(t *testing.T) {
	db := newTestDB(t)
	cartRepo := infra.NewCartGormRepository(db)
	itemRepo := infra.NewCartItemGormRepository(db)
	ctx := context.Background()

	cart, err := cartRepo.Create(ctx, model.Cart{CustomerName: "John Doe"})
	assert.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = itemRepo.Create(ctx, model.CartItem{
			CartID:        cart.ID,
			FurnitureType: model.FurnitureTypeSofa,
			FurnitureID:   int64(i + 1),
			Quantity:      1,
			FurnitureData: "{}",
		})
		assert.NoError(t, err)
	}

	assert.NoError(t, cartRepo.DeleteWithItems(ctx, cart.ID))

	_, err = cartRepo.FindByID(ctx, cart.ID)
	assert.Equal(t, repo.ErrNotFound, err)

	var count int64
	assert.NoError(t, db.Model(&model.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// second delete finds nothing
	assert.Equal(t, repo.ErrNotFound, cartRepo.DeleteWithItems(ctx, cart.ID))
}

func TestCartGormRepository_List_LiteralWildcardFilter(t *testing.T) {
	db := newTestDB(t)
	r := infra.NewCartGormRepository(db)
	ctx := context.Background()

	for _, name := range []string{"100% Cotton Co", "100x Cotton Co", "A_B Imports", "AxB Imports"} {
		_, err := r.Create(ctx, model.Cart{CustomerName: name})
		assert.NoError(t, err)
	}

	filter := "100%"
	carts, err := r.List(ctx, repo.CartListQuery{CustomerName: &filter, Limit: 100})
	assert.NoError(t, err)
	assert.Len(t, carts, 1)
	assert.Equal(t, "100% Cotton Co", carts[0].CustomerName)

	filter = "A_B"
	carts, err = r.List(ctx, repo.CartListQuery{CustomerName: &filter, Limit: 100})
	assert.NoError(t, err)
	assert.Len(t, carts, 1)
	assert.Equal(t, "A_B Imports", carts[0].CustomerName)
}

// Full flow over a real store: the price captured at add time drives every
// total, whatever happens to the catalog row afterwards, and deleting the
// cart leaves no items behind.
func TestCartFlow_SnapshotAndCascadeOverRealStore(t *testing.T) {
	db := newTestDB(t)
	sofaRepo := infra.NewSofaGormRepository(db)
	tableRepo := infra.NewDiningTableGormRepository(db)
	mattressRepo := infra.NewMattressGormRepository(db)
	cartRepo := infra.NewCartGormRepository(db)
	itemRepo := infra.NewCartItemGormRepository(db)
	uc := usecase.NewCartUsecase(cartRepo, itemRepo, sofaRepo, tableRepo, mattressRepo)
	ctx := context.Background()

	sofa := mustCreateSofa(t, sofaRepo, "KIVIK", 500, "Leather", false)
	cart, err := uc.CreateCart(ctx, usecase.CreateCartInput{CustomerName: "John Doe"})
	assert.NoError(t, err)

	item, err := uc.AddItem(ctx, cart.ID, usecase.AddItemInput{
		FurnitureType: model.FurnitureTypeSofa,
		FurnitureID:   sofa.ID,
		Quantity:      2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, item.Subtotal)

	// catalog price moves, the snapshot does not
	_, err = sofaRepo.Update(ctx, sofa.ID, map[string]interface{}{"price": 600.0})
	assert.NoError(t, err)

	total, err := uc.CartTotal(ctx, cart.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, total.TotalPrice)
	assert.Equal(t, int64(2), total.TotalQuantity)

	updated, err := uc.UpdateItemQuantity(ctx, cart.ID, item.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, 1500.0, updated.Subtotal)

	assert.NoError(t, uc.DeleteCart(ctx, cart.ID))

	var count int64
	assert.NoError(t, db.Model(&model.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
