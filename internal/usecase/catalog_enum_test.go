package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"furnistore/internal/domain/model"
	"furnistore/internal/usecase"
)

func TestDiningTableUsecase_CreateDiningTable_InvalidShape(t *testing.T) {
	uc := usecase.NewDiningTableUsecase(new(DiningTableRepoMock))

	_, err := uc.CreateDiningTable(context.Background(), usecase.CreateDiningTableInput{
		Name:  "EKEDALEN",
		Price: 199.99,
		Shape: "Triangle",
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "invalid shape", he.Message)
}

func TestDiningTableUsecase_CreateDiningTable_ValidShape(t *testing.T) {
	tRepo := new(DiningTableRepoMock)
	uc := usecase.NewDiningTableUsecase(tRepo)

	tRepo.On("Create", mock.Anything, mock.Anything).Return(model.DiningTable{ID: 1}, nil)

	_, err := uc.CreateDiningTable(context.Background(), usecase.CreateDiningTableInput{
		Name:  "EKEDALEN",
		Price: 199.99,
		Shape: model.TableShapeRound,
	})
	assert.NoError(t, err)
}

func TestMattressUsecase_CreateMattress_InvalidSize(t *testing.T) {
	uc := usecase.NewMattressUsecase(new(MattressRepoMock))

	_, err := uc.CreateMattress(context.Background(), usecase.CreateMattressInput{
		Name:     "HAUGESUND",
		Price:    299.99,
		Size:     "Gigantic",
		Firmness: model.MattressFirmMedium,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "invalid size", he.Message)
}

func TestMattressUsecase_CreateMattress_InvalidFirmness(t *testing.T) {
	uc := usecase.NewMattressUsecase(new(MattressRepoMock))

	_, err := uc.CreateMattress(context.Background(), usecase.CreateMattressInput{
		Name:     "HAUGESUND",
		Price:    299.99,
		Size:     model.MattressSizeQueen,
		Firmness: "Rock-hard",
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "invalid firmness", he.Message)
}

func TestMattressUsecase_ListMattresses_InvalidFirmnessFilter(t *testing.T) {
	uc := usecase.NewMattressUsecase(new(MattressRepoMock))

	bad := model.MattressFirm("Rock-hard")
	_, err := uc.ListMattresses(context.Background(), usecase.ListMattressesInput{
		Firmness: &bad,
		Limit:    100,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}
