package main

import (
	"log"

	"github.com/joho/godotenv"

	"furnistore/internal/config"
	"furnistore/internal/domain/model"
	"furnistore/internal/handler"
	"furnistore/internal/infra/db"
	infraRepo "furnistore/internal/infra/repository"
	"furnistore/internal/server"
	"furnistore/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	cfg := config.Load()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Sofa{},
		&model.DiningTable{},
		&model.Mattress{},
		&model.Cart{},
		&model.CartItem{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	// Repositories (GORM implementations)
	sofaRepo := infraRepo.NewSofaGormRepository(gormDB)
	tableRepo := infraRepo.NewDiningTableGormRepository(gormDB)
	mattressRepo := infraRepo.NewMattressGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)

	// Usecases
	sofaUC := usecase.NewSofaUsecase(sofaRepo)
	tableUC := usecase.NewDiningTableUsecase(tableRepo)
	mattressUC := usecase.NewMattressUsecase(mattressRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, sofaRepo, tableRepo, mattressRepo)

	// Handlers
	sofaH := handler.NewSofaHandler(sofaUC)
	tableH := handler.NewDiningTableHandler(tableUC)
	mattressH := handler.NewMattressHandler(mattressUC)
	cartH := handler.NewCartHandler(cartUC)

	e := server.New(sofaH, tableH, mattressH, cartH)

	addr := ":" + cfg.Port
	if err := server.Start(e, addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
