package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"furnistore/internal/config"
	"furnistore/internal/domain/model"
	"furnistore/internal/infra/db"
)

// Seeds ten records per catalog table. Tables that already have rows are
// left alone, so the command is safe to run on every start.
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

	if err := seedSofas(gormDB); err != nil {
		log.Fatalf("seed sofas failed: %v", err)
	}
	if err := seedDiningTables(gormDB); err != nil {
		log.Fatalf("seed dining tables failed: %v", err)
	}
	if err := seedMattresses(gormDB); err != nil {
		log.Fatalf("seed mattresses failed: %v", err)
	}

	log.Println("seed complete")
}

func tableEmpty(gormDB *gorm.DB, m interface{}) (bool, error) {
	var count int64
	if err := gormDB.Model(m).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func baseFurniture(name string, price float64, color string, material string, weight float64) model.Furniture {
	return model.Furniture{
		Name:      name,
		Price:     price,
		Color:     color,
		Material:  material,
		WeightKg:  weight,
		DateAdded: time.Now(),
		InStock:   true,
	}
}

func seedSofas(gormDB *gorm.DB) error {
	empty, err := tableEmpty(gormDB, &model.Sofa{})
	if err != nil || !empty {
		return err
	}

	colors := []string{"Gray", "Blue", "Beige", "Black", "White"}
	materials := []string{"Polyester", "Cotton", "Leather", "Wool", "Linen"}
	fabrics := []string{"Microfiber", "Velvet", "Canvas", "Chenille", "Tweed"}

	for i := 0; i < 10; i++ {
		price := 499.99 + float64(i*50) + (rand.Float64()*40 - 20)
		s := model.Sofa{
			Furniture:  baseFurniture(fmt.Sprintf("KIVIK %d", i), price, colors[i%len(colors)], materials[i%len(materials)], 45.5+float64(i*2)),
			Seats:      2 + i%3,
			HasSleeper: i%2 == 0,
			FabricType: fabrics[i%len(fabrics)],
		}
		if err := gormDB.Create(&s).Error; err != nil {
			return err
		}
	}
	log.Println("seeded 10 sofas")
	return nil
}

func seedDiningTables(gormDB *gorm.DB) error {
	empty, err := tableEmpty(gormDB, &model.DiningTable{})
	if err != nil || !empty {
		return err
	}

	colors := []string{"Oak", "Birch", "Walnut", "White", "Black"}
	materials := []string{"Wood", "Particleboard", "Bamboo", "MDF", "Solid Pine"}
	shapes := []model.TableShape{
		model.TableShapeRectangle,
		model.TableShapeRound,
		model.TableShapeSquare,
		model.TableShapeOval,
		model.TableShapeHexagon,
	}

	for i := 0; i < 10; i++ {
		price := 199.99 + float64(i*30) + (rand.Float64()*30 - 15)
		t := model.DiningTable{
			Furniture:  baseFurniture(fmt.Sprintf("EKEDALEN %d", i), price, colors[i%len(colors)], materials[i%len(materials)], 25.0+float64(i*3)),
			Seats:      4 + i%4,
			Shape:      shapes[i%len(shapes)],
			Extendable: i%2 == 0,
		}
		if err := gormDB.Create(&t).Error; err != nil {
			return err
		}
	}
	log.Println("seeded 10 dining tables")
	return nil
}

func seedMattresses(gormDB *gorm.DB) error {
	empty, err := tableEmpty(gormDB, &model.Mattress{})
	if err != nil || !empty {
		return err
	}

	colors := []string{"White", "Beige", "Gray", "Off-white", "Cream"}
	materials := []string{"Memory Foam", "Spring", "Latex", "Hybrid", "Gel"}
	sizes := []model.MattressSize{
		model.MattressSizeTwin,
		model.MattressSizeFull,
		model.MattressSizeQueen,
		model.MattressSizeKing,
		model.MattressSizeCalifornia,
	}
	firmnesses := []model.MattressFirm{
		model.MattressFirmSoft,
		model.MattressFirmMediumSoft,
		model.MattressFirmMedium,
		model.MattressFirmMediumFirm,
		model.MattressFirmFirm,
	}

	for i := 0; i < 10; i++ {
		price := 299.99 + float64(i*40) + (rand.Float64()*50 - 25)
		m := model.Mattress{
			Furniture:   baseFurniture(fmt.Sprintf("HAUGESUND %d", i), price, colors[i%len(colors)], materials[i%len(materials)], 15.0+float64(i*2)),
			Size:        sizes[i%len(sizes)],
			Firmness:    firmnesses[i%len(firmnesses)],
			ThicknessCm: 15.0 + float64(i)*0.5,
		}
		if err := gormDB.Create(&m).Error; err != nil {
			return err
		}
	}
	log.Println("seeded 10 mattresses")
	return nil
}
