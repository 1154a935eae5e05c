package model

import (
	"encoding/json"
	"time"
)

// Tag stored on cart items to say which catalog table the snapshot came from.
type FurnitureType string

const (
	FurnitureTypeSofa        FurnitureType = "sofa"
	FurnitureTypeDiningTable FurnitureType = "dining_table"
	FurnitureTypeMattress    FurnitureType = "mattress"
)

func (t FurnitureType) Valid() bool {
	switch t {
	case FurnitureTypeSofa, FurnitureTypeDiningTable, FurnitureTypeMattress:
		return true
	}
	return false
}

// Furniture holds the attributes shared by all three catalog tables.
// Embedded into Sofa / DiningTable / Mattress so the columns stay flat.
type Furniture struct {
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Color     string    `gorm:"type:varchar(100)" json:"color"`
	Material  string    `gorm:"type:varchar(100)" json:"material"`
	WeightKg  float64   `gorm:"column:weight_kg" json:"weight_kg"`
	DateAdded time.Time `gorm:"not null" json:"date_added"`
	InStock   bool      `gorm:"not null;default:true" json:"in_stock"`
}

// FurnitureSnapshot is the denormalized copy of a catalog record stored
// inside a cart item at add time. Variant fields are pointers so one shape
// serves all three tables; absent fields stay out of the JSON.
type FurnitureSnapshot struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Color     string  `json:"color"`
	Material  string  `json:"material"`
	WeightKg  float64 `json:"weight_kg"`
	InStock   bool    `json:"in_stock"`
	DateAdded string  `json:"date_added"`

	Seats       *int          `json:"seats,omitempty"`
	HasSleeper  *bool         `json:"has_sleeper,omitempty"`
	FabricType  *string       `json:"fabric_type,omitempty"`
	Shape       *TableShape   `json:"shape,omitempty"`
	Extendable  *bool         `json:"extendable,omitempty"`
	Size        *MattressSize `json:"size,omitempty"`
	Firmness    *MattressFirm `json:"firmness,omitempty"`
	ThicknessCm *float64      `json:"thickness_cm,omitempty"`
}

func (s FurnitureSnapshot) Encode() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// common fields shared by the three Snapshot() constructors
func (f Furniture) snapshot(id int64) FurnitureSnapshot {
	return FurnitureSnapshot{
		ID:        id,
		Name:      f.Name,
		Price:     f.Price,
		Color:     f.Color,
		Material:  f.Material,
		WeightKg:  f.WeightKg,
		InStock:   f.InStock,
		DateAdded: f.DateAdded.Format("2006-01-02"),
	}
}
