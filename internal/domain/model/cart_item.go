package model

import (
	"encoding/json"
	"time"
)

// Cart line item. FurnitureData is the JSON snapshot captured when the item
// was added; totals always read the price from there, never from the catalog.
type CartItem struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID        int64         `gorm:"not null;index" json:"cart_id"`
	FurnitureType FurnitureType `gorm:"type:varchar(20);not null" json:"furniture_type"`
	FurnitureID   int64         `gorm:"not null" json:"furniture_id"`
	Quantity      int64         `gorm:"not null;default:1" json:"quantity"`
	FurnitureData string        `gorm:"type:text;not null" json:"-"`
	CreatedAt     time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (i CartItem) DecodeSnapshot() (FurnitureSnapshot, error) {
	var snap FurnitureSnapshot
	if err := json.Unmarshal([]byte(i.FurnitureData), &snap); err != nil {
		return FurnitureSnapshot{}, err
	}
	return snap, nil
}
