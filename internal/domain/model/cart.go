package model

import "time"

// One cart per checkout session. Items hang off it by cart_id.
type Cart struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedDate   time.Time `gorm:"not null;autoCreateTime" json:"created_date"`
	CustomerName  string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail string    `gorm:"type:varchar(255)" json:"customer_email"`
}
