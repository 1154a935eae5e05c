package model

type Sofa struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Furniture `gorm:"embedded"`
	Seats      int    `gorm:"not null" json:"seats"`
	HasSleeper bool   `gorm:"not null;default:false" json:"has_sleeper"`
	FabricType string `gorm:"type:varchar(100)" json:"fabric_type"`
}

func (s Sofa) Snapshot() FurnitureSnapshot {
	snap := s.Furniture.snapshot(s.ID)
	snap.Seats = &s.Seats
	snap.HasSleeper = &s.HasSleeper
	snap.FabricType = &s.FabricType
	return snap
}
