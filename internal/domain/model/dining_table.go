package model

type TableShape string

const (
	TableShapeRound     TableShape = "Round"
	TableShapeRectangle TableShape = "Rectangle"
	TableShapeSquare    TableShape = "Square"
	TableShapeOval      TableShape = "Oval"
	TableShapeHexagon   TableShape = "Hexagon"
)

func (s TableShape) Valid() bool {
	switch s {
	case TableShapeRound, TableShapeRectangle, TableShapeSquare, TableShapeOval, TableShapeHexagon:
		return true
	}
	return false
}

type DiningTable struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Furniture `gorm:"embedded"`
	Seats      int        `gorm:"not null" json:"seats"`
	Shape      TableShape `gorm:"type:varchar(20);not null" json:"shape"`
	Extendable bool       `gorm:"not null;default:false" json:"extendable"`
}

func (t DiningTable) Snapshot() FurnitureSnapshot {
	snap := t.Furniture.snapshot(t.ID)
	snap.Seats = &t.Seats
	snap.Shape = &t.Shape
	snap.Extendable = &t.Extendable
	return snap
}
