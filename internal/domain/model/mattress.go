package model

type MattressSize string

const (
	MattressSizeTwin       MattressSize = "Twin"
	MattressSizeFull       MattressSize = "Full"
	MattressSizeQueen      MattressSize = "Queen"
	MattressSizeKing       MattressSize = "King"
	MattressSizeCalifornia MattressSize = "California King"
)

func (s MattressSize) Valid() bool {
	switch s {
	case MattressSizeTwin, MattressSizeFull, MattressSizeQueen, MattressSizeKing, MattressSizeCalifornia:
		return true
	}
	return false
}

type MattressFirm string

const (
	MattressFirmSoft       MattressFirm = "Soft"
	MattressFirmMediumSoft MattressFirm = "Medium-soft"
	MattressFirmMedium     MattressFirm = "Medium"
	MattressFirmMediumFirm MattressFirm = "Medium-firm"
	MattressFirmFirm       MattressFirm = "Firm"
)

func (f MattressFirm) Valid() bool {
	switch f {
	case MattressFirmSoft, MattressFirmMediumSoft, MattressFirmMedium, MattressFirmMediumFirm, MattressFirmFirm:
		return true
	}
	return false
}

type Mattress struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Furniture `gorm:"embedded"`
	Size        MattressSize `gorm:"type:varchar(20);not null" json:"size"`
	Firmness    MattressFirm `gorm:"type:varchar(20);not null" json:"firmness"`
	ThicknessCm float64      `gorm:"column:thickness_cm" json:"thickness_cm"`
}

func (m Mattress) Snapshot() FurnitureSnapshot {
	snap := m.Furniture.snapshot(m.ID)
	snap.Size = &m.Size
	snap.Firmness = &m.Firmness
	snap.ThicknessCm = &m.ThicknessCm
	return snap
}
