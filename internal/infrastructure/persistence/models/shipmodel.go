package models

import (
	"time"

	"gorm.io/datatypes"

	"harbormaster/internal/shared/constants"
)

type ShipModel struct {
	ID        uint    `gorm:"primaryKey"`
	SID       string  `gorm:"column:sid;size:32;not null;uniqueIndex"`
	Name      string  `gorm:"size:100;not null"`
	Type      string  `gorm:"size:50;not null"`
	DockID    *uint   `gorm:"index"`
	HaulerID  *uint   `gorm:"index"`
	Manifest  datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int `gorm:"not null;default:1"`
}

func (ShipModel) TableName() string {
	return constants.TableShips
}
