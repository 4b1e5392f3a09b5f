package models

import (
	"time"

	"harbormaster/internal/shared/constants"
)

type HaulerModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"column:sid;size:32;not null;uniqueIndex"`
	Name      string `gorm:"size:100;not null"`
	Capacity  int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int `gorm:"not null;default:1"`
}

func (HaulerModel) TableName() string {
	return constants.TableHaulers
}
