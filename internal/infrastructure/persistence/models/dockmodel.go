package models

import (
	"time"

	"harbormaster/internal/shared/constants"
)

type DockModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"column:sid;size:32;not null;uniqueIndex"`
	Location  string `gorm:"size:200;not null"`
	Notes     string `gorm:"type:text"`
	Capacity  int    `gorm:"not null"`
	Status    string `gorm:"size:20;not null;default:'active';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int `gorm:"not null;default:1"`
}

func (DockModel) TableName() string {
	return constants.TableDocks
}
