package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	TargetAmount float64   `json:"targetAmount" gorm:"not null"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Sector       string    `json:"sector,omitempty" gorm:"index"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"` // owner, fixed at creation
	User         *User     `json:"owner,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID != uuid.Nil {
		return nil
	}
	id, err := newID()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}
