package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is append-only: it is never updated or deleted once stored.
type Message struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	SenderID   uuid.UUID `json:"senderId" gorm:"type:uuid;index;not null"`
	Sender     *User     `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	ReceiverID uuid.UUID `json:"receiverId" gorm:"type:uuid;index;not null"`
	Receiver   *User     `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}

func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}
	id, err := newID()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}
