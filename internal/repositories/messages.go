package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/rohits-web03/fundbridge/internal/models"
)

func (s *Store) CreateMessage(ctx context.Context, m *models.Message) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// ListMessagesFor returns every message userID sent or received, oldest first.
func (s *Store) ListMessagesFor(ctx context.Context, userID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at ASC").Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
