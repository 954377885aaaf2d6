package chat

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(m *ChatMessage) error
	FindByUser(userID uuid.UUID, limit int) ([]ChatMessage, error)
	DeleteByUser(userID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(m *ChatMessage) error {
	return r.db.Create(m).Error
}

// FindByUser returns the newest messages in chronological order.
func (r *repository) FindByUser(userID uuid.UUID, limit int) ([]ChatMessage, error) {
	var messages []ChatMessage
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *repository) DeleteByUser(userID uuid.UUID) error {
	return r.db.Delete(&ChatMessage{}, "user_id = ?", userID).Error
}
