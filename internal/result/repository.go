package result

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(r *QuizResult) error
	FindByUser(userID uuid.UUID, limit int) ([]QuizResult, error)
	FindByUserAndCourse(userID, courseID uuid.UUID, limit int) ([]QuizResult, error)
	AllByUser(userID uuid.UUID) ([]QuizResult, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(result *QuizResult) error {
	return r.db.Create(result).Error
}

func (r *repository) FindByUser(userID uuid.UUID, limit int) ([]QuizResult, error) {
	var results []QuizResult
	err := r.db.
		Where("user_id = ?", userID).
		Order("taken_at DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *repository) FindByUserAndCourse(userID, courseID uuid.UUID, limit int) ([]QuizResult, error) {
	var results []QuizResult
	err := r.db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("taken_at DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *repository) AllByUser(userID uuid.UUID) ([]QuizResult, error) {
	var results []QuizResult
	if err := r.db.Where("user_id = ?", userID).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
