package repository

import (
	"time"

	"journalhub/internal/http-api/models"

	"gorm.io/gorm"
)

// JournalRepository defines the interface for journal entry data operations.
type JournalRepository interface {
	Create(journal *models.Journal) error
	FindByID(id uint) (*models.Journal, error)
	List(skip, limit int) ([]models.Journal, error)
	ListBetween(from, to time.Time) ([]models.Journal, error)
	Update(journal *models.Journal) error
	Delete(id uint) error
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(journal *models.Journal) error {
	return r.db.Create(journal).Error
}

func (r *journalRepository) FindByID(id uint) (*models.Journal, error) {
	var journal models.Journal
	if err := r.db.First(&journal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &journal, nil
}

// List returns entries in insertion order, skipping the first skip rows and
// returning at most limit rows.
func (r *journalRepository) List(skip, limit int) ([]models.Journal, error) {
	var journals []models.Journal
	err := r.db.Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&journals).Error
	if err != nil {
		return nil, err
	}
	return journals, nil
}

// ListBetween returns entries created in the half-open window [from, to).
func (r *journalRepository) ListBetween(from, to time.Time) ([]models.Journal, error) {
	var journals []models.Journal
	err := r.db.Where("date_created >= ? AND date_created < ?", from, to).
		Order("id ASC").
		Find(&journals).Error
	if err != nil {
		return nil, err
	}
	return journals, nil
}

func (r *journalRepository) Update(journal *models.Journal) error {
	return r.db.Save(journal).Error
}

// Delete removes the entry permanently. A missing id reports
// gorm.ErrRecordNotFound so callers can distinguish it from a store failure.
func (r *journalRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Journal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
