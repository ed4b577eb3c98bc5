package service

import (
	"errors"
	"time"

	"journalhub/internal/http-api/models"
	"journalhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrJournalNotFound  = errors.New("journal entry not found")
	ErrNoFieldsProvided = errors.New("no fields provided for update")
)

// JournalUpdate carries the optional entry fields for a partial update; nil
// means not provided, so empty strings and false are settable values.
type JournalUpdate struct {
	Title    *string
	Content  *string
	Category *string
	Archive  *bool
	DueDate  *time.Time
}

func (u JournalUpdate) empty() bool {
	return u.Title == nil && u.Content == nil && u.Category == nil &&
		u.Archive == nil && u.DueDate == nil
}

type JournalService interface {
	Create(title, content, category string, dueDate *time.Time) (*models.Journal, error)
	List(skip, limit int) ([]models.Journal, error)
	ListDaily() ([]models.Journal, error)
	ListWeekly() ([]models.Journal, error)
	ListMonthly() ([]models.Journal, error)
	Update(id uint, update JournalUpdate) (*models.Journal, error)
	Delete(id uint) error
}

type journalService struct {
	journalRepo repository.JournalRepository
	now         func() time.Time
}

func NewJournalService(journalRepo repository.JournalRepository) JournalService {
	return &journalService{
		journalRepo: journalRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *journalService) Create(title, content, category string, dueDate *time.Time) (*models.Journal, error) {
	now := s.now()
	journal := &models.Journal{
		Title:        title,
		Content:      content,
		Category:     category,
		DateCreated:  now,
		DueDate:      dueDate,
		DateOfUpdate: now,
		Archive:      false,
	}

	if err := s.journalRepo.Create(journal); err != nil {
		return nil, err
	}
	return journal, nil
}

func (s *journalService) List(skip, limit int) ([]models.Journal, error) {
	return s.journalRepo.List(skip, limit)
}

// ListDaily returns entries created on today's calendar date, not in a
// rolling 24-hour window.
func (s *journalService) ListDaily() ([]models.Journal, error) {
	from, to := dayWindow(s.now())
	return s.journalRepo.ListBetween(from, to)
}

// ListWeekly returns entries of the current Monday-anchored week.
func (s *journalService) ListWeekly() ([]models.Journal, error) {
	from, to := weekWindow(s.now())
	return s.journalRepo.ListBetween(from, to)
}

// ListMonthly returns entries created in the current calendar month.
func (s *journalService) ListMonthly() ([]models.Journal, error) {
	from, to := monthWindow(s.now())
	return s.journalRepo.ListBetween(from, to)
}

// Update applies the provided fields and refreshes DateOfUpdate. An update
// with no fields leaves the entry untouched and reports ErrNoFieldsProvided.
func (s *journalService) Update(id uint, update JournalUpdate) (*models.Journal, error) {
	journal, err := s.journalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJournalNotFound
		}
		return nil, err
	}

	if update.empty() {
		return nil, ErrNoFieldsProvided
	}

	if update.Title != nil {
		journal.Title = *update.Title
	}
	if update.Content != nil {
		journal.Content = *update.Content
	}
	if update.Category != nil {
		journal.Category = *update.Category
	}
	if update.Archive != nil {
		journal.Archive = *update.Archive
	}
	if update.DueDate != nil {
		journal.DueDate = update.DueDate
	}
	journal.DateOfUpdate = s.now()

	if err := s.journalRepo.Update(journal); err != nil {
		return nil, err
	}
	return journal, nil
}

// Delete removes the entry permanently. There is no tombstone or recovery.
func (s *journalService) Delete(id uint) error {
	if err := s.journalRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJournalNotFound
		}
		return err
	}
	return nil
}

// dayWindow is the half-open window covering now's calendar date.
func dayWindow(now time.Time) (time.Time, time.Time) {
	start := startOfDay(now)
	return start, start.AddDate(0, 0, 1)
}

// weekWindow is the half-open 7-day window starting on the Monday of now's
// week. This is distinct from "the last 7 days".
func weekWindow(now time.Time) (time.Time, time.Time) {
	day := startOfDay(now)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// monthWindow is the half-open window covering now's calendar month.
func monthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
