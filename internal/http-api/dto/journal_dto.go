package dto

import (
	"time"

	"journalhub/internal/http-api/models"
)

// CreateJournalRequest: payload for creating a journal entry
type CreateJournalRequest struct {
	Title    string     `json:"title" binding:"required"`
	Content  string     `json:"content" binding:"required"`
	Category string     `json:"category" binding:"required"`
	DueDate  *time.Time `json:"due_date,omitempty"`
}

// UpdateJournalRequest: partial update of a journal entry. Pointer fields
// distinguish "not provided" from zero values, so an empty title or
// archive=false are applied rather than ignored.
type UpdateJournalRequest struct {
	Title    *string    `json:"title,omitempty"`
	Content  *string    `json:"content,omitempty"`
	Category *string    `json:"category,omitempty"`
	Archive  *bool      `json:"archive,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
}

// JournalResponse: wire view of a journal entry
type JournalResponse struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Category     string     `json:"category"`
	DateCreated  time.Time  `json:"date_created"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	DateOfUpdate time.Time  `json:"date_of_update"`
	Archive      bool       `json:"archive"`
}

func JournalFromModel(j models.Journal) JournalResponse {
	return JournalResponse{
		ID:           j.ID,
		Title:        j.Title,
		Content:      j.Content,
		Category:     j.Category,
		DateCreated:  j.DateCreated,
		DueDate:      j.DueDate,
		DateOfUpdate: j.DateOfUpdate,
		Archive:      j.Archive,
	}
}

func JournalsFromModels(journals []models.Journal) []JournalResponse {
	resp := make([]JournalResponse, 0, len(journals))
	for _, j := range journals {
		resp = append(resp, JournalFromModel(j))
	}
	return resp
}
