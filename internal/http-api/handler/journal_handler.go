package handler

import (
	"errors"
	"net/http"
	"strconv"

	"journalhub/internal/http-api/dto"
	"journalhub/internal/http-api/models"
	"journalhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type JournalHandler struct {
	journalService service.JournalService
}

func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// RegisterRoutes registers journal routes on an already-authenticated group.
func (h *JournalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.POST("/", h.Create)
	rg.GET("/daily", h.ListDaily)
	rg.GET("/weekly", h.ListWeekly)
	rg.GET("/monthly", h.ListMonthly)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List returns journal entries in insertion order
// GET /journals/?skip=0&limit=10
func (h *JournalHandler) List(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip parameter"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
		return
	}

	journals, err := h.journalService.List(skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list journal entries"})
		return
	}
	c.JSON(http.StatusOK, dto.JournalsFromModels(journals))
}

// Create adds a new journal entry
// POST /journals/
func (h *JournalHandler) Create(c *gin.Context) {
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	journal, err := h.journalService.Create(req.Title, req.Content, req.Category, req.DueDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create journal entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.JournalFromModel(*journal))
}

// ListDaily returns the entries created today
// GET /journals/daily
func (h *JournalHandler) ListDaily(c *gin.Context) {
	h.listWindow(c, h.journalService.ListDaily)
}

// ListWeekly returns the entries of the current Monday-anchored week
// GET /journals/weekly
func (h *JournalHandler) ListWeekly(c *gin.Context) {
	h.listWindow(c, h.journalService.ListWeekly)
}

// ListMonthly returns the entries of the current calendar month
// GET /journals/monthly
func (h *JournalHandler) ListMonthly(c *gin.Context) {
	h.listWindow(c, h.journalService.ListMonthly)
}

func (h *JournalHandler) listWindow(c *gin.Context, list func() ([]models.Journal, error)) {
	journals, err := list()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list journal entries"})
		return
	}
	c.JSON(http.StatusOK, dto.JournalsFromModels(journals))
}

// Update applies a partial update to a journal entry
// PUT /journals/:id
func (h *JournalHandler) Update(c *gin.Context) {
	id, err := parseJournalID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid journal id"})
		return
	}

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	journal, err := h.journalService.Update(id, service.JournalUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Archive:  req.Archive,
		DueDate:  req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJournalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNoFieldsProvided):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update journal entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.JournalFromModel(*journal))
}

// Delete removes a journal entry permanently
// DELETE /journals/:id
func (h *JournalHandler) Delete(c *gin.Context) {
	id, err := parseJournalID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid journal id"})
		return
	}

	if err := h.journalService.Delete(id); err != nil {
		if errors.Is(err, service.ErrJournalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete journal entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "journal entry deleted"})
}

func parseJournalID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
