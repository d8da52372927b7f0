package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/coursehub-api/internal/service"
	"github.com/coursehub/coursehub-api/pkg/response"
)

// DictionaryHandler exposes the lookup table endpoints.
type DictionaryHandler struct {
	dictionaries *service.DictionaryService
}

// NewDictionaryHandler constructs DictionaryHandler.
func NewDictionaryHandler(dictionaries *service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{dictionaries: dictionaries}
}

// UserStatuses godoc
// @Summary List user statuses
// @Tags Dictionaries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dictionaries/user-statuses [get]
func (h *DictionaryHandler) UserStatuses(c *gin.Context) {
	entries, err := h.dictionaries.UserStatuses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Roles godoc
// @Summary List roles
// @Tags Dictionaries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dictionaries/roles [get]
func (h *DictionaryHandler) Roles(c *gin.Context) {
	entries, err := h.dictionaries.Roles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// CourseLevels godoc
// @Summary List course levels
// @Tags Dictionaries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dictionaries/course-levels [get]
func (h *DictionaryHandler) CourseLevels(c *gin.Context) {
	entries, err := h.dictionaries.CourseLevels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// AssignmentTypes godoc
// @Summary List assignment types
// @Tags Dictionaries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dictionaries/assignment-types [get]
func (h *DictionaryHandler) AssignmentTypes(c *gin.Context) {
	entries, err := h.dictionaries.AssignmentTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// EnrollmentStatuses godoc
// @Summary List enrollment statuses
// @Tags Dictionaries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dictionaries/enrollment-statuses [get]
func (h *DictionaryHandler) EnrollmentStatuses(c *gin.Context) {
	entries, err := h.dictionaries.EnrollmentStatuses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Languages godoc
// @Summary List languages
// @Tags Dictionaries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dictionaries/languages [get]
func (h *DictionaryHandler) Languages(c *gin.Context) {
	entries, err := h.dictionaries.Languages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Categories godoc
// @Summary List categories ordered by name
// @Tags Dictionaries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dictionaries/categories [get]
func (h *DictionaryHandler) Categories(c *gin.Context) {
	entries, err := h.dictionaries.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}
