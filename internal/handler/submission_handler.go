package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/coursehub-api/internal/models"
	"github.com/coursehub/coursehub-api/internal/service"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
	"github.com/coursehub/coursehub-api/pkg/response"
)

// SubmissionHandler exposes submission endpoints.
type SubmissionHandler struct {
	submissions *service.SubmissionService
}

// NewSubmissionHandler constructs SubmissionHandler.
func NewSubmissionHandler(submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// Create godoc
// @Summary Record an answer to an assignment
// @Tags Submissions
// @Accept json
// @Produce json
// @Param payload body models.CreateSubmissionRequest true "Submission payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /submissions [post]
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req models.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	submission, err := h.submissions.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, submission)
}

// Get godoc
// @Summary Get a submission
// @Tags Submissions
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} response.Envelope
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	submission, err := h.submissions.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, submission, nil)
}

// Grade godoc
// @Summary Record score and feedback for a submission
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param payload body models.GradeSubmissionRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Router /submissions/{id}/grade [put]
func (h *SubmissionHandler) Grade(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.GradeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	submission, err := h.submissions.Grade(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, submission, nil)
}

// StudentCourseSubmissions godoc
// @Summary List one student's submissions inside one course
// @Tags Submissions
// @Produce json
// @Param sid path int true "Student ID"
// @Param cid path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /students/{sid}/courses/{cid}/submissions [get]
func (h *SubmissionHandler) StudentCourseSubmissions(c *gin.Context) {
	studentID, ok := pathID(c, "sid")
	if !ok {
		return
	}
	courseID, ok := pathID(c, "cid")
	if !ok {
		return
	}
	submissions, err := h.submissions.ListByStudentCourse(c.Request.Context(), studentID, courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, submissions, nil)
}

// AttachFile godoc
// @Summary Attach an externally stored file by URL
// @Tags Submissions
// @Accept json
// @Produce json
// @Param payload body models.CreateSubmissionFileRequest true "File payload"
// @Success 201 {object} response.Envelope
// @Router /submissions/files [post]
func (h *SubmissionHandler) AttachFile(c *gin.Context) {
	var req models.CreateSubmissionFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	file, err := h.submissions.AttachFile(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, file)
}

// Files godoc
// @Summary List a submission's file references in upload order
// @Tags Submissions
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} response.Envelope
// @Router /submissions/{id}/files [get]
func (h *SubmissionHandler) Files(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	files, err := h.submissions.ListFiles(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, files, nil)
}

// DeleteFile godoc
// @Summary Delete a file reference; the stored content is untouched
// @Tags Submissions
// @Produce json
// @Param fileID path int true "File ID"
// @Success 204 "No Content"
// @Router /submissions/files/{fileID} [delete]
func (h *SubmissionHandler) DeleteFile(c *gin.Context) {
	fileID, ok := pathID(c, "fileID")
	if !ok {
		return
	}
	if err := h.submissions.DeleteFile(c.Request.Context(), fileID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
