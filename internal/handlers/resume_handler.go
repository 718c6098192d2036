package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobtrackr/internal/dtos"
	"github.com/justsurfingit/jobtrackr/internal/middleware"
	"github.com/justsurfingit/jobtrackr/internal/services"
)

type ResumeHandler struct {
	Resumes *services.ResumeService
}

func NewResumeHandler(resumes *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{Resumes: resumes}
}

// Create is the POST /api/resumes endpoint. The response includes the
// freshly derived context alongside the stored document.
func (h *ResumeHandler) Create(c *gin.Context) {
	var req dtos.ResumeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resume, err := h.Resumes.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resume)
}

// List is the GET /api/resumes endpoint, most recently updated first.
func (h *ResumeHandler) List(c *gin.Context) {
	summaries, err := h.Resumes.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// Get is the GET /api/resumes/:id endpoint
func (h *ResumeHandler) Get(c *gin.Context) {
	resume, err := h.Resumes.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Resume not found."})
		case errors.Is(err, services.ErrNotEditable):
			c.JSON(http.StatusNotFound, gin.H{"message": "This resume was not created with the builder and cannot be edited."})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dtos.ResumeDetail{
		ID:   resume.ID,
		Name: resume.Name,
		Data: resume.Data,
	})
}

// Update is the PUT /api/resumes/:id endpoint
func (h *ResumeHandler) Update(c *gin.Context) {
	var req dtos.ResumeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resume, err := h.Resumes.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Resume not found or not authorized."})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.ResumeDetail{
		ID:   resume.ID,
		Name: resume.Name,
		Data: resume.Data,
	})
}

// Delete is the DELETE /api/resumes/:id endpoint
func (h *ResumeHandler) Delete(c *gin.Context) {
	err := h.Resumes.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Resume not found or not authorized."})
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
