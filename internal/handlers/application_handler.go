package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobtrackr/internal/dtos"
	"github.com/justsurfingit/jobtrackr/internal/middleware"
	"github.com/justsurfingit/jobtrackr/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// Create is the POST /api/application endpoint
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.ApplicationCreateRequest
	if !bindAndValidate(c, &req) {
		return
	}

	job, err := h.Applications.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// List is the GET /api/application endpoint, newest application first.
func (h *ApplicationHandler) List(c *gin.Context) {
	jobs, err := h.Applications.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get is the GET /api/application/:id endpoint
func (h *ApplicationHandler) Get(c *gin.Context) {
	job, err := h.Applications.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found."})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Update is the PUT /api/application/:id endpoint
func (h *ApplicationHandler) Update(c *gin.Context) {
	var req dtos.ApplicationUpdateRequest
	if !bindAndValidate(c, &req) {
		return
	}

	job, err := h.Applications.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found or not authorized."})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete is the DELETE /api/application/:id endpoint
func (h *ApplicationHandler) Delete(c *gin.Context) {
	err := h.Applications.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found or not authorized."})
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
