package dtos

import (
	"time"

	"github.com/justsurfingit/jobtrackr/internal/models"
)

type ResumeRequest struct {
	Name string             `json:"name" validate:"required"`
	Data *models.ResumeData `json:"data" validate:"required"`
}

// ResumeSummary is the list projection. The bulk data/context fields are
// deliberately excluded to keep list responses small.
type ResumeSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResumeDetail is what the builder needs to edit a resume.
type ResumeDetail struct {
	ID   string             `json:"id"`
	Name string             `json:"name"`
	Data *models.ResumeData `json:"data"`
}
