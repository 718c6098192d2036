package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/justsurfingit/jobtrackr/internal/dtos"
	"github.com/justsurfingit/jobtrackr/internal/models"
	"github.com/justsurfingit/jobtrackr/internal/resumetext"
)

// ResumeService follows the same owner-scoping discipline as
// ApplicationService. On top of that it keeps the derived Context column in
// lockstep with the structured document: both create and update recompute
// it from the submitted data, so it can never go stale or be set directly.
type ResumeService struct {
	DB *gorm.DB
}

func NewResumeService(db *gorm.DB) *ResumeService {
	return &ResumeService{DB: db}
}

func (s *ResumeService) Create(ctx context.Context, userID string, req *dtos.ResumeRequest) (*models.Resume, error) {
	resume := &models.Resume{
		UserID:  userID,
		Name:    req.Name,
		Data:    req.Data,
		Context: resumetext.Convert(req.Data),
	}
	if err := s.DB.WithContext(ctx).Create(resume).Error; err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	return resume, nil
}

// List returns the lightweight projection only; data and context are bulk
// fields and stay out of list responses.
func (s *ResumeService) List(ctx context.Context, userID string) ([]dtos.ResumeSummary, error) {
	summaries := []dtos.ResumeSummary{}
	err := s.DB.WithContext(ctx).
		Model(&models.Resume{}).
		Select("id", "name", "created_at", "updated_at").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	return summaries, nil
}

// Get returns the document for the builder. Resumes without structured
// data exist (uploaded before the builder) but cannot be edited, which the
// handler reports as its own flavor of 404.
func (s *ResumeService) Get(ctx context.Context, userID, id string) (*models.Resume, error) {
	var resume models.Resume
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&resume).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resume: %w", err)
	}
	if resume.Data == nil {
		return nil, ErrNotEditable
	}
	return &resume, nil
}

func (s *ResumeService) Update(ctx context.Context, userID, id string, req *dtos.ResumeRequest) (*models.Resume, error) {
	tx := s.DB.WithContext(ctx).
		Model(&models.Resume{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"name":    req.Name,
			"data":    req.Data,
			"context": resumetext.Convert(req.Data),
		})
	if tx.Error != nil {
		return nil, fmt.Errorf("update resume: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var resume models.Resume
	if err := s.DB.WithContext(ctx).First(&resume, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload resume: %w", err)
	}
	return &resume, nil
}

func (s *ResumeService) Delete(ctx context.Context, userID, id string) error {
	tx := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Resume{})
	if tx.Error != nil {
		return fmt.Errorf("delete resume: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
