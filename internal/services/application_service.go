package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/justsurfingit/jobtrackr/internal/dtos"
	"github.com/justsurfingit/jobtrackr/internal/models"
)

// ApplicationService implements owner-scoped CRUD for tracked job
// applications. Every query that targets a specific record conjoins the
// record id with the caller's user id, so records owned by someone else
// look exactly like records that don't exist.
type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

func (s *ApplicationService) Create(ctx context.Context, userID string, req *dtos.ApplicationCreateRequest) (*models.JobApplication, error) {
	status := models.JobStatus(req.Status)
	if status == "" {
		status = models.StatusApplied
	}

	job := &models.JobApplication{
		UserID:          userID, // owner comes from the token, never the payload
		Title:           req.Title,
		Company:         req.Company,
		JobDescription:  req.JobDescription,
		Status:          status,
		JobURL:          req.JobURL,
		Notes:           req.Notes,
		ApplicationDate: time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, fmt.Errorf("create job application: %w", err)
	}
	return job, nil
}

func (s *ApplicationService) List(ctx context.Context, userID string) ([]models.JobApplication, error) {
	jobs := []models.JobApplication{}
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("application_date DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	return jobs, nil
}

func (s *ApplicationService) Get(ctx context.Context, userID, id string) (*models.JobApplication, error) {
	var job models.JobApplication
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get job application: %w", err)
	}
	return &job, nil
}

// Update applies the non-nil fields in one owner-scoped UPDATE. A zero
// affected-row count is the only signal for "missing or not yours"; the
// refetch by id alone is safe because the scoped write just proved
// ownership and nothing else can reassign it mid-request.
func (s *ApplicationService) Update(ctx context.Context, userID, id string, req *dtos.ApplicationUpdateRequest) (*models.JobApplication, error) {
	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.JobDescription != nil {
		updates["job_description"] = *req.JobDescription
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.JobURL != nil {
		updates["job_url"] = *req.JobURL
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		// Nothing to change; still owner-checked.
		return s.Get(ctx, userID, id)
	}

	tx := s.DB.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if tx.Error != nil {
		return nil, fmt.Errorf("update job application: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var job models.JobApplication
	if err := s.DB.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload job application: %w", err)
	}
	return &job, nil
}

func (s *ApplicationService) Delete(ctx context.Context, userID, id string) error {
	tx := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.JobApplication{})
	if tx.Error != nil {
		return fmt.Errorf("delete job application: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
