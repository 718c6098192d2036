package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobStatus must match the values the frontend sends.
type JobStatus string

const (
	StatusWishlist  JobStatus = "WISHLIST"
	StatusApplied   JobStatus = "APPLIED"
	StatusInterview JobStatus = "INTERVIEW"
	StatusOffer     JobStatus = "OFFER"
	StatusRejected  JobStatus = "REJECTED"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type JobApplication struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title           string    `gorm:"not null" json:"title"`
	Company         string    `gorm:"not null" json:"company"`
	JobDescription  string    `gorm:"type:text" json:"jobDescription"`
	Status          JobStatus `gorm:"default:'APPLIED'" json:"status"`
	JobURL          string    `json:"jobUrl"`
	Notes           string    `gorm:"type:text" json:"notes"`
	ApplicationDate time.Time `gorm:"index" json:"applicationDate"`
}

func (j *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

type Resume struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name string `gorm:"not null" json:"name"`
	// Data is the builder's source of truth. A null Data means the resume
	// predates the builder and cannot be edited through it.
	Data *ResumeData `gorm:"type:jsonb" json:"data"`
	// Context is the flattened plain-text form of Data, recomputed on
	// every create/update. Never set by callers.
	Context string `gorm:"type:text" json:"context"`
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ResumeData is the structured document the frontend builder edits.
type ResumeData struct {
	Name           string           `json:"name"`
	Email          string           `json:"email" validate:"omitempty,email"`
	Phone          string           `json:"phone"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience" validate:"dive"`
	Education      []Education      `json:"education" validate:"dive"`
	Skills         []string         `json:"skills"`
}

type WorkExperience struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Description string `json:"description"`
}

type Education struct {
	Institution    string `json:"institution" validate:"required"`
	Degree         string `json:"degree" validate:"required"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	GraduationYear string `json:"graduationYear"`
}

func (d *ResumeData) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *ResumeData) Scan(value any) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported resume data column type %T", value)
	}
	return json.Unmarshal(raw, d)
}
