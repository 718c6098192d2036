package dtos

type ApplicationCreateRequest struct {
	Title          string `json:"title" validate:"required"`
	Company        string `json:"company" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`

	// Optional fields
	Status string `json:"status" validate:"omitempty,oneof=WISHLIST APPLIED INTERVIEW OFFER REJECTED"` // defaults to APPLIED if empty
	JobURL string `json:"jobUrl" validate:"omitempty,url"`
	Notes  string `json:"notes"`
}

// ApplicationUpdateRequest is a partial update: nil means "leave as is".
type ApplicationUpdateRequest struct {
	Title          *string `json:"title" validate:"omitempty,min=1"`
	Company        *string `json:"company" validate:"omitempty,min=1"`
	JobDescription *string `json:"jobDescription" validate:"omitempty,min=1"`
	Status         *string `json:"status" validate:"omitempty,oneof=WISHLIST APPLIED INTERVIEW OFFER REJECTED"`
	JobURL         *string `json:"jobUrl" validate:"omitempty,url"`
	Notes          *string `json:"notes"`
}
