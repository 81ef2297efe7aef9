package dto

import (
	"time"

	"github.com/savdoplus/savdo_backend/internal/core/domain"
)

// CreateCategoryRequest is the payload for creating an expense category.
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Color    string `json:"color" binding:"omitempty,hexcolor"`
	Icon     string `json:"icon" binding:"max=50"`
	IsGlobal bool   `json:"isGlobal"`
}

// UpdateCategoryRequest is the patch payload for editing a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,max=50"`
	Color *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
	Icon  *string `json:"icon,omitempty" binding:"omitempty,max=50"`
}

// CategoryResponse is the caller-facing category shape.
type CategoryResponse struct {
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	Icon       string    `json:"icon"`
	IsGlobal   bool      `json:"isGlobal"`
	IsActive   bool      `json:"isActive"`
	UsageCount int64     `json:"usageCount"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedBy  string    `json:"createdBy"`
}

// ToCategoryResponse converts a domain category to its response DTO.
func ToCategoryResponse(c *domain.ExpenseCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Color:      c.Color,
		Icon:       c.Icon,
		IsGlobal:   c.IsGlobal,
		IsActive:   c.IsActive,
		UsageCount: c.UsageCount,
		CreatedAt:  c.CreatedAt,
		CreatedBy:  c.CreatedBy,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(categories []domain.ExpenseCategory) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out
}
