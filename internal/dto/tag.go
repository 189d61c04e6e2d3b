package dto

import "github.com/budgie-app/budgie/internal/core/domain"

// CreateTagRequest defines the data needed to create a tag.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// TagResponse defines the data returned for a tag.
type TagResponse struct {
	TagID int64  `json:"tagID"`
	Name  string `json:"name"`
}

// ToTagResponse converts a domain.Tag to TagResponse.
func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{TagID: t.TagID, Name: t.Name}
}
