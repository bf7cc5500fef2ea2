package dto

import "strings"

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r CreateNoteRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errors["title"] = "Title is required"
	}
	if strings.TrimSpace(r.Content) == "" {
		errors["content"] = "Content is required"
	}

	return errors
}

// UpdateNoteRequest carries a partial update. Nil means "leave unchanged";
// a present empty string is a validation error.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (r UpdateNoteRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errors["title"] = "Title cannot be empty"
	}
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		errors["content"] = "Content cannot be empty"
	}

	return errors
}
