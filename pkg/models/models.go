package models

import (
	"time"

	"github.com/RMahshie/pwmlab/internal/content"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// GetLessonRequest represents a request for the lesson text
type GetLessonRequest struct{}

// GetLessonResponse returns the static lesson content shown on the page
type GetLessonResponse struct {
	CacheControl string `header:"Cache-Control"`
	Body         *content.Lesson
}
