package handlers

import (
	"context"

	"github.com/RMahshie/pwmlab/internal/content"
	"github.com/RMahshie/pwmlab/pkg/models"
)

// LessonHandler serves the static lesson text
type LessonHandler struct {
	lesson *content.Lesson
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lesson *content.Lesson) *LessonHandler {
	return &LessonHandler{lesson: lesson}
}

// GetLesson returns the lesson content
func (h *LessonHandler) GetLesson(ctx context.Context, req *models.GetLessonRequest) (*models.GetLessonResponse, error) {
	return &models.GetLessonResponse{
		CacheControl: "public, max-age=3600",
		Body:         h.lesson,
	}, nil
}
