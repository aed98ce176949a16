package requests

import "modifications-service/internal/app/models"

type SaveAnswers struct {
	Section string          `json:"section,omitempty"`
	Answers []models.Answer `json:"answers" validate:"required,dive"`
}
