package responses

import "modifications-service/internal/app/models"

// ChangeQuestionnaire is the merged, trimmed and validated form state for
// one change, ready for display.
type ChangeQuestionnaire struct {
	ChangeID          string                   `json:"change_id"`
	Status            models.ChangeStatus      `json:"status"`
	Questionnaire     *models.Questionnaire    `json:"questionnaire"`
	Categories        []models.CategoryGroup   `json:"categories,omitempty"`
	SurfacingQuestion *models.AnsweredQuestion `json:"surfacing_question,omitempty"`
	ShowSurfacing     bool                     `json:"show_surfacing"`
	Errors            models.ErrorSet          `json:"errors,omitempty"`
}

type SaveAnswersResult struct {
	ChangeID string              `json:"change_id"`
	Status   models.ChangeStatus `json:"status"`
	Errors   models.ErrorSet     `json:"errors,omitempty"`
}
