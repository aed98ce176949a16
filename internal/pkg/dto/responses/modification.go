package responses

import "modifications-service/internal/app/models"

type ModificationDetail struct {
	Modification *models.Modification          `json:"modification"`
	Documents    []models.DocumentCompleteness `json:"documents,omitempty"`
}

type TransitionResult struct {
	Modification *models.Modification `json:"modification"`
}
