package questionnaires

import (
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/constvars"
)

// TrimAndSurface removes purely conditional questions whose controlling
// condition is currently unmet and which carry no answer, then identifies
// the surfacing question for the caller's view context. The input
// questionnaire is not mutated, so one merge result can serve several view
// contexts without recomputation drift.
//
// The surfacing question is the first question of the trimmed questionnaire;
// whether its answer should be shown as the change summary depends on the
// view context: review screens want it, edit screens do not.
func TrimAndSurface(questionnaire *models.Questionnaire, viewContext string) (*models.Questionnaire, *models.AnsweredQuestion, bool) {
	trimmed := &models.Questionnaire{
		Questions:    make([]models.AnsweredQuestion, 0, len(questionnaire.Questions)),
		CurrentStage: questionnaire.CurrentStage,
	}

	for i := range questionnaire.Questions {
		question := &questionnaire.Questions[i]
		if shouldTrim(question, questionnaire) {
			continue
		}
		trimmed.Questions = append(trimmed.Questions, *question)
	}

	var surfacing *models.AnsweredQuestion
	if len(trimmed.Questions) > 0 {
		surfacing = &trimmed.Questions[0]
	}

	return trimmed, surfacing, viewContext == constvars.ViewContextReview
}

// shouldTrim holds for questions that are purely conditional (neither
// mandatory nor optional), currently hidden by their rules, and carrying no
// prior answer. A hidden conditional question that does carry an answer is
// kept untouched so the previously captured state stays visible to review.
func shouldTrim(question *models.AnsweredQuestion, questionnaire *models.Questionnaire) bool {
	if question.Conformance != models.ConformanceConditional {
		return false
	}
	if question.IsAnswered() {
		return false
	}
	return !questionVisible(question, questionnaire)
}
