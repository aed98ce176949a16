package questionnaires

import (
	"modifications-service/internal/app/models"
)

// MergeAnswers overlays previously persisted answers onto a flattened
// question list. The operation is pure and idempotent: the same two inputs
// always produce the same questionnaire, and the answer list order does not
// matter because answers are matched by question identifier.
func MergeAnswers(questions []models.QuestionSchema, answers []models.Answer) *models.Questionnaire {
	answersByQuestion := make(map[string]models.Answer, len(answers))
	for _, answer := range answers {
		answersByQuestion[answer.QuestionID] = answer
	}

	merged := make([]models.AnsweredQuestion, 0, len(questions))
	for _, question := range questions {
		answered := models.AnsweredQuestion{QuestionSchema: question}

		answer, ok := answersByQuestion[question.QuestionID]
		if ok {
			switch {
			case question.DataType.IsSingleSelect():
				answered.SelectedOption = answer.OptionID
			case question.DataType.IsMultiSelect():
				answered.SelectedOptions = selectStoredOptions(question.Options, answer.OptionIDs)
			case question.DataType.IsFreeText():
				answered.AnswerText = answer.Text
			}
		}

		merged = append(merged, answered)
	}

	return &models.Questionnaire{Questions: merged}
}

// selectStoredOptions marks every stored option identifier as selected,
// walking the option set so the selection order follows the schema rather
// than the stored answer order.
func selectStoredOptions(options []models.AnswerOption, storedIDs []string) []string {
	if len(storedIDs) == 0 {
		return nil
	}
	stored := make(map[string]bool, len(storedIDs))
	for _, id := range storedIDs {
		stored[id] = true
	}

	var selected []string
	for _, option := range options {
		if stored[option.OptionID] {
			selected = append(selected, option.OptionID)
		}
	}
	return selected
}
