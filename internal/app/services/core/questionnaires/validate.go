package questionnaires

import (
	"modifications-service/internal/app/models"
)

const (
	msgSelectionRequired = "must have at least one selected option"
	msgTextRequired      = "must not be empty"
)

// Validate runs schema-aware validation over the questionnaire. It is a
// pure function of its two inputs: the same questionnaire state and mode
// always produce the same error set, no matter how many times it runs.
//
// MandatoryOnly checks mandatory questions and backs completeness
// decisions; Full additionally requires an answer from conditional
// questions whose visibility rule currently evaluates true. Optional
// questions never produce errors, and hidden conditional questions are
// excluded in both modes.
func Validate(questionnaire *models.Questionnaire, mode models.ValidationMode) models.ErrorSet {
	errorSet := models.ErrorSet{}

	for i := range questionnaire.Questions {
		question := &questionnaire.Questions[i]

		switch question.Conformance {
		case models.ConformanceMandatory:
		case models.ConformanceConditional:
			if mode != models.ValidationModeFull {
				continue
			}
		default:
			continue
		}

		if !questionVisible(question, questionnaire) {
			continue
		}

		if fieldError, failed := validateAnswered(question); failed {
			errorSet = append(errorSet, fieldError)
		}
	}

	return errorSet
}

func validateAnswered(question *models.AnsweredQuestion) (models.FieldError, bool) {
	if question.IsAnswered() {
		return models.FieldError{}, false
	}

	message := msgSelectionRequired
	if question.DataType.IsFreeText() {
		message = msgTextRequired
	}

	return models.FieldError{
		FieldPath: question.QuestionID,
		Message:   message,
	}, true
}

// EvaluateChangeStatus derives the non-sticky readiness of a change from
// its current questionnaire state. A change with zero questions is always
// ready for submission.
func EvaluateChangeStatus(questionnaire *models.Questionnaire) models.ChangeStatus {
	if len(questionnaire.Questions) == 0 {
		return models.ChangeStatusReadyForSubmission
	}
	if Validate(questionnaire, models.ValidationModeMandatoryOnly).Valid() {
		return models.ChangeStatusReadyForSubmission
	}
	return models.ChangeStatusUnfinished
}
