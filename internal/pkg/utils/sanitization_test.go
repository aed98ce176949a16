package utils

import (
	"testing"

	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSaveAnswersRequest(t *testing.T) {
	request := &requests.SaveAnswers{
		Answers: []models.Answer{
			{QuestionID: " q1 ", OptionID: " yes ", Text: "  free text  ", OptionIDs: []string{" a ", "b"}},
		},
	}

	SanitizeSaveAnswersRequest(request)

	assert.Equal(t, "q1", request.Answers[0].QuestionID)
	assert.Equal(t, "yes", request.Answers[0].OptionID)
	assert.Equal(t, "free text", request.Answers[0].Text)
	assert.Equal(t, []string{"a", "b"}, request.Answers[0].OptionIDs)
}

func TestSanitizeTransitionRequest(t *testing.T) {
	request := &requests.Transition{
		TargetStatus:  " WithSponsor ",
		Justification: "  needs rework ",
		ReviewType:    " None ",
	}

	SanitizeTransitionRequest(request)

	assert.Equal(t, "WithSponsor", request.TargetStatus)
	assert.Equal(t, "needs rework", request.Justification)
	assert.Equal(t, "none", request.ReviewType)
}

func TestSanitizeCreateModificationRequest(t *testing.T) {
	request := &requests.CreateModification{
		ProjectRecordID:  " 1234567 ",
		SponsorReference: " SP-1 ",
	}

	SanitizeCreateModificationRequest(request)

	assert.Equal(t, "1234567", request.ProjectRecordID)
	assert.Equal(t, "SP-1", request.SponsorReference)
}
