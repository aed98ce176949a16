package utils

import (
	"modifications-service/internal/pkg/dto/requests"
	"strings"
)

// SanitizeSaveAnswersRequest trims identifier and free-text whitespace
// before the answers are merged and validated.
func SanitizeSaveAnswersRequest(request *requests.SaveAnswers) {
	for i := range request.Answers {
		request.Answers[i].QuestionID = strings.TrimSpace(request.Answers[i].QuestionID)
		request.Answers[i].OptionID = strings.TrimSpace(request.Answers[i].OptionID)
		request.Answers[i].Text = strings.TrimSpace(request.Answers[i].Text)
		for j := range request.Answers[i].OptionIDs {
			request.Answers[i].OptionIDs[j] = strings.TrimSpace(request.Answers[i].OptionIDs[j])
		}
	}
}

func SanitizeCreateModificationRequest(request *requests.CreateModification) {
	request.ProjectRecordID = strings.TrimSpace(request.ProjectRecordID)
	request.SponsorReference = strings.TrimSpace(request.SponsorReference)
}

func SanitizeCreateChangeRequest(request *requests.CreateChange) {
	request.AreaOfChangeID = strings.TrimSpace(request.AreaOfChangeID)
	request.SpecificAreaOfChangeID = strings.TrimSpace(request.SpecificAreaOfChangeID)
}

// SanitizeTransitionRequest normalises the justification text.
func SanitizeTransitionRequest(request *requests.Transition) {
	request.TargetStatus = strings.TrimSpace(request.TargetStatus)
	request.Justification = strings.TrimSpace(request.Justification)
	request.ReviewType = strings.ToLower(strings.TrimSpace(request.ReviewType))
}
