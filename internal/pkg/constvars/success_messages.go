package constvars

const (
	CreateModificationSuccessMessage   = "Successfully created modification"
	StartJourneySuccessMessage         = "Successfully started journey"
	FindModificationSuccessMessage     = "Successfully fetched modification"
	CreateChangeSuccessMessage         = "Successfully added change to modification"
	FindQuestionnaireSuccessMessage    = "Successfully fetched questionnaire"
	SaveAnswersSuccessMessage          = "Successfully saved answers"
	ResolveNavigationSuccessMessage    = "Successfully resolved navigation"
	TransitionSuccessMessage           = "Successfully updated modification status"
	ListDocumentsSuccessMessage        = "Successfully fetched uploaded documents"
	EvaluateChangeStatusSuccessMessage = "Successfully evaluated change status"
)
