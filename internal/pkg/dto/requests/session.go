package requests

// StartJourney opens a journey-scoped session for one modification. The
// issued token carries the journey identifier and the caller's role.
type StartJourney struct {
	ModificationID  string `json:"modification_id" validate:"required"`
	ProjectRecordID string `json:"project_record_id" validate:"required,project_record"`
	ChangeID        string `json:"change_id,omitempty"`
	Role            string `json:"role,omitempty"`
}
