package requests

type CreateModification struct {
	ProjectRecordID  string `json:"project_record_id" validate:"required,project_record"`
	SponsorReference string `json:"sponsor_reference,omitempty"`
}

type CreateChange struct {
	AreaOfChangeID         string `json:"area_of_change_id" validate:"required"`
	SpecificAreaOfChangeID string `json:"specific_area_of_change_id" validate:"required"`
}

// Transition asks the state machine to move a modification to a target
// status. Justification carries the not-approved reason or the revision
// description, depending on the target. ReviewType is only consulted for
// the sponsor authorisation decision.
type Transition struct {
	TargetStatus  string `json:"target_status" validate:"required"`
	Justification string `json:"justification,omitempty"`
	ReviewType    string `json:"review_type,omitempty" validate:"omitempty,review_type"`
}
