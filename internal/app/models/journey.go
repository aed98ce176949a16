package models

// JourneyContext is the cross-step state for one respondent journey,
// threaded explicitly through each operation and kept in the journey store
// instead of ambient session globals.
type JourneyContext struct {
	ModificationID  string `json:"modification_id"`
	ChangeID        string `json:"change_id,omitempty"`
	ProjectRecordID string `json:"project_record_id"`
	CurrentSection  string `json:"current_section,omitempty"`
	CurrentCategory string `json:"current_category,omitempty"`
}
