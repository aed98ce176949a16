package models

// SectionRef identifies a question section and the category it belongs to.
// The zero value means "no section": the start or end of the journey.
type SectionRef struct {
	SectionID  string `json:"section_id"`
	CategoryID string `json:"category_id"`
}

func (s SectionRef) IsZero() bool {
	return s.SectionID == "" && s.CategoryID == ""
}

// NavigationState is the derived previous/current/next triple for a step
// transition. It is not persisted beyond the transition itself.
type NavigationState struct {
	Previous SectionRef `json:"previous"`
	Current  SectionRef `json:"current"`
	Next     SectionRef `json:"next"`
}
