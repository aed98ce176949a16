package models

// ValidationMode selects which conformance levels the validation engine
// enforces. MandatoryOnly backs completeness checks; Full additionally
// validates currently-visible conditional questions before a page move.
type ValidationMode string

const (
	ValidationModeMandatoryOnly ValidationMode = "mandatory_only"
	ValidationModeFull          ValidationMode = "full"
)

type FieldError struct {
	FieldPath string `json:"field_path"`
	Message   string `json:"message"`
}

// ErrorSet is the structured validation outcome. An empty set means valid;
// it is a normal result, not an error value.
type ErrorSet []FieldError

func (e ErrorSet) Valid() bool {
	return len(e) == 0
}

// Questionnaire is an ordered sequence of answered questions plus the
// current stage marker. Ordering is stable and equal to (section sequence,
// question sequence) from the schema.
type Questionnaire struct {
	Questions    []AnsweredQuestion `json:"questions"`
	CurrentStage string             `json:"current_stage,omitempty"`
}

// Find returns the question with the given identifier, or nil.
func (q *Questionnaire) Find(questionID string) *AnsweredQuestion {
	for i := range q.Questions {
		if q.Questions[i].QuestionID == questionID {
			return &q.Questions[i]
		}
	}
	return nil
}

// CategoryGroup is one category partition of the questionnaire, in schema
// order.
type CategoryGroup struct {
	CategoryID string             `json:"category_id"`
	Questions  []AnsweredQuestion `json:"questions"`
}

// Categories groups the questions by category while preserving the schema
// ordering, reconstructing the schema's category partition exactly.
func (q *Questionnaire) Categories() []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, question := range q.Questions {
		i, ok := index[question.CategoryID]
		if !ok {
			groups = append(groups, CategoryGroup{CategoryID: question.CategoryID})
			i = len(groups) - 1
			index[question.CategoryID] = i
		}
		groups[i].Questions = append(groups[i].Questions, question)
	}
	return groups
}
