package models

// DataType is the tagged variant for a question's answer shape. Merge and
// validation logic switch on the tag instead of relying on type hierarchies.
type DataType string

const (
	DataTypeText     DataType = "text"
	DataTypeRadio    DataType = "radio"
	DataTypeBoolean  DataType = "boolean"
	DataTypeDropdown DataType = "dropdown"
	DataTypeLookup   DataType = "lookup"
	DataTypeCheckbox DataType = "checkbox"
)

func (d DataType) IsValid() bool {
	switch d {
	case DataTypeText, DataTypeRadio, DataTypeBoolean, DataTypeDropdown, DataTypeLookup, DataTypeCheckbox:
		return true
	}
	return false
}

// IsSingleSelect reports whether the question holds exactly one selected
// option identifier.
func (d DataType) IsSingleSelect() bool {
	switch d {
	case DataTypeRadio, DataTypeBoolean, DataTypeDropdown, DataTypeLookup:
		return true
	}
	return false
}

func (d DataType) IsMultiSelect() bool {
	return d == DataTypeCheckbox
}

func (d DataType) IsFreeText() bool {
	return d == DataTypeText
}

type Conformance string

const (
	ConformanceMandatory   Conformance = "mandatory"
	ConformanceOptional    Conformance = "optional"
	ConformanceConditional Conformance = "conditional"
)

func (c Conformance) IsValid() bool {
	switch c {
	case ConformanceMandatory, ConformanceOptional, ConformanceConditional:
		return true
	}
	return false
}

type AnswerOption struct {
	OptionID   string `json:"option_id"`
	OptionText string `json:"option_text"`
}

// ConditionalRule is the declarative visibility predicate: the question is
// visible iff the parent question currently carries one of the expected
// values. Kept outside the question logic so trimming and validation can
// evaluate it independently.
type ConditionalRule struct {
	ParentQuestionID string   `json:"parent_question_id"`
	ExpectedValues   []string `json:"expected_values"`
}

// QuestionSchema is one entry of the flattened, versioned question set.
// Fetched fresh per request and never mutated.
type QuestionSchema struct {
	QuestionID      string            `json:"question_id"`
	VersionID       string            `json:"version_id"`
	SectionID       string            `json:"section_id"`
	SectionSequence int               `json:"section_sequence"`
	CategoryID      string            `json:"category_id"`
	Sequence        int               `json:"sequence"`
	Heading         string            `json:"heading"`
	ShortHeading    string            `json:"short_heading"`
	DataType        DataType          `json:"data_type"`
	Conformance     Conformance       `json:"conformance"`
	Options         []AnswerOption    `json:"options,omitempty"`
	Rules           []ConditionalRule `json:"rules,omitempty"`
}

// Answer is a previously persisted respondent answer, keyed by question
// identifier and optionally pinned to a schema version.
type Answer struct {
	QuestionID string   `json:"question_id"`
	VersionID  string   `json:"version_id,omitempty"`
	OptionID   string   `json:"option_id,omitempty"`
	OptionIDs  []string `json:"option_ids,omitempty"`
	Text       string   `json:"text,omitempty"`
}

// AnsweredQuestion overlays a schema entry with respondent state. At most
// one of AnswerText, SelectedOption and SelectedOptions is populated,
// determined by the data type.
type AnsweredQuestion struct {
	QuestionSchema
	AnswerText      string   `json:"answer_text,omitempty"`
	SelectedOption  string   `json:"selected_option,omitempty"`
	SelectedOptions []string `json:"selected_options,omitempty"`
}

func (q *AnsweredQuestion) IsAnswered() bool {
	switch {
	case q.DataType.IsFreeText():
		return q.AnswerText != ""
	case q.DataType.IsSingleSelect():
		return q.SelectedOption != ""
	case q.DataType.IsMultiSelect():
		return len(q.SelectedOptions) > 0
	}
	return false
}

// AnswerValues returns every value the question currently carries,
// regardless of data type. Used for rule evaluation and for rendering the
// surfacing answer on review screens.
func (q *AnsweredQuestion) AnswerValues() []string {
	switch {
	case q.DataType.IsFreeText():
		if q.AnswerText == "" {
			return nil
		}
		return []string{q.AnswerText}
	case q.DataType.IsSingleSelect():
		if q.SelectedOption == "" {
			return nil
		}
		return []string{q.SelectedOption}
	case q.DataType.IsMultiSelect():
		return q.SelectedOptions
	}
	return nil
}

// OptionText resolves an option identifier to its display text. Returns the
// identifier itself when the option list does not know it.
func (q *AnsweredQuestion) OptionText(optionID string) string {
	for _, option := range q.Options {
		if option.OptionID == optionID {
			return option.OptionText
		}
	}
	return optionID
}
