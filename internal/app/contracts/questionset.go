package contracts

import (
	"context"
	"modifications-service/internal/app/models"
)

// SchemaDocument is the raw question-set payload from the CMS: sections in
// journey order, each carrying its questions and answer options.
type SchemaDocument struct {
	VersionID string          `json:"version_id"`
	Sections  []SchemaSection `json:"sections"`
}

type SchemaSection struct {
	SectionID  string           `json:"section_id"`
	CategoryID string           `json:"category_id"`
	Sequence   int              `json:"sequence"`
	Questions  []SchemaQuestion `json:"questions"`
}

type SchemaQuestion struct {
	QuestionID   string                   `json:"question_id"`
	Sequence     int                      `json:"sequence"`
	Heading      string                   `json:"heading"`
	ShortHeading string                   `json:"short_heading"`
	DataType     models.DataType          `json:"data_type"`
	Conformance  models.Conformance       `json:"conformance"`
	Options      []models.AnswerOption    `json:"options,omitempty"`
	Rules        []models.ConditionalRule `json:"rules,omitempty"`
}

type QuestionSetClient interface {
	FetchQuestionSet(ctx context.Context, sectionFilter string) (*SchemaDocument, error)
	FetchPreviousSection(ctx context.Context, sectionID string) (*models.SectionRef, error)
	FetchNextSection(ctx context.Context, sectionID string) (*models.SectionRef, error)
	FetchDocumentMetadataSchema(ctx context.Context) (*SchemaDocument, error)
}
