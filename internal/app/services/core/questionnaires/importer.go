package questionnaires

import (
	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"sort"
)

// ImportQuestionSet flattens a remote question-set document into an ordered
// question list, stable-sorted by (section sequence, question sequence).
// An optional section filter keeps only the matching section.
func ImportQuestionSet(document *contracts.SchemaDocument, sectionFilter string) []models.QuestionSchema {
	var questions []models.QuestionSchema
	for _, section := range document.Sections {
		if sectionFilter != "" && section.SectionID != sectionFilter {
			continue
		}
		for _, question := range section.Questions {
			questions = append(questions, models.QuestionSchema{
				QuestionID:      question.QuestionID,
				VersionID:       document.VersionID,
				SectionID:       section.SectionID,
				SectionSequence: section.Sequence,
				CategoryID:      section.CategoryID,
				Sequence:        question.Sequence,
				Heading:         question.Heading,
				ShortHeading:    question.ShortHeading,
				DataType:        question.DataType,
				Conformance:     question.Conformance,
				Options:         question.Options,
				Rules:           question.Rules,
			})
		}
	}

	sort.SliceStable(questions, func(i, j int) bool {
		if questions[i].SectionSequence != questions[j].SectionSequence {
			return questions[i].SectionSequence < questions[j].SectionSequence
		}
		return questions[i].Sequence < questions[j].Sequence
	})

	return questions
}
