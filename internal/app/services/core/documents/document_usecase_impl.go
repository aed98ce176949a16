package documents

import (
	"context"
	"sort"

	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"modifications-service/internal/app/services/core/questionnaires"

	"golang.org/x/sync/errgroup"
)

type documentUsecase struct {
	QuestionSetClient contracts.QuestionSetClient
	AnswerStoreClient contracts.AnswerStoreClient
	DocumentStorage   contracts.DocumentStorage
}

func NewDocumentUsecase(
	questionSetClient contracts.QuestionSetClient,
	answerStoreClient contracts.AnswerStoreClient,
	documentStorage contracts.DocumentStorage,
) DocumentUsecase {
	return &documentUsecase{
		QuestionSetClient: questionSetClient,
		AnswerStoreClient: answerStoreClient,
		DocumentStorage:   documentStorage,
	}
}

func (uc *documentUsecase) ListUploadedDocuments(ctx context.Context, modificationID, projectRecordID string) ([]models.DocumentRef, error) {
	documents, err := uc.DocumentStorage.FetchUploadedDocuments(ctx, modificationID, projectRecordID)
	if err != nil {
		return nil, err
	}

	sort.Slice(documents, func(i, j int) bool {
		return documents[i].FileName < documents[j].FileName
	})
	return documents, nil
}

// EvaluateDocumentCompleteness runs the mandatory-only metadata check for
// every uploaded document against the document metadata schema. The schema,
// the document listing and the stored metadata answers are three independent
// remote calls and are fetched concurrently; the per-document checks then
// run concurrently as well. Results come back ordered by file name
// regardless of completion order.
func (uc *documentUsecase) EvaluateDocumentCompleteness(ctx context.Context, modificationID, projectRecordID string) ([]models.DocumentCompleteness, error) {
	var (
		schema          *contracts.SchemaDocument
		uploaded        []models.DocumentRef
		documentAnswers map[string][]models.Answer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := uc.QuestionSetClient.FetchDocumentMetadataSchema(gctx)
		if err != nil {
			return err
		}
		schema = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := uc.DocumentStorage.FetchUploadedDocuments(gctx, modificationID, projectRecordID)
		if err != nil {
			return err
		}
		uploaded = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := uc.AnswerStoreClient.FetchDocumentAnswers(gctx, modificationID, projectRecordID)
		if err != nil {
			return err
		}
		documentAnswers = fetched
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metadataQuestions := questionnaires.ImportQuestionSet(schema, "")

	results := make([]models.DocumentCompleteness, len(uploaded))

	eg, _ := errgroup.WithContext(ctx)
	for i, document := range uploaded {
		i, document := i, document
		eg.Go(func() error {
			results[i] = evaluateDocument(metadataQuestions, document, documentAnswers[document.ObjectKey])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].FileName < results[j].FileName
	})
	return results, nil
}

// evaluateDocument merges one document's metadata answers into the metadata
// schema and validates mandatory fields only. Answers already carried on the
// document reference win over the stored set.
func evaluateDocument(metadataQuestions []models.QuestionSchema, document models.DocumentRef, stored []models.Answer) models.DocumentCompleteness {
	answers := document.Answers
	if len(answers) == 0 {
		answers = stored
	}

	questionnaire := questionnaires.MergeAnswers(metadataQuestions, answers)
	trimmed, _, _ := questionnaires.TrimAndSurface(questionnaire, "")
	errorSet := questionnaires.Validate(trimmed, models.ValidationModeMandatoryOnly)

	return models.DocumentCompleteness{
		FileName: document.FileName,
		Complete: errorSet.Valid(),
		Errors:   errorSet,
	}
}
