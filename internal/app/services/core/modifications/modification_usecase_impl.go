package modifications

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"
	"modifications-service/internal/app/services/core/documents"
	"modifications-service/internal/app/services/core/questionnaires"
	"modifications-service/internal/pkg/dto/requests"
	"modifications-service/internal/pkg/dto/responses"
	"modifications-service/internal/pkg/exceptions"
	"modifications-service/internal/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type modificationUsecase struct {
	ModificationRepository contracts.ModificationRepository
	QuestionSetClient      contracts.QuestionSetClient
	AnswerStoreClient      contracts.AnswerStoreClient
	DocumentUsecase        documents.DocumentUsecase
	StatusEventPublisher   contracts.StatusEventPublisher
}

func NewModificationUsecase(
	modificationRepository contracts.ModificationRepository,
	questionSetClient contracts.QuestionSetClient,
	answerStoreClient contracts.AnswerStoreClient,
	documentUsecase documents.DocumentUsecase,
	statusEventPublisher contracts.StatusEventPublisher,
) ModificationUsecase {
	return &modificationUsecase{
		ModificationRepository: modificationRepository,
		QuestionSetClient:      questionSetClient,
		AnswerStoreClient:      answerStoreClient,
		DocumentUsecase:        documentUsecase,
		StatusEventPublisher:   statusEventPublisher,
	}
}

// CreateModification opens a new draft against a project record. The
// modification identifier is the record identifier plus a running suffix:
// the third modification of record 1234567 is 1234567/3.
func (uc *modificationUsecase) CreateModification(ctx context.Context, request *requests.CreateModification) (*models.Modification, error) {
	recordID, _, err := utils.ParseProjectRecordReference(request.ProjectRecordID)
	if err != nil {
		return nil, exceptions.ErrMalformedState(err, request.ProjectRecordID)
	}

	existing, err := uc.ModificationRepository.FindModificationsByProjectRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	modification := &models.Modification{
		ModificationID:   fmt.Sprintf("%s/%d", recordID, nextModificationSuffix(existing)),
		ProjectRecordID:  recordID,
		Status:           models.ModificationStatusInDraft,
		SponsorReference: request.SponsorReference,
		Changes:          []models.ModificationChange{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return uc.ModificationRepository.CreateModification(ctx, modification)
}

func (uc *modificationUsecase) AddChange(ctx context.Context, modificationID string, request *requests.CreateChange) (*models.Modification, error) {
	modification, err := uc.findModification(ctx, modificationID)
	if err != nil {
		return nil, err
	}

	if modification.Status != models.ModificationStatusInDraft {
		return nil, exceptions.ErrTransitionForbidden(
			string(modification.Status), string(modification.Status),
			"changes can only be added while the modification is in draft",
		)
	}

	modification.Changes = append(modification.Changes, models.ModificationChange{
		ChangeID:               uuid.NewString(),
		AreaOfChangeID:         request.AreaOfChangeID,
		SpecificAreaOfChangeID: request.SpecificAreaOfChangeID,
		Status:                 models.ChangeStatusUnfinished,
		CreatedAt:              time.Now().UTC(),
	})

	if err := uc.ModificationRepository.UpdateModification(ctx, modification); err != nil {
		return nil, err
	}
	return modification, nil
}

func (uc *modificationUsecase) GetModification(ctx context.Context, modificationID string) (*responses.ModificationDetail, error) {
	modification, err := uc.findModification(ctx, modificationID)
	if err != nil {
		return nil, err
	}

	completeness, err := uc.DocumentUsecase.EvaluateDocumentCompleteness(ctx, modification.ModificationID, modification.ProjectRecordID)
	if err != nil {
		return nil, err
	}

	return &responses.ModificationDetail{
		Modification: modification,
		Documents:    completeness,
	}, nil
}

func (uc *modificationUsecase) ListModifications(ctx context.Context, projectRecordID string) ([]models.Modification, error) {
	recordID, _, err := utils.ParseProjectRecordReference(projectRecordID)
	if err != nil {
		return nil, exceptions.ErrMalformedState(err, projectRecordID)
	}
	return uc.ModificationRepository.FindModificationsByProjectRecord(ctx, recordID)
}

// AttemptTransition drives the aggregate state machine. For the submission
// transition the readiness facts are recomputed first: every change is
// re-evaluated with mandatory-only validation and every uploaded document's
// metadata is re-checked, concurrently. Recomputed change statuses are
// persisted even when the guard then rejects the transition, so the
// overview never shows stale readiness.
func (uc *modificationUsecase) AttemptTransition(ctx context.Context, modificationID, role string, request *requests.Transition) (*responses.TransitionResult, error) {
	modification, err := uc.findModification(ctx, modificationID)
	if err != nil {
		return nil, err
	}

	target := models.ModificationStatus(request.TargetStatus)
	tc := &TransitionContext{
		Role:          role,
		Justification: request.Justification,
		ReviewType:    request.ReviewType,
	}

	recomputed := modification.Status == models.ModificationStatusInDraft && target == models.ModificationStatusWithSponsor
	if recomputed {
		if err := uc.computeReadiness(ctx, modification, tc); err != nil {
			return nil, err
		}
	}

	fromStatus := modification.Status
	if err := ApplyTransition(modification, target, tc); err != nil {
		if recomputed {
			// Change statuses were just recomputed; keep them.
			if updateErr := uc.ModificationRepository.UpdateModification(ctx, modification); updateErr != nil {
				return nil, updateErr
			}
		}
		return nil, err
	}

	if err := uc.persistTransition(ctx, modification, fromStatus, request.Justification); err != nil {
		return nil, err
	}

	err = uc.StatusEventPublisher.PublishStatusEvent(ctx, &contracts.StatusEvent{
		ModificationID:  modification.ModificationID,
		ProjectRecordID: modification.ProjectRecordID,
		FromStatus:      fromStatus,
		ToStatus:        modification.Status,
		Justification:   request.Justification,
		OccurredAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	return &responses.TransitionResult{Modification: modification}, nil
}

// persistTransition writes the transition outcome. Transitions out of
// InDraft and WithSponsor also mutate change statuses or the review type,
// so those replace the document; everything else only touches the status
// and its reason/description field.
func (uc *modificationUsecase) persistTransition(ctx context.Context, modification *models.Modification, fromStatus models.ModificationStatus, justification string) error {
	if fromStatus == models.ModificationStatusInDraft || fromStatus == models.ModificationStatusWithSponsor {
		return uc.ModificationRepository.UpdateModification(ctx, modification)
	}
	return uc.ModificationRepository.UpdateModificationStatus(ctx, modification.ModificationID, modification.Status, justification)
}

// computeReadiness refreshes every change's status from its current answers
// and checks document metadata completeness. The question set is fetched
// once; the per-change answer fetches and the document check run
// concurrently.
func (uc *modificationUsecase) computeReadiness(ctx context.Context, modification *models.Modification, tc *TransitionContext) error {
	document, err := uc.QuestionSetClient.FetchQuestionSet(ctx, "")
	if err != nil {
		return err
	}
	questions := questionnaires.ImportQuestionSet(document, "")

	g, gctx := errgroup.WithContext(ctx)

	for i := range modification.Changes {
		change := &modification.Changes[i]
		g.Go(func() error {
			answers, err := uc.AnswerStoreClient.FetchAnswers(gctx, change.ChangeID, modification.ProjectRecordID)
			if err != nil {
				return err
			}
			trimmed, _, _ := questionnaires.TrimAndSurface(questionnaires.MergeAnswers(questions, answers), "")
			change.Status = questionnaires.EvaluateChangeStatus(trimmed)
			return nil
		})
	}

	var documentsComplete bool
	g.Go(func() error {
		completeness, err := uc.DocumentUsecase.EvaluateDocumentCompleteness(gctx, modification.ModificationID, modification.ProjectRecordID)
		if err != nil {
			return err
		}
		documentsComplete = true
		for _, outcome := range completeness {
			if !outcome.Complete {
				documentsComplete = false
				break
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	tc.ChangesReady = true
	for _, change := range modification.Changes {
		if change.Status != models.ChangeStatusReadyForSubmission {
			tc.ChangesReady = false
			break
		}
	}
	tc.DocumentsComplete = documentsComplete
	return nil
}

func (uc *modificationUsecase) findModification(ctx context.Context, modificationID string) (*models.Modification, error) {
	modification, err := uc.ModificationRepository.FindModificationByID(ctx, modificationID)
	if err != nil {
		return nil, err
	}
	if modification == nil {
		return nil, exceptions.ErrModificationNotFound(fmt.Errorf("modification %s not found", modificationID))
	}
	return modification, nil
}

// nextModificationSuffix returns one past the highest suffix already issued
// for the record. Suffixes are never reused, so a deleted modification does
// not shift later identifiers.
func nextModificationSuffix(existing []models.Modification) int {
	highest := 0
	for _, modification := range existing {
		_, suffix, err := utils.ParseProjectRecordReference(modification.ModificationID)
		if err != nil || suffix == "" {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err == nil && n > highest {
			highest = n
		}
	}
	return highest + 1
}
