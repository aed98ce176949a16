package navigation

import (
	"context"
	"modifications-service/internal/app/contracts"
	"modifications-service/internal/app/models"

	"golang.org/x/sync/errgroup"
)

type navigationUsecase struct {
	QuestionSetClient contracts.QuestionSetClient
	RedisRepository   contracts.RedisRepository
}

func NewNavigationUsecase(
	questionSetClient contracts.QuestionSetClient,
	redisRepository contracts.RedisRepository,
) NavigationUsecase {
	return &navigationUsecase{
		QuestionSetClient: questionSetClient,
		RedisRepository:   redisRepository,
	}
}

// ResolveNavigation derives the previous/current/next triple for sectionID
// from schema adjacency. The three lookups are independent remote calls and
// run concurrently; a missing neighbour is a valid terminal condition and
// yields a zero SectionRef, not an error.
func (uc *navigationUsecase) ResolveNavigation(ctx context.Context, journeyID string, journey *models.JourneyContext, sectionID string) (*models.NavigationState, error) {
	var previous, next *models.SectionRef
	var current models.SectionRef

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ref, err := uc.QuestionSetClient.FetchPreviousSection(gctx, sectionID)
		if err != nil {
			return err
		}
		previous = ref
		return nil
	})
	g.Go(func() error {
		ref, err := uc.QuestionSetClient.FetchNextSection(gctx, sectionID)
		if err != nil {
			return err
		}
		next = ref
		return nil
	})
	g.Go(func() error {
		document, err := uc.QuestionSetClient.FetchQuestionSet(gctx, sectionID)
		if err != nil {
			return err
		}
		for _, section := range document.Sections {
			if section.SectionID == sectionID {
				current = models.SectionRef{SectionID: section.SectionID, CategoryID: section.CategoryID}
				break
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if current.IsZero() {
		current = models.SectionRef{SectionID: sectionID}
	}

	state := &models.NavigationState{Current: current}
	if previous != nil {
		state.Previous = *previous
	}
	if next != nil {
		state.Next = *next
	}

	// The journey context carries the stage marker for progress indication
	// on subsequent steps of the same journey.
	journey.CurrentSection = current.SectionID
	journey.CurrentCategory = current.CategoryID
	if err := uc.RedisRepository.SaveJourneyContext(ctx, journeyID, journey); err != nil {
		return nil, err
	}

	return state, nil
}
