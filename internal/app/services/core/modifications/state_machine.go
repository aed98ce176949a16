package modifications

import (
	"errors"
	"fmt"
	"modifications-service/internal/app/models"
	"modifications-service/internal/pkg/constvars"
	"modifications-service/internal/pkg/exceptions"
)

// TransitionContext carries everything a guard may inspect: the caller's
// role, the request payload, and the readiness facts computed by the
// usecase before the transition is attempted.
type TransitionContext struct {
	Role              string
	Justification     string
	ReviewType        string
	ChangesReady      bool
	DocumentsComplete bool
}

type transitionKey struct {
	From models.ModificationStatus
	To   models.ModificationStatus
}

// guardFunc validates a single transition. A nil error means the transition
// may proceed; any returned error is surfaced to the caller unchanged, so a
// failed guard is never a silent no-op.
type guardFunc func(modification *models.Modification, tc *TransitionContext) error

// transitionTable is the whole aggregate lifecycle:
//
//	InDraft -> WithSponsor -> WithReviewBody -> {Approved | NotApproved}
//	WithSponsor -> Approved (review type says no review required)
//	{Approved | NotApproved} -> RequestRevisions -> InDraft
//
// Any (from, to) pair missing from the table is forbidden.
var transitionTable = map[transitionKey]guardFunc{
	{models.ModificationStatusInDraft, models.ModificationStatusWithSponsor}:          guardSubmittable,
	{models.ModificationStatusWithSponsor, models.ModificationStatusWithReviewBody}:   guardReviewRequired,
	{models.ModificationStatusWithSponsor, models.ModificationStatusApproved}:         guardNoReviewRequired,
	{models.ModificationStatusWithReviewBody, models.ModificationStatusApproved}:      nil,
	{models.ModificationStatusWithReviewBody, models.ModificationStatusNotApproved}:   guardReasonPresent,
	{models.ModificationStatusApproved, models.ModificationStatusRequestRevisions}:    guardRevisionRequest,
	{models.ModificationStatusNotApproved, models.ModificationStatusRequestRevisions}: guardRevisionRequest,
	{models.ModificationStatusRequestRevisions, models.ModificationStatusInDraft}:     nil,
}

// ApplyTransition runs the guard for (modification.Status, target) and, when
// it passes, mutates the aggregate in place: status plus the side effects
// the target state implies. The caller persists the result atomically.
func ApplyTransition(modification *models.Modification, target models.ModificationStatus, tc *TransitionContext) error {
	if !target.IsValid() {
		return exceptions.ErrMalformedState(
			fmt.Errorf("unknown target status %q", target),
			modification.ModificationID,
		)
	}

	guard, known := transitionTable[transitionKey{From: modification.Status, To: target}]
	if !known {
		return exceptions.ErrTransitionForbidden(string(modification.Status), string(target), "no such transition")
	}
	if guard != nil {
		if err := guard(modification, tc); err != nil {
			return err
		}
	}

	switch target {
	case models.ModificationStatusApproved:
		modification.Reason = ""
	case models.ModificationStatusNotApproved:
		modification.Reason = tc.Justification
	case models.ModificationStatusRequestRevisions:
		modification.RevisionDescription = tc.Justification
	case models.ModificationStatusInDraft:
		modification.RevisionDescription = ""
	}
	if modification.Status == models.ModificationStatusWithSponsor && tc.ReviewType != "" {
		modification.ReviewType = tc.ReviewType
	}
	modification.Status = target

	return nil
}

func guardSubmittable(modification *models.Modification, tc *TransitionContext) error {
	if !tc.ChangesReady {
		return exceptions.ErrTransitionForbidden(
			string(modification.Status), string(models.ModificationStatusWithSponsor),
			"not every change is ready for submission",
		)
	}
	if !tc.DocumentsComplete {
		return exceptions.ErrTransitionForbidden(
			string(modification.Status), string(models.ModificationStatusWithSponsor),
			"not every uploaded document has complete metadata",
		)
	}
	return nil
}

// guardReviewRequired admits WithSponsor -> WithReviewBody only when the
// review type says a review body must look at the modification.
func guardReviewRequired(modification *models.Modification, tc *TransitionContext) error {
	reviewType := effectiveReviewType(modification, tc)
	if reviewType == "" {
		return exceptions.ErrMalformedReviewType(errors.New("review type missing on sponsor decision"))
	}
	if reviewType == constvars.ReviewTypeNoneRequired {
		return exceptions.ErrTransitionForbidden(
			string(modification.Status), string(models.ModificationStatusWithReviewBody),
			"review type requires no review",
		)
	}
	return nil
}

// guardNoReviewRequired admits the direct WithSponsor -> Approved shortcut.
func guardNoReviewRequired(modification *models.Modification, tc *TransitionContext) error {
	reviewType := effectiveReviewType(modification, tc)
	if reviewType == "" {
		return exceptions.ErrMalformedReviewType(errors.New("review type missing on sponsor decision"))
	}
	if reviewType != constvars.ReviewTypeNoneRequired {
		return exceptions.ErrTransitionForbidden(
			string(modification.Status), string(models.ModificationStatusApproved),
			"review type requires a review body decision",
		)
	}
	return nil
}

func guardReasonPresent(modification *models.Modification, tc *TransitionContext) error {
	if tc.Justification == "" {
		return exceptions.ErrReasonRequired(string(modification.Status), string(models.ModificationStatusNotApproved))
	}
	return nil
}

func guardRevisionRequest(modification *models.Modification, tc *TransitionContext) error {
	if tc.Role != constvars.RoleAuthoriser {
		return exceptions.ErrNotAuthorisedRole(tc.Role)
	}
	if tc.Justification == "" {
		return exceptions.ErrReasonRequired(string(modification.Status), string(models.ModificationStatusRequestRevisions))
	}
	if modification.RevisionDescription != "" {
		return exceptions.ErrRevisionAlreadyRequested(string(modification.Status), string(models.ModificationStatusRequestRevisions))
	}
	return nil
}

func effectiveReviewType(modification *models.Modification, tc *TransitionContext) string {
	if tc.ReviewType != "" {
		return tc.ReviewType
	}
	return modification.ReviewType
}
