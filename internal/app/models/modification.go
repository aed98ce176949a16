package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChangeStatus is the per-change lifecycle. Readiness is never sticky: it is
// recomputed from the current answers every time the change is displayed or
// saved.
type ChangeStatus string

const (
	ChangeStatusUnfinished         ChangeStatus = "Unfinished"
	ChangeStatusReadyForSubmission ChangeStatus = "ChangeReadyForSubmission"
	ChangeStatusInDraft            ChangeStatus = "InDraft"
	ChangeStatusApproved           ChangeStatus = "Approved"
	ChangeStatusNotApproved        ChangeStatus = "NotApproved"
)

func (s ChangeStatus) IsValid() bool {
	switch s {
	case ChangeStatusUnfinished, ChangeStatusReadyForSubmission, ChangeStatusInDraft, ChangeStatusApproved, ChangeStatusNotApproved:
		return true
	}
	return false
}

type ModificationStatus string

const (
	ModificationStatusInDraft          ModificationStatus = "InDraft"
	ModificationStatusWithSponsor      ModificationStatus = "WithSponsor"
	ModificationStatusWithReviewBody   ModificationStatus = "WithReviewBody"
	ModificationStatusApproved         ModificationStatus = "Approved"
	ModificationStatusNotApproved      ModificationStatus = "NotApproved"
	ModificationStatusRequestRevisions ModificationStatus = "RequestRevisions"
)

func (s ModificationStatus) IsValid() bool {
	switch s {
	case ModificationStatusInDraft, ModificationStatusWithSponsor, ModificationStatusWithReviewBody,
		ModificationStatusApproved, ModificationStatusNotApproved, ModificationStatusRequestRevisions:
		return true
	}
	return false
}

// ModificationChange is one discrete change within a modification. The
// questionnaire itself is assembled per request from the question set and
// the stored answers; only the identifiers and the last computed status are
// persisted.
type ModificationChange struct {
	ChangeID               string       `bson:"change_id" json:"change_id"`
	AreaOfChangeID         string       `bson:"area_of_change_id" json:"area_of_change_id"`
	SpecificAreaOfChangeID string       `bson:"specific_area_of_change_id" json:"specific_area_of_change_id"`
	Status                 ChangeStatus `bson:"status" json:"status"`
	CreatedAt              time.Time    `bson:"created_at" json:"created_at"`

	Questionnaire *Questionnaire `bson:"-" json:"questionnaire,omitempty"`
}

// Modification is the aggregate change request against a project record.
type Modification struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"-"`
	ModificationID      string               `bson:"modification_id" json:"modification_id"`
	ProjectRecordID     string               `bson:"project_record_id" json:"project_record_id"`
	Status              ModificationStatus   `bson:"status" json:"status"`
	SponsorReference    string               `bson:"sponsor_reference,omitempty" json:"sponsor_reference,omitempty"`
	ReviewType          string               `bson:"review_type,omitempty" json:"review_type,omitempty"`
	Reason              string               `bson:"reason,omitempty" json:"reason,omitempty"`
	RevisionDescription string               `bson:"revision_description,omitempty" json:"revision_description,omitempty"`
	Changes             []ModificationChange `bson:"changes" json:"changes"`
	CreatedAt           time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time            `bson:"updated_at" json:"updated_at"`
}

// FindChange returns the change with the given identifier, or nil.
func (m *Modification) FindChange(changeID string) *ModificationChange {
	for i := range m.Changes {
		if m.Changes[i].ChangeID == changeID {
			return &m.Changes[i]
		}
	}
	return nil
}
