package contracts

import (
	"context"
	"modifications-service/internal/app/models"
	"time"
)

// StatusEvent is published after every successful modification transition.
type StatusEvent struct {
	ModificationID  string                    `json:"modification_id"`
	ProjectRecordID string                    `json:"project_record_id"`
	FromStatus      models.ModificationStatus `json:"from_status"`
	ToStatus        models.ModificationStatus `json:"to_status"`
	Justification   string                    `json:"justification,omitempty"`
	OccurredAt      time.Time                 `json:"occurred_at"`
}

type StatusEventPublisher interface {
	PublishStatusEvent(ctx context.Context, event *StatusEvent) error
}
