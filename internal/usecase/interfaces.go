package usecase

import (
	"context"

	"github.com/galvanlaw/crm-intake/internal/infra/queue"
)

type SignupEventPublisherInterface interface {
	PublishSignup(ctx context.Context, payload queue.SignupEventPayload) error
}
