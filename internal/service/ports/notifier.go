package ports

import (
	"context"

	"github.com/stpnv0/TennisHub/internal/domain"
)

type RegistrationNotifier interface {
	NotifyAdmitted(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyWithdrawn(ctx context.Context, user *domain.User, event *domain.Event)
}
