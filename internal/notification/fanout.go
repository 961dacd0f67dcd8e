package notification

import (
	"context"

	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/service/ports"
)

// Fanout delivers every notification to each notifier in order.
type Fanout []ports.RegistrationNotifier

func (f Fanout) NotifyAdmitted(ctx context.Context, user *domain.User, event *domain.Event) {
	for _, n := range f {
		n.NotifyAdmitted(ctx, user, event)
	}
}

func (f Fanout) NotifyWithdrawn(ctx context.Context, user *domain.User, event *domain.Event) {
	for _, n := range f {
		n.NotifyWithdrawn(ctx, user, event)
	}
}
