package srv

import (
	"context"
	"log/slog"

	"github.com/wayfarer-app/wayfarer/pkg/types"
)

// Notifier delivers share invitations to recipients. The default
// implementation only records them, mail or push delivery can be swapped in
// at setup time.
type Notifier interface {
	ShareInvited(ctx context.Context, invite types.DirectShare, shareURL string) error
}

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (s *LogNotifier) ShareInvited(ctx context.Context, invite types.DirectShare, shareURL string) error {
	slog.Info("share invitation",
		slog.String("trip_id", invite.TripID),
		slog.String("recipient", invite.Recipient),
		slog.String("permission", string(invite.Permission)),
		slog.String("url", shareURL))
	return nil
}
