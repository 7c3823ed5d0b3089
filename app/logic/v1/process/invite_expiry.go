package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/wayfarer-app/wayfarer/app/core"
	"github.com/wayfarer-app/wayfarer/pkg/register"
)

func init() {
	register.RegisterFunc[*Process](ProcessKey{}, func(p *Process) {
		// hourly sweep of stale pending invites
		p.Cron().AddFunc("0 * * * *", func() {
			ExpireStaleInvites(p.Core())
		})
	})
}

// ExpireStaleInvites marks pending direct-share invites older than the
// configured window as expired so they stop granting access on claim.
func ExpireStaleInvites(c *core.Core) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	days := c.Cfg().Sharing.InviteExpiryDaysOrDefault()
	olderThan := time.Now().AddDate(0, 0, -days).Unix()

	expired, err := c.Store().DirectShareStore().ExpirePending(ctx, olderThan)
	if err != nil {
		slog.Error("failed to expire stale invites", slog.String("error", err.Error()))
		return
	}
	if expired > 0 {
		slog.Info("expired stale invites", slog.Int64("count", expired), slog.Int("older_than_days", days))
	}
}
