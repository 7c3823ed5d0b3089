package v1

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wayfarer-app/wayfarer/app/core"
	"github.com/wayfarer-app/wayfarer/pkg/errors"
	"github.com/wayfarer-app/wayfarer/pkg/i18n"
	"github.com/wayfarer-app/wayfarer/pkg/security"
	"github.com/wayfarer-app/wayfarer/pkg/types"
)

type TripLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewTripLogic(ctx context.Context, core *core.Core) *TripLogic {
	return &TripLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type TripViewResult struct {
	Trip          *types.Trip           `json:"trip"`
	Stats         types.EngagementStats `json:"stats"`
	AccessClass   types.AccessClass     `json:"access_class"`
	AllowComments bool                  `json:"allow_comments"`
	AllowCloning  bool                  `json:"allow_cloning"`
	Liked         bool                  `json:"liked"`
}

func requesterFrom(user security.TokenClaims, token, fingerprint string) types.Requester {
	return types.Requester{
		UserID:      user.User,
		Token:       token,
		Fingerprint: fingerprint,
	}
}

// loadTripConfig resolves the sharing config for a trip id. A live trip
// without one is a data-integrity fault, not a NotFound.
func loadTripConfig(ctx context.Context, c *core.Core, tripID string) (*types.SharingConfig, error) {
	cfg, err := c.Store().SharingConfigStore().Get(ctx, tripID)
	if err == nil {
		return cfg, nil
	}
	if err != sql.ErrNoRows {
		return nil, errors.New("logic.loadTripConfig.SharingConfigStore.Get", i18n.ERROR_INTERNAL, err)
	}

	if _, terr := c.Store().TripStore().Get(ctx, tripID); terr == nil {
		slog.Error("trip has no sharing config", slog.String("trip_id", tripID))
		return nil, errors.New("logic.loadTripConfig.Integrity", i18n.ERROR_SHARING_CONFIG_MISSING, err)
	} else if terr != sql.ErrNoRows {
		return nil, errors.New("logic.loadTripConfig.TripStore.Get", i18n.ERROR_INTERNAL, terr)
	}
	return nil, errors.New("logic.loadTripConfig.NotFound", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
}

func loadDirectSharesFor(ctx context.Context, c *core.Core, tripID, userID string) ([]types.DirectShare, error) {
	if userID == "" {
		return nil, nil
	}
	shares, err := c.Store().DirectShareStore().List(ctx, types.ListDirectShareOptions{TripID: tripID})
	if err != nil {
		return nil, errors.New("logic.loadDirectSharesFor.DirectShareStore.List", i18n.ERROR_INTERNAL, err)
	}
	return shares, nil
}

// ViewByToken serves the public share-link path. Unknown and revoked tokens
// are indistinguishable, both are NotFound.
func (l *TripLogic) ViewByToken(token, fingerprint string) (*TripViewResult, error) {
	cfg, err := l.core.Store().SharingConfigStore().GetByToken(l.ctx, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("TripLogic.ViewByToken.SharingConfigStore.GetByToken", i18n.ERROR_INVALID_TOKEN, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("TripLogic.ViewByToken.SharingConfigStore.GetByToken", i18n.ERROR_INTERNAL, err)
	}

	req := requesterFrom(l.GetUserInfo(), token, fingerprint)
	shares, err := loadDirectSharesFor(l.ctx, l.core, cfg.TripID, req.UserID)
	if err != nil {
		return nil, err
	}

	decision := DecideAccess(cfg, shares, req)
	if !decision.Allowed {
		return nil, errors.New("TripLogic.ViewByToken.Policy", i18n.ERROR_INVALID_TOKEN, nil).Code(http.StatusNotFound)
	}

	return l.buildView(cfg, decision, req)
}

// ViewTrip is the id-addressed gateway view, used by authenticated users and
// direct-share recipients. The optional token lets a share-link visitor keep
// its token class on this path too.
func (l *TripLogic) ViewTrip(tripID, token, fingerprint string) (*TripViewResult, error) {
	cfg, err := loadTripConfig(l.ctx, l.core, tripID)
	if err != nil {
		return nil, err
	}

	req := requesterFrom(l.GetUserInfo(), token, fingerprint)
	shares, err := loadDirectSharesFor(l.ctx, l.core, tripID, req.UserID)
	if err != nil {
		return nil, err
	}

	decision := DecideAccess(cfg, shares, req)
	if !decision.Allowed {
		return nil, errors.New("TripLogic.ViewTrip.Policy", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}

	return l.buildView(cfg, decision, req)
}

func (l *TripLogic) buildView(cfg *types.SharingConfig, decision types.AccessDecision, req types.Requester) (*TripViewResult, error) {
	trip, err := l.core.Store().TripStore().Get(l.ctx, cfg.TripID)
	if err != nil {
		if err == sql.ErrNoRows {
			slog.Error("sharing config points at a missing trip", slog.String("trip_id", cfg.TripID))
		}
		return nil, errors.New("TripLogic.buildView.TripStore.Get", i18n.ERROR_INTERNAL, err)
	}

	recordView(l.ctx, l.core, cfg.TripID, req.Identity())

	stats, err := engagementStats(l.ctx, l.core, cfg.TripID)
	if err != nil {
		return nil, errors.Trace("TripLogic.buildView", err)
	}

	res := &TripViewResult{
		Trip:          trip,
		Stats:         stats,
		AccessClass:   decision.Class,
		AllowComments: cfg.AllowComments,
		AllowCloning:  cfg.AllowCloning,
	}
	if req.UserID != "" {
		liked, err := l.core.Store().TripLikeStore().Exists(l.ctx, cfg.TripID, req.UserID)
		if err != nil {
			return nil, errors.New("TripLogic.buildView.TripLikeStore.Exists", i18n.ERROR_INTERNAL, err)
		}
		res.Liked = liked
	}
	return res, nil
}

// recordView appends a ledger row unless the same identity already counted a
// view for this trip inside the dedup window. Never fails the request; on
// cache trouble the view is simply counted.
func recordView(ctx context.Context, c *core.Core, tripID, identity string) {
	count := true
	if cache := c.Cache(); cache != nil {
		key := fmt.Sprintf("view:%s:%s", tripID, identity)
		ttl := time.Duration(c.Cfg().Sharing.ViewDedupHoursOrDefault()) * time.Hour
		fresh, err := cache.SetNX(ctx, key, "1", ttl)
		switch {
		case err != nil:
			slog.Warn("view dedup cache unavailable, counting view",
				slog.String("trip_id", tripID), slog.String("error", err.Error()))
		case !fresh:
			c.Metrics().ViewDedupInc("hit")
			count = false
		default:
			c.Metrics().ViewDedupInc("miss")
		}
	}
	if !count {
		return
	}

	if err := c.Store().TripViewStore().Create(ctx, types.TripView{
		TripID: tripID,
		Viewer: identity,
	}); err != nil {
		slog.Error("failed to record trip view",
			slog.String("trip_id", tripID), slog.String("error", err.Error()))
	}
}
