package v1

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/wayfarer-app/wayfarer/app/core"
	"github.com/wayfarer-app/wayfarer/pkg/errors"
	"github.com/wayfarer-app/wayfarer/pkg/i18n"
	"github.com/wayfarer-app/wayfarer/pkg/types"
	"github.com/wayfarer-app/wayfarer/pkg/utils"
)

type CloneLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewCloneLogic(ctx context.Context, core *core.Core) *CloneLogic {
	return &CloneLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// CloneTrip deep-copies the trip under the caller's ownership with a fresh
// private sharing config. Engagement rows and direct shares never carry
// over. Copy and config creation share one transaction so a failure leaves
// no orphan trip behind.
func (l *CloneLogic) CloneTrip(tripID, token string) (string, error) {
	user := l.GetUserInfo()
	if user.User == "" {
		return "", errors.New("CloneLogic.CloneTrip.Unauthenticated", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	cfg, err := loadTripConfig(l.ctx, l.core, tripID)
	if err != nil {
		return "", err
	}

	req := requesterFrom(user, token, "")
	shares, err := loadDirectSharesFor(l.ctx, l.core, tripID, user.User)
	if err != nil {
		return "", err
	}

	decision := DecideAccess(cfg, shares, req)
	if !decision.Allowed {
		return "", errors.New("CloneLogic.CloneTrip.Policy", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}
	if !cfg.AllowCloning && decision.Class != types.AccessClassOwner {
		return "", errors.New("CloneLogic.CloneTrip.Disabled", i18n.ERROR_CLONING_DISABLED, nil).Code(http.StatusForbidden)
	}

	source, err := l.core.Store().TripStore().Get(l.ctx, tripID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", errors.New("CloneLogic.CloneTrip.TripStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return "", errors.New("CloneLogic.CloneTrip.TripStore.Get", i18n.ERROR_INTERNAL, err)
	}

	newTripID := utils.GenUniqIDStr()
	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().TripStore().Copy(ctx, source, newTripID, user.User); err != nil {
			return err
		}
		return l.core.Store().SharingConfigStore().Create(ctx, types.SharingConfig{
			TripID:     newTripID,
			UserID:     user.User,
			Visibility: types.VisibilityPrivate,
		})
	})
	if err != nil {
		return "", errors.New("CloneLogic.CloneTrip.Transaction", i18n.ERROR_INTERNAL, err)
	}

	return newTripID, nil
}
