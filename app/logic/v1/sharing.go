package v1

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lib/pq"

	"github.com/wayfarer-app/wayfarer/app/core"
	"github.com/wayfarer-app/wayfarer/pkg/errors"
	"github.com/wayfarer-app/wayfarer/pkg/i18n"
	"github.com/wayfarer-app/wayfarer/pkg/safe"
	"github.com/wayfarer-app/wayfarer/pkg/security"
	"github.com/wayfarer-app/wayfarer/pkg/types"
)

// maxTokenAttempts bounds regeneration when a fresh share token collides with
// the unique index. At 256 bits of entropy one retry is already paranoia.
const maxTokenAttempts = 3

type SharingLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewSharingLogic(ctx context.Context, core *core.Core) *SharingLogic {
	return &SharingLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type SharingOverview struct {
	Config       *types.SharingConfig  `json:"config"`
	ShareURL     string                `json:"share_url,omitempty"`
	DirectShares []types.DirectShare   `json:"direct_shares"`
	Stats        types.EngagementStats `json:"stats"`
}

// GetSharingOverview returns the owner dashboard payload for one trip.
func (l *SharingLogic) GetSharingOverview(tripID string) (*SharingOverview, error) {
	user := l.GetUserInfo()
	if user.User == "" {
		return nil, errors.New("SharingLogic.GetSharingOverview.Unauthenticated", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	cfg, err := l.core.Store().SharingConfigStore().Get(l.ctx, tripID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("SharingLogic.GetSharingOverview.SharingConfigStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("SharingLogic.GetSharingOverview.SharingConfigStore.Get", i18n.ERROR_INTERNAL, err)
	}

	if cfg.UserID != user.User {
		return nil, errors.New("SharingLogic.GetSharingOverview.Owner", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}

	shares, err := l.core.Store().DirectShareStore().List(l.ctx, types.ListDirectShareOptions{TripID: tripID})
	if err != nil {
		return nil, errors.New("SharingLogic.GetSharingOverview.DirectShareStore.List", i18n.ERROR_INTERNAL, err)
	}

	stats, err := engagementStats(l.ctx, l.core, tripID)
	if err != nil {
		return nil, errors.Trace("SharingLogic.GetSharingOverview", err)
	}

	res := &SharingOverview{
		Config:       cfg,
		DirectShares: shares,
		Stats:        stats,
	}
	if cfg.ShareToken != nil {
		res.ShareURL = l.core.ShareURL(*cfg.ShareToken)
	}
	return res, nil
}

type UpdateSharingSettingsRequest struct {
	Visibility    *types.Visibility `json:"visibility"`
	AllowComments *bool             `json:"allow_comments"`
	AllowCloning  *bool             `json:"allow_cloning"`
}

// UpdateSettings applies an owner patch to the trip's sharing config.
// Visibility transitions follow the revocation epoch rule: leaving
// unlisted/public clears the token for good, re-entering issues a fresh one,
// staying within the pair keeps it. The whole patch runs under a per-trip
// lock plus a row lock so rapid toggles cannot interleave.
func (l *SharingLogic) UpdateSettings(tripID string, req UpdateSharingSettingsRequest) (*types.SharingConfig, error) {
	user := l.GetUserInfo()
	if user.User == "" {
		return nil, errors.New("SharingLogic.UpdateSettings.Unauthenticated", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	if req.Visibility != nil && !req.Visibility.Valid() {
		return nil, errors.New("SharingLogic.UpdateSettings.Visibility", i18n.ERROR_INVALID_VISIBILITY, nil).Code(http.StatusBadRequest)
	}

	l.core.Locker().Lock(tripID)
	defer l.core.Locker().Unlock(tripID)

	var result *types.SharingConfig
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
			cfg, err := l.core.Store().SharingConfigStore().GetForUpdate(ctx, tripID)
			if err != nil {
				if err == sql.ErrNoRows {
					return errors.New("SharingLogic.UpdateSettings.SharingConfigStore.GetForUpdate", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
				}
				return errors.New("SharingLogic.UpdateSettings.SharingConfigStore.GetForUpdate", i18n.ERROR_INTERNAL, err)
			}
			if cfg.UserID != user.User {
				return errors.New("SharingLogic.UpdateSettings.Owner", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
			}

			next := *cfg
			if req.Visibility != nil {
				issueToken, clearToken := types.PlanVisibilityTransition(cfg, *req.Visibility)
				token := cfg.ShareToken
				if issueToken {
					fresh := security.GenShareToken()
					token = &fresh
				}
				if clearToken {
					token = nil
				}
				if err = l.core.Store().SharingConfigStore().UpdateVisibility(ctx, tripID, *req.Visibility, token); err != nil {
					// raw store error, the retry loop inspects it
					return err
				}
				next.Visibility = *req.Visibility
				next.ShareToken = token
			}

			if req.AllowComments != nil || req.AllowCloning != nil {
				if err = l.core.Store().SharingConfigStore().UpdateFlags(ctx, tripID, req.AllowComments, req.AllowCloning); err != nil {
					return errors.New("SharingLogic.UpdateSettings.SharingConfigStore.UpdateFlags", i18n.ERROR_INTERNAL, err)
				}
				if req.AllowComments != nil {
					next.AllowComments = *req.AllowComments
				}
				if req.AllowCloning != nil {
					next.AllowCloning = *req.AllowCloning
				}
			}

			result = &next
			return nil
		})
		if err == nil {
			return result, nil
		}
		if isUniqueViolation(err) {
			l.core.Metrics().ShareTokenRetryInc()
			slog.Warn("share token collision, regenerating", slog.String("trip_id", tripID))
			continue
		}
		if _, ok := err.(*errors.CustomizedError); ok {
			return nil, err
		}
		return nil, errors.New("SharingLogic.UpdateSettings.Transaction", i18n.ERROR_INTERNAL, err)
	}

	return nil, errors.New("SharingLogic.UpdateSettings.TokenAttempts", i18n.ERROR_INTERNAL, nil)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

type ShareWithUserRequest struct {
	Email      string                `json:"email" binding:"required"`
	Permission types.SharePermission `json:"permission_level" binding:"required"`
	Message    string                `json:"message"`
}

// ShareWithUser grants a named recipient access to the trip regardless of its
// visibility. Re-sharing the same recipient overwrites the prior grant.
func (l *SharingLogic) ShareWithUser(tripID string, req ShareWithUserRequest) (*types.DirectShare, error) {
	user := l.GetUserInfo()
	if user.User == "" {
		return nil, errors.New("SharingLogic.ShareWithUser.Unauthenticated", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	if !req.Permission.Valid() {
		return nil, errors.New("SharingLogic.ShareWithUser.Permission", i18n.ERROR_INVALID_PERMISSION, nil).Code(http.StatusBadRequest)
	}
	recipient := strings.TrimSpace(req.Email)
	if recipient == "" {
		return nil, errors.New("SharingLogic.ShareWithUser.Recipient", i18n.ERROR_INVALID_RECIPIENT, nil).Code(http.StatusBadRequest)
	}

	cfg, err := l.core.Store().SharingConfigStore().Get(l.ctx, tripID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("SharingLogic.ShareWithUser.SharingConfigStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("SharingLogic.ShareWithUser.SharingConfigStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if cfg.UserID != user.User {
		return nil, errors.New("SharingLogic.ShareWithUser.Owner", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	}

	share, err := l.core.Store().DirectShareStore().Upsert(l.ctx, types.DirectShare{
		TripID:     tripID,
		Recipient:  recipient,
		Permission: req.Permission,
		Message:    req.Message,
	})
	if err != nil {
		return nil, errors.New("SharingLogic.ShareWithUser.DirectShareStore.Upsert", i18n.ERROR_INTERNAL, err)
	}

	shareURL := ""
	if cfg.ShareToken != nil {
		shareURL = l.core.ShareURL(*cfg.ShareToken)
	}
	notifier := l.core.Srv().Notifier()
	invite := *share
	go safe.Run(func() {
		if err := notifier.ShareInvited(context.Background(), invite, shareURL); err != nil {
			slog.Error("failed to deliver share invitation", slog.String("trip_id", tripID),
				slog.String("recipient", recipient), slog.String("error", err.Error()))
		}
	})

	return share, nil
}

// ClaimShares binds every pending invite addressed to the caller's email to
// its account, flipping the grants to claimed.
func (l *SharingLogic) ClaimShares() (int64, error) {
	user := l.GetUserInfo()
	if user.User == "" {
		return 0, errors.New("SharingLogic.ClaimShares.Unauthenticated", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	if user.Email == "" {
		return 0, errors.New("SharingLogic.ClaimShares.Email", i18n.ERROR_INVALID_RECIPIENT, nil).Code(http.StatusBadRequest)
	}

	claimed, err := l.core.Store().DirectShareStore().Claim(l.ctx, user.Email, user.User)
	if err != nil {
		return 0, errors.New("SharingLogic.ClaimShares.DirectShareStore.Claim", i18n.ERROR_INTERNAL, err)
	}
	return claimed, nil
}
