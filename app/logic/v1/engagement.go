package v1

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	"github.com/wayfarer-app/wayfarer/app/core"
	"github.com/wayfarer-app/wayfarer/pkg/errors"
	"github.com/wayfarer-app/wayfarer/pkg/i18n"
	"github.com/wayfarer-app/wayfarer/pkg/types"
	"github.com/wayfarer-app/wayfarer/pkg/utils"
)

type EngagementLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewEngagementLogic(ctx context.Context, core *core.Core) *EngagementLogic {
	return &EngagementLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

func (l *EngagementLogic) resolveToken(token string) (*types.SharingConfig, types.AccessDecision, error) {
	cfg, err := l.core.Store().SharingConfigStore().GetByToken(l.ctx, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.AccessDecision{}, errors.New("EngagementLogic.resolveToken.SharingConfigStore.GetByToken", i18n.ERROR_INVALID_TOKEN, err).Code(http.StatusNotFound)
		}
		return nil, types.AccessDecision{}, errors.New("EngagementLogic.resolveToken.SharingConfigStore.GetByToken", i18n.ERROR_INTERNAL, err)
	}

	req := requesterFrom(l.GetUserInfo(), token, "")
	shares, err := loadDirectSharesFor(l.ctx, l.core, cfg.TripID, req.UserID)
	if err != nil {
		return nil, types.AccessDecision{}, err
	}

	decision := DecideAccess(cfg, shares, req)
	if !decision.Allowed {
		return nil, types.AccessDecision{}, errors.New("EngagementLogic.resolveToken.Policy", i18n.ERROR_INVALID_TOKEN, nil).Code(http.StatusNotFound)
	}
	return cfg, decision, nil
}

// ToggleLike flips the caller's like on the shared trip and returns the
// resulting state. Anonymous visitors cannot like.
func (l *EngagementLogic) ToggleLike(token string) (bool, error) {
	user := l.GetUserInfo()
	if user.User == "" {
		return false, errors.New("EngagementLogic.ToggleLike.Unauthenticated", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	cfg, _, err := l.resolveToken(token)
	if err != nil {
		return false, err
	}

	created, err := l.core.Store().TripLikeStore().TryCreate(l.ctx, cfg.TripID, user.User)
	if err != nil {
		return false, errors.New("EngagementLogic.ToggleLike.TripLikeStore.TryCreate", i18n.ERROR_INTERNAL, err)
	}
	if created {
		return true, nil
	}

	// the row already existed, this toggle removes it
	if _, err = l.core.Store().TripLikeStore().Delete(l.ctx, cfg.TripID, user.User); err != nil {
		return false, errors.New("EngagementLogic.ToggleLike.TripLikeStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return false, nil
}

// AddComment appends a comment on the shared trip. The allow_comments flag
// gates the public and token classes; the owner always may, and a direct
// share at comment level or above carries its own grant.
func (l *EngagementLogic) AddComment(token, content string) (int64, error) {
	user := l.GetUserInfo()
	if user.User == "" {
		return 0, errors.New("EngagementLogic.AddComment.Unauthenticated", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return 0, errors.New("EngagementLogic.AddComment.Content", i18n.ERROR_EMPTY_COMMENT, nil).Code(http.StatusBadRequest)
	}

	cfg, decision, err := l.resolveToken(token)
	if err != nil {
		return 0, err
	}

	allowed := cfg.AllowComments
	switch decision.Class {
	case types.AccessClassOwner:
		allowed = true
	case types.AccessClassDirect:
		if l.core.Srv().RBAC().PermissionCovers(decision.Permission, types.SharePermissionComment) {
			allowed = true
		}
	}
	if !allowed {
		return 0, errors.New("EngagementLogic.AddComment.Disabled", i18n.ERROR_COMMENTS_DISABLED, nil).Code(http.StatusForbidden)
	}

	comment := types.TripComment{
		ID:      utils.GenUniqID(),
		TripID:  cfg.TripID,
		UserID:  user.User,
		Content: content,
	}
	if err = l.core.Store().TripCommentStore().Create(l.ctx, comment); err != nil {
		return 0, errors.New("EngagementLogic.AddComment.TripCommentStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return comment.ID, nil
}

// ListComments pages through the shared trip's comments, newest first.
func (l *EngagementLogic) ListComments(token string, page, pageSize uint64) ([]types.TripComment, error) {
	cfg, _, err := l.resolveToken(token)
	if err != nil {
		return nil, err
	}

	list, err := l.core.Store().TripCommentStore().List(l.ctx, cfg.TripID, page, pageSize)
	if err != nil {
		return nil, errors.New("EngagementLogic.ListComments.TripCommentStore.List", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

const recentViewLimit = 10

// engagementStats derives every counter from the ledger at read time.
func engagementStats(ctx context.Context, c *core.Core, tripID string) (types.EngagementStats, error) {
	var (
		stats types.EngagementStats
		err   error
	)

	if stats.ViewCount, err = c.Store().TripViewStore().Count(ctx, tripID); err != nil {
		return stats, errors.New("logic.engagementStats.TripViewStore.Count", i18n.ERROR_INTERNAL, err)
	}
	if stats.UniqueViewers, err = c.Store().TripViewStore().CountDistinctViewers(ctx, tripID); err != nil {
		return stats, errors.New("logic.engagementStats.TripViewStore.CountDistinctViewers", i18n.ERROR_INTERNAL, err)
	}
	if stats.LikeCount, err = c.Store().TripLikeStore().Count(ctx, tripID); err != nil {
		return stats, errors.New("logic.engagementStats.TripLikeStore.Count", i18n.ERROR_INTERNAL, err)
	}
	if stats.CommentCount, err = c.Store().TripCommentStore().Count(ctx, tripID); err != nil {
		return stats, errors.New("logic.engagementStats.TripCommentStore.Count", i18n.ERROR_INTERNAL, err)
	}
	if stats.RecentViews, err = c.Store().TripViewStore().ListRecent(ctx, tripID, recentViewLimit); err != nil {
		return stats, errors.New("logic.engagementStats.TripViewStore.ListRecent", i18n.ERROR_INTERNAL, err)
	}
	return stats, nil
}
