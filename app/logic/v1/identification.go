package v1

import (
	"context"
	"log/slog"

	"github.com/wayfarer-app/wayfarer/app/core"
	"github.com/wayfarer-app/wayfarer/pkg/security"
)

type _userInfo struct {
	u *security.TokenClaims
}

func (u *_userInfo) GetUserInfo() security.TokenClaims {
	return *u.u
}

func SetupUserInfo(ctx context.Context, core *core.Core) UserInfo {
	userInfo, ok := InjectTokenClaim(ctx)
	if !ok {
		// anonymous access is allowed on the public paths
		slog.Debug("no user claims in context", slog.String("component", "logic.v1.setupUserInfo"))
		userInfo = security.TokenClaims{}
	}
	return &_userInfo{
		u: &userInfo,
	}
}

type UserInfo interface {
	GetUserInfo() security.TokenClaims
}
