package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/wayfarer-app/wayfarer/app/core"
	v1 "github.com/wayfarer-app/wayfarer/app/logic/v1"
	"github.com/wayfarer-app/wayfarer/app/response"
	"github.com/wayfarer-app/wayfarer/pkg/errors"
	"github.com/wayfarer-app/wayfarer/pkg/i18n"
	"github.com/wayfarer-app/wayfarer/pkg/security"
	"github.com/wayfarer-app/wayfarer/pkg/types"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

// AcceptLanguage 目前服务端支持 en: English, zh-CN: 简体中文
func AcceptLanguage() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		lang := ctx.Request.Header.Get("Accept-Language")
		ctx.Set(v1.LANGUAGE_KEY, lo.If(strings.Contains(lang, "zh"), types.LANGUAGE_CN_KEY).Else(types.LANGUAGE_EN_KEY))
	}
}

func bearerToken(c *gin.Context) string {
	tokenValue := c.GetHeader(security.TOKEN_KEY)
	return strings.TrimSpace(strings.TrimPrefix(tokenValue, "Bearer "))
}

// Authorization requires a valid signed token and binds its claims to the
// request context.
func Authorization(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenValue := bearerToken(c)
		if tokenValue == "" {
			response.APIError(c, errors.New("middleware.Authorization.empty", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
			return
		}

		claims, err := security.VerifyJWT(tokenValue, core.Cfg().Security.EncryptKey)
		if err != nil {
			response.APIError(c, errors.Trace("middleware.Authorization", err))
			return
		}

		c.Set(v1.TOKEN_CONTEXT_KEY, claims)
		c.Set("user", claims.User)
	}
}

// OptionalAuthorization binds claims when a token is presented but lets
// anonymous requests through. A presented-but-invalid token still fails.
func OptionalAuthorization(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenValue := bearerToken(c)
		if tokenValue == "" {
			return
		}

		claims, err := security.VerifyJWT(tokenValue, core.Cfg().Security.EncryptKey)
		if err != nil {
			response.APIError(c, errors.Trace("middleware.OptionalAuthorization", err))
			return
		}

		c.Set(v1.TOKEN_CONTEXT_KEY, claims)
		c.Set("user", claims.User)
	}
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

// Metrics records the latency histogram per route and counts error
// responses.
func Metrics(appCore *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := appCore.Metrics().ApiResponseTimer(c.FullPath())
		c.Next()
		timer.ObserveDuration()

		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			appCore.Metrics().ApiErrorInc(c.Request.Method, c.FullPath(), status)
		}
	}
}

type LimiterFunc func(key string, opts ...core.LimitOption) gin.HandlerFunc

func UseLimit(appCore *core.Core, operation string, genKeyFunc func(c *gin.Context) string, opts ...core.LimitOption) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !appCore.UseLimiter(genKeyFunc(c), opts...).Allow() {
			response.APIError(c, errors.New("middleware.limiter."+operation, i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
		}
	}
}
