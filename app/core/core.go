package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/wayfarer-app/wayfarer/app/core/srv"
	"github.com/wayfarer-app/wayfarer/app/store"
	"github.com/wayfarer-app/wayfarer/app/store/sqlstore"
	"github.com/wayfarer-app/wayfarer/pkg/types"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores store.Store
	cache  types.Cache

	httpEngine *gin.Engine
	metrics    *Metrics
	locker     *TripLocker
	limiters   *LimiterPool
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	core := New(cfg, nil, nil)

	setupSqlStore(core)
	core.cache = NewRedisCache(cfg.Redis)

	return core
}

// New builds a Core around already constructed dependencies. MustSetupCore
// wires the real postgres and redis backends on top of it.
func New(cfg CoreConfig, stores store.Store, cache types.Cache) *Core {
	return &Core{
		cfg:        cfg,
		srv:        srv.SetupSrvs(srv.ApplyNotifier(srv.NewLogNotifier())),
		stores:     stores,
		cache:      cache,
		httpEngine: gin.New(),
		metrics:    NewMetrics("wayfarer", "core"),
		locker:     NewTripLocker(),
		limiters:   NewLimiterPool(),
	}
}

func setupSqlStore(core *Core) {
	provider := sqlstore.MustSetup(core.cfg.Postgres)
	if err := provider().Install(); err != nil {
		panic(err)
	}
	core.stores = provider()
	fmt.Println("setupSqlStore done")
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() store.Store {
	return s.stores
}

func (s *Core) Cache() types.Cache {
	return s.cache
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Locker() *TripLocker {
	return s.locker
}

// ShareURL renders the public link for a share token.
func (s *Core) ShareURL(token string) string {
	return fmt.Sprintf("%s/shared/%s", s.cfg.Site.Share.Domain, token)
}
