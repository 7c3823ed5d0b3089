package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	conf.SetConfigBytes(raw)

	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func (c CoreConfig) LoadCustomConfig(cfg any) error {
	if len(c.bytes) == 0 {
		return nil
	}
	if err := toml.Unmarshal(c.bytes, cfg); err != nil {
		return err
	}
	return nil
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string      `toml:"addr"`
	Log      Log         `toml:"log"`
	Postgres PGConfig    `toml:"postgres"`
	Redis    RedisConfig `toml:"redis"`
	Site     Site        `toml:"site"`

	Security Security    `toml:"security"`
	Sharing  ShareLimits `toml:"sharing"`

	bytes []byte `toml:"-"`
}

type Site struct {
	Share ShareConfig `toml:"share"`
}

// ShareConfig describes the public-facing site used to render share links,
// e.g. {domain}/shared/{token}.
type ShareConfig struct {
	Domain          string `toml:"domain"`
	SiteTitle       string `toml:"site_title"`
	SiteDescription string `toml:"site_description"`
}

type Security struct {
	EncryptKey string `toml:"encrypt_key"`
}

type ShareLimits struct {
	ViewDedupHours   int `toml:"view_dedup_hours"`   // default 24
	InviteExpiryDays int `toml:"invite_expiry_days"` // default 30
}

func (s ShareLimits) ViewDedupHoursOrDefault() int {
	if s.ViewDedupHours <= 0 {
		return 24
	}
	return s.ViewDedupHours
}

func (s ShareLimits) InviteExpiryDaysOrDefault() int {
	if s.InviteExpiryDays <= 0 {
		return 30
	}
	return s.InviteExpiryDays
}

func (c *CoreConfig) SetConfigBytes(raw []byte) {
	c.bytes = raw
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("WAYFARER_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Redis.FromENV()
	c.Security.EncryptKey = os.Getenv("WAYFARER_API_ENCRYPT_KEY")
	c.Site.Share.Domain = os.Getenv("WAYFARER_SHARE_DOMAIN")
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("WAYFARER_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`

	PoolSize     int    `toml:"pool_size"`
	MinIdleConns int    `toml:"min_idle_conns"`
	KeyPrefix    string `toml:"key_prefix"`
}

func (r *RedisConfig) FromENV() {
	r.Addr = os.Getenv("WAYFARER_REDIS_ADDR")
	r.Password = os.Getenv("WAYFARER_REDIS_PASSWORD")
	if dbStr := os.Getenv("WAYFARER_REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			r.DB = db
		}
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("WAYFARER_API_LOG_LEVEL")
	l.Path = os.Getenv("WAYFARER_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
