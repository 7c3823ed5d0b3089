package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadBaseConfigFromENV(t *testing.T) {
	addr := "localhost:11111"
	os.Setenv("WAYFARER_API_SERVICE_ADDRESS", addr)
	os.Setenv("WAYFARER_SHARE_DOMAIN", "https://wayfarer.example.com")

	cfg := LoadBaseConfigFromENV()

	assert.Equal(t, addr, cfg.Addr)
	assert.Equal(t, "https://wayfarer.example.com", cfg.Site.Share.Domain)
}

func TestShareLimitsDefaults(t *testing.T) {
	var limits ShareLimits
	assert.Equal(t, 24, limits.ViewDedupHoursOrDefault())
	assert.Equal(t, 30, limits.InviteExpiryDaysOrDefault())

	limits = ShareLimits{ViewDedupHours: 6, InviteExpiryDays: 7}
	assert.Equal(t, 6, limits.ViewDedupHoursOrDefault())
	assert.Equal(t, 7, limits.InviteExpiryDaysOrDefault())
}

func TestShareURL(t *testing.T) {
	cfg := CoreConfig{}
	cfg.Site.Share.Domain = "https://wayfarer.example.com"
	core := New(cfg, nil, nil)

	assert.Equal(t, "https://wayfarer.example.com/shared/tok-abc", core.ShareURL("tok-abc"))
}
