package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizerGet(t *testing.T) {
	l := NewLocalizer("en", "zh-CN")

	assert.Equal(t, "Not found", l.Get("en", ERROR_NOT_FOUND))
	assert.Equal(t, "内容不存在", l.Get("zh-CN", ERROR_NOT_FOUND))
}

func TestLocalizerUnknownLangFallsBackToID(t *testing.T) {
	l := NewLocalizer("en")

	assert.Equal(t, ERROR_NOT_FOUND, l.Get("fr", ERROR_NOT_FOUND))
}

func TestLocalizerUnknownIDFallsBackToID(t *testing.T) {
	l := NewLocalizer("en")

	assert.Equal(t, "error.unknown.key", l.Get("en", "error.unknown.key"))
}
