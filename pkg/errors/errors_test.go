package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToInternal(t *testing.T) {
	err := New("test.trace", "something broke", nil)
	assert.Equal(t, http.StatusInternalServerError, err.GetCode())
	assert.Equal(t, "something broke", err.Message())
}

func TestCodeHelpers(t *testing.T) {
	assert.True(t, IsNotFound(New("t", "m", nil).Code(http.StatusNotFound)))
	assert.True(t, IsForbidden(New("t", "m", nil).Code(http.StatusForbidden)))
	assert.True(t, IsUnauthorized(New("t", "m", nil).Code(http.StatusUnauthorized)))
	assert.True(t, IsInvalidInput(New("t", "m", nil).Code(http.StatusBadRequest)))

	assert.False(t, IsNotFound(fmt.Errorf("plain error")))
	assert.False(t, IsNotFound(nil))
}

func TestTracePreservesCode(t *testing.T) {
	inner := New("inner", "not found", nil).Code(http.StatusNotFound)
	outer := Trace("outer", inner)
	assert.True(t, IsNotFound(outer))
	assert.Contains(t, outer.Error(), "inner")
	assert.Contains(t, outer.Error(), "outer")
}

func TestWrapCarriesCode(t *testing.T) {
	inner := New("inner", "denied", nil).Code(http.StatusForbidden)
	outer := Wrap(inner, "outer", "wrapped")
	assert.Equal(t, http.StatusForbidden, outer.GetCode())
}
