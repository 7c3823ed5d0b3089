package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenUniqID(t *testing.T) {
	SetupIDWorker(1)

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		id := GenUniqID()
		assert.False(t, seen[id], "duplicate snowflake id")
		seen[id] = true
	}
}

func TestRandomStr(t *testing.T) {
	assert.Len(t, RandomStr(32), 32)
	assert.Len(t, RandomStr(0), 0)
}

func TestMD5(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", MD5(""))
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", MD5("abc"))
}

func TestAnonymousFingerprint(t *testing.T) {
	a := AnonymousFingerprint("1.2.3.4", "Mozilla/5.0")
	b := AnonymousFingerprint("1.2.3.4", "Mozilla/5.0")
	c := AnonymousFingerprint("1.2.3.5", "Mozilla/5.0")

	assert.Equal(t, a, b, "same ip+agent must fingerprint stably")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}
