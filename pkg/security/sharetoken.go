package security

import (
	"crypto/rand"
	"encoding/base64"
)

const shareTokenBytes = 32

// GenShareToken produces an opaque URL-safe capability string with 256 bits
// of entropy. It never checks uniqueness; the sharing store's unique index
// does, and the caller retries on the (vanishingly rare) collision.
func GenShareToken() string {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process has no usable entropy source.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
