package utils

import (
	"crypto/rand"
)

const shortIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const ShortIDLength = 10

// NewShortID returns a short uppercase alphanumeric identifier used for
// users and listings. Messages and other high-volume records use UUIDs.
// IDs are primary keys, so the bytes must come from crypto/rand: a
// deterministic source would replay the same sequence after a restart.
func NewShortID() string {
	b := make([]byte, ShortIDLength)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = shortIDAlphabet[int(b[i])%len(shortIDAlphabet)]
	}
	return string(b)
}
