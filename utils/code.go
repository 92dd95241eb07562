package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateCode returns a random hex token of the given byte length, used for
// opaque references such as cookie session ids.
func GenerateCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
