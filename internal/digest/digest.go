package digest

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"gcat/internal/domain"
)

// size is the number of digest bytes kept in a fingerprint.
const size = 10

// Sum returns the fingerprint of raw bytes.
func Sum(b []byte) domain.Fingerprint {
	sum := blake2b.Sum256(b)
	return domain.Fingerprint(hex.EncodeToString(sum[:size]))
}

// Of returns the fingerprint of v's JSON encoding.
func Of(v any) (domain.Fingerprint, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return Sum(b), nil
}
