package crypto

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
	"slices"
	"strings"
)

// Fingerprint identifies a set of paths regardless of the order they were
// given in. 32 bytes of BLAKE2b come out as 43 to 44 characters of Base-58.
func Fingerprint(paths []string) string {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)

	hash := blake2b.Sum256([]byte(strings.Join(sorted, "\x00")))

	return base58.Encode(hash[:])
}
