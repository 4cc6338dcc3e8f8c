package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a cache key of the form "prefix:hash(parts...)". The keyer
// uses it to fold the parameter hash and build options into one scene key,
// so distinct option sets never share an entry. The full SHA-256 digest is
// kept; a truncated key would invite collisions between near-identical
// parameter files.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash returns the SHA-256 digest of data as a 64-character hex string.
// The pipeline hashes the canonical TOML encoding of resolved parameters
// with it to identify a build.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
