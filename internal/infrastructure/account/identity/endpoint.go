package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// buildURL resolves path against baseURL. An absolute path wins.
func buildURL(baseURL, path string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// tokenDigest keys the principal cache without holding raw tokens in memory.
func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
