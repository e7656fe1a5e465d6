package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

const (
	searchCachePrefix  = "search:results:"
	searchCachePattern = searchCachePrefix + "*"
	searchCacheTTL     = 2 * time.Minute
)

type searchCacheKeyInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func normalizeSearchQuery(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// SearchCacheKey derives a stable cache key from the normalized query and the
// effective limit, so "  Yoga " and "yoga" share an entry.
func SearchCacheKey(query string, limit int) string {
	in := searchCacheKeyInput{
		Query: normalizeSearchQuery(query),
		Limit: limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return searchCachePrefix + hex.EncodeToString(sum[:])
}
