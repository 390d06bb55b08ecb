package usecase

import "time"

const statementCacheTTL = 30 * time.Second

func statementCacheKey(partyID string) string {
	return "statement:" + partyID
}
