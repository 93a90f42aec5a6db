package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell-press/inkwell/internal/shared"
)

// principalCacheTTL keeps the cache short-lived so role changes propagate
// quickly; an access token outlives the cache entry many times over.
const principalCacheTTL = time.Minute

// PrincipalCache memoizes resolved principals in Redis so hot request paths
// skip the account lookup.
type PrincipalCache struct {
	client *redis.Client
}

// NewPrincipalCache constructs a PrincipalCache.
func NewPrincipalCache(client *redis.Client) *PrincipalCache {
	return &PrincipalCache{client: client}
}

type cachedPrincipal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

// Get returns the cached principal for an account id, if present. Cache
// failures degrade to a miss.
func (c *PrincipalCache) Get(ctx context.Context, id string) (*shared.Principal, bool) {
	payload, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var stored cachedPrincipal
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, false
	}
	return &shared.Principal{ID: stored.ID, Email: stored.Email, Role: stored.Role}, true
}

// Set stores the principal, ignoring cache failures.
func (c *PrincipalCache) Set(ctx context.Context, p *shared.Principal) {
	data, err := json.Marshal(cachedPrincipal{ID: p.ID, Email: p.Email, Role: p.Role})
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(p.ID), data, principalCacheTTL).Err()
}

// Invalidate drops the cached principal, used after profile or role updates.
func (c *PrincipalCache) Invalidate(ctx context.Context, id string) {
	_ = c.client.Del(ctx, c.key(id)).Err()
}

func (c *PrincipalCache) key(id string) string {
	return "principal:" + id
}
