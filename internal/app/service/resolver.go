package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ddegtyarev/linkpulse/internal/storage"
)

// cacheTTL bounds how long a resolved link may be served from cache.
const cacheTTL = time.Hour

// LinkCache is the read-through cache in front of the resolver. A miss
// is (nil, nil). Implemented by the redis cache; nil disables caching.
type LinkCache interface {
	GetLink(ctx context.Context, code string) (*storage.LinkRecord, error)
	SetLink(ctx context.Context, link *storage.LinkRecord, ttl time.Duration) error
	Delete(ctx context.Context, code string) error
}

// LinkResolver looks up a short code and decides redirect eligibility.
type LinkResolver struct {
	store  storage.Store
	cache  LinkCache
	logger *zap.Logger
}

func NewLinkResolver(store storage.Store, cache LinkCache, logger *zap.Logger) *LinkResolver {
	return &LinkResolver{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Resolve returns the link a code redirects to. Unknown and inactive
// codes are both storage.ErrNotFound; a link past its expiry is
// ErrExpired. Cache failures degrade to a store lookup, never to a
// failed redirect.
func (r *LinkResolver) Resolve(ctx context.Context, code string) (*storage.LinkRecord, error) {
	link, err := r.cached(ctx, code)
	if err != nil {
		return nil, err
	}

	if link.ExpiresAt != nil && link.ExpiresAt.Before(time.Now()) {
		return nil, ErrExpired
	}

	return link, nil
}

func (r *LinkResolver) cached(ctx context.Context, code string) (*storage.LinkRecord, error) {
	if r.cache != nil {
		link, err := r.cache.GetLink(ctx, code)
		if err != nil {
			r.logger.Warn("link cache read failed", zap.Error(err))
		} else if link != nil {
			return link, nil
		}
	}

	link, err := r.store.FindActiveByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if ttl := cacheFor(link); ttl > 0 {
			if err := r.cache.SetLink(ctx, link, ttl); err != nil {
				r.logger.Warn("link cache write failed", zap.Error(err))
			}
		}
	}

	return link, nil
}

// Invalidate drops a code from the cache after its link was mutated or
// deleted.
func (r *LinkResolver) Invalidate(ctx context.Context, code string) {
	if r.cache == nil || code == "" {
		return
	}
	if err := r.cache.Delete(ctx, code); err != nil {
		r.logger.Warn("link cache invalidation failed", zap.String("code", code), zap.Error(err))
	}
}

// cacheFor caps the TTL at the link's remaining lifetime so an expired
// link is never served from cache.
func cacheFor(link *storage.LinkRecord) time.Duration {
	if link.ExpiresAt == nil {
		return cacheTTL
	}

	remaining := time.Until(*link.ExpiresAt)
	if remaining < cacheTTL {
		return remaining
	}
	return cacheTTL
}
