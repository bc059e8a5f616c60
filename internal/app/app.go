// Package app holds the request-facing services: directory CRUD with input
// validation, the booking/renting lifecycle, and the search/reporting reads.
package app

import (
	"context"

	"chainstay/internal/domain"
)

// Cached reporting views. Any write that can change the underlying rows
// deletes these keys.
const (
	viewAreasKey    = "view:areas"
	viewCapacityKey = "view:capacity"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 500
)

func normalizePage(pg domain.Page) domain.Page {
	if pg.Limit <= 0 {
		pg.Limit = defaultPageLimit
	}
	if pg.Limit > maxPageLimit {
		pg.Limit = maxPageLimit
	}
	if pg.Offset < 0 {
		pg.Offset = 0
	}
	return pg
}

func invalidateViews(ctx context.Context, cache domain.Cache) {
	if cache == nil {
		return
	}
	_ = cache.Del(ctx, viewAreasKey)
	_ = cache.Del(ctx, viewCapacityKey)
}
