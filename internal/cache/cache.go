// Package cache is a JSON cache-aside layer in front of the directory and
// weekly availability reads.
package cache

import (
	"context"
	"fmt"
)

type Cache interface {
	// Get decodes the cached value into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

func StoreKey(storeID uint) string {
	return fmt.Sprintf("store:%d", storeID)
}

func StoreSlugKey(slug string) string {
	return "store:slug:" + slug
}

func WorkerSlotsKey(workerID uint) string {
	return fmt.Sprintf("worker:%d:slots", workerID)
}

// Noop is used when no Redis is configured.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error         { return nil }
func (Noop) Delete(context.Context, ...string) error        { return nil }
