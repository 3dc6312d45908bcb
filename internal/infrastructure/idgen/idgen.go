// Package idgen provides identifier generators for tiles and split nodes.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/bnema/tessera/internal/domain/entity"
)

// UUID returns a generator of random version 4 UUIDs.
func UUID() entity.IDGenerator {
	return uuid.NewString
}

// Short returns a generator of the first 8 hex digits of a random UUID,
// short enough for terminal labels.
func Short() entity.IDGenerator {
	return func() string {
		return uuid.NewString()[:8]
	}
}

// Sequential returns a deterministic generator producing prefix1, prefix2...
func Sequential(prefix string) entity.IDGenerator {
	var n atomic.Uint64
	return func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	}
}
