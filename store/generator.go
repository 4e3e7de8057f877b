package store

import (
	"strconv"
	"sync"
	"time"
)

// idGenerator issues time-based ids such as offer_1714060800000. Calls that
// land on the same millisecond bump past the last issued timestamp, so ids
// stay unique for the lifetime of the process.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return prefix + strconv.FormatInt(now, 10)
}
