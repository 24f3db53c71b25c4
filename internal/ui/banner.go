package ui

import (
	"sync"
	"time"
)

const successTTL = 3 * time.Second

// banner holds a transient message that clears itself after ttl.
// Error text is not a banner: it persists until the next operation
// overwrites it, so the views keep it as a plain field.
type banner struct {
	mu    sync.Mutex
	msg   string
	ttl   time.Duration
	timer *time.Timer
}

func newBanner(ttl time.Duration) *banner {
	return &banner{ttl: ttl}
}

func (b *banner) Set(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.msg = msg
	b.timer = time.AfterFunc(b.ttl, func() {
		b.mu.Lock()
		b.msg = ""
		b.mu.Unlock()
	})
}

func (b *banner) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.msg
}
