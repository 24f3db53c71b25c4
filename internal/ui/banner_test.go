package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBanner_ClearsAfterTTL(t *testing.T) {
	b := newBanner(20 * time.Millisecond)
	b.Set("saved")
	assert.Equal(t, "saved", b.Message())

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, b.Message())
}

func TestBanner_NewMessageRestartsClock(t *testing.T) {
	b := newBanner(40 * time.Millisecond)
	b.Set("first")
	time.Sleep(25 * time.Millisecond)
	b.Set("second")
	time.Sleep(25 * time.Millisecond)
	// first message's timer was stopped, second is still within its ttl
	assert.Equal(t, "second", b.Message())

	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, b.Message())
}
