package pagecache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsStoredBody(t *testing.T) {
	c := New(time.Minute)
	c.Set("/", []byte("home"))

	body, ok := c.Get("/")
	require.True(t, ok)
	assert.Equal(t, []byte("home"), body)

	_, ok = c.Get("/missing")
	assert.False(t, ok)
}

func TestEntriesExpireAfterTTL(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("/", []byte("home"))

	_, ok := c.Get("/")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = c.Get("/")
	assert.False(t, ok)
}

func TestInvalidateDropsOnlyGivenPaths(t *testing.T) {
	c := New(time.Minute)
	c.Set("/", []byte("home"))
	c.Set("/team", []byte("team"))

	c.Invalidate("/")

	_, ok := c.Get("/")
	assert.False(t, ok)
	_, ok = c.Get("/team")
	assert.True(t, ok)
}

func TestInvalidatePrefix(t *testing.T) {
	c := New(time.Minute)
	c.Set("/project/1", []byte("a"))
	c.Set("/project/2", []byte("b"))
	c.Set("/projects", []byte("list"))

	c.InvalidatePrefix("/project/")

	_, ok := c.Get("/project/1")
	assert.False(t, ok)
	_, ok = c.Get("/project/2")
	assert.False(t, ok)
	_, ok = c.Get("/projects")
	assert.True(t, ok)
}

func TestFlushDropsEverything(t *testing.T) {
	c := New(time.Minute)
	c.Set("/", []byte("home"))
	c.Set("/team", []byte("team"))

	c.Flush()

	_, ok := c.Get("/")
	assert.False(t, ok)
	_, ok = c.Get("/team")
	assert.False(t, ok)
}
