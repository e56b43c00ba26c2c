package song

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollReturnsTrimmedOutput(t *testing.T) {
	p := NewPoller("echo '  Artist - Track  '", time.Second)

	got, err := p.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Artist - Track", got)
}

func TestPollFailingCommand(t *testing.T) {
	p := NewPoller("false", time.Second)

	_, err := p.Poll(context.Background())
	assert.Error(t, err)
}

func TestPollTimeout(t *testing.T) {
	p := NewPoller("sleep 5", 100*time.Millisecond)

	start := time.Now()
	_, err := p.Poll(context.Background())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPollTimeoutLingeringChild(t *testing.T) {
	// The background child inherits the stdout pipe and outlives the
	// killed shell; the poll must still return near the deadline.
	p := NewPoller("sleep 5 & sleep 5", 100*time.Millisecond)

	start := time.Now()
	_, err := p.Poll(context.Background())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPollEmptyCommand(t *testing.T) {
	p := NewPoller("   ", time.Second)

	_, err := p.Poll(context.Background())
	assert.Error(t, err)
}
