package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDestination_EmptyUntilSet(t *testing.T) {
	var dest Destination

	channel, ok := dest.Get()
	assert.False(t, ok)
	assert.Empty(t, channel)
}

func TestDestination_FollowsLatestSet(t *testing.T) {
	var dest Destination

	dest.Set("#canale")
	channel, ok := dest.Get()
	assert.True(t, ok)
	assert.Equal(t, "#canale", channel)

	dest.Set("#altro")
	channel, ok = dest.Get()
	assert.True(t, ok)
	assert.Equal(t, "#altro", channel)
}
