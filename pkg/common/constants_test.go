package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChannelType(t *testing.T) {
	assert := assert.New(t)

	for _, channel := range AllChannels {
		parsed, err := ParseChannelType(channel.Tag())
		assert.NoError(err)
		assert.Equal(channel, parsed)
	}

	_, err := ParseChannelType("unknown_type")
	assert.Error(err)
	assert.True(errors.Is(err, ErrUnknownChannel))

	_, err = ParseChannelType("Release")
	assert.ErrorIs(err, ErrUnknownChannel)
}

func TestChannelTypeFromIndex(t *testing.T) {
	assert := assert.New(t)

	channel, ok := ChannelTypeFromIndex(0)
	assert.True(ok)
	assert.Equal(CHANNEL_TYPE_RELEASE, channel)
	channel, ok = ChannelTypeFromIndex(3)
	assert.True(ok)
	assert.Equal(CHANNEL_TYPE_OLD_ALPHA, channel)

	_, ok = ChannelTypeFromIndex(4)
	assert.False(ok)
	_, ok = ChannelTypeFromIndex(-1)
	assert.False(ok)
}

func TestChannelTypeLabels(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Release", CHANNEL_TYPE_RELEASE.String())
	assert.Equal("Snapshot", CHANNEL_TYPE_SNAPSHOT.String())
	assert.Equal("Beta", CHANNEL_TYPE_OLD_BETA.String())
	assert.Equal("Alpha", CHANNEL_TYPE_OLD_ALPHA.String())
	assert.Equal("old_beta", CHANNEL_TYPE_OLD_BETA.Tag())

	invalid := ChannelType(7)
	assert.False(invalid.IsValid())
	assert.Equal("unknown(7)", invalid.Tag())
}
