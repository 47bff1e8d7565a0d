package common

import (
	"fmt"
)

// The type of a release channel. Only the four constants below exist.
type ChannelType int

const (
	CHANNEL_TYPE_RELEASE ChannelType = iota
	CHANNEL_TYPE_SNAPSHOT
	CHANNEL_TYPE_OLD_BETA
	CHANNEL_TYPE_OLD_ALPHA
)

// All channels in their fixed menu order.
var AllChannels = []ChannelType{
	CHANNEL_TYPE_RELEASE,
	CHANNEL_TYPE_SNAPSHOT,
	CHANNEL_TYPE_OLD_BETA,
	CHANNEL_TYPE_OLD_ALPHA,
}

var channelTags = map[ChannelType]string{
	CHANNEL_TYPE_RELEASE:   "release",
	CHANNEL_TYPE_SNAPSHOT:  "snapshot",
	CHANNEL_TYPE_OLD_BETA:  "old_beta",
	CHANNEL_TYPE_OLD_ALPHA: "old_alpha",
}

var channelLabels = map[ChannelType]string{
	CHANNEL_TYPE_RELEASE:   "Release",
	CHANNEL_TYPE_SNAPSHOT:  "Snapshot",
	CHANNEL_TYPE_OLD_BETA:  "Beta",
	CHANNEL_TYPE_OLD_ALPHA: "Alpha",
}

// Parses the tag used in the manifest into a channel.
func ParseChannelType(tag string) (ChannelType, error) {
	for _, channel := range AllChannels {
		if channelTags[channel] == tag {
			return channel, nil
		}
	}
	return -1, fmt.Errorf("%w: '%s'", ErrUnknownChannel, tag)
}

// Gets the channel at the given menu index.
func ChannelTypeFromIndex(index int) (ChannelType, bool) {
	if index < 0 || index >= len(AllChannels) {
		return -1, false
	}
	return AllChannels[index], true
}

// Checks if the channel is one of the known channels.
func (c ChannelType) IsValid() bool {
	_, ok := channelTags[c]
	return ok
}

// Gets the tag of the channel as it is used in the manifest.
func (c ChannelType) Tag() string {
	if tag, ok := channelTags[c]; ok {
		return tag
	}
	return fmt.Sprintf("unknown(%d)", int(c))
}

// Gets the human readable label of the channel.
func (c ChannelType) String() string {
	if label, ok := channelLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Unknown(%d)", int(c))
}

// Output formats for rendering a selected entry.
type OutputFormat string

const (
	OUTPUT_FORMAT_TEXT OutputFormat = "text"
	OUTPUT_FORMAT_JSON OutputFormat = "json"
	OUTPUT_FORMAT_YAML OutputFormat = "yaml"
)
