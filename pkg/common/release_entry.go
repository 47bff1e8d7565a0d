package common

// This type contains information about a single release from the manifest.
type ReleaseEntry struct {
	// The unique identifier of the release (eg. "1.20.1" or "23w10a").
	Id string `json:"id" yaml:"id"`
	// The channel the release belongs to.
	Channel ChannelType `json:"-" yaml:"-"`
	// The url to the detailed metadata of the release.
	Url string `json:"url" yaml:"url"`
	// The time the release was published, as given by the manifest.
	ReleaseTime string `json:"releaseTime" yaml:"releaseTime"`
	// The time the release metadata was last changed. Optional.
	Time string `json:"time,omitempty" yaml:"time,omitempty"`
	// The sha1 of the detailed metadata. Optional.
	Sha1 string `json:"sha1,omitempty" yaml:"sha1,omitempty"`
	// The compliance level of the release. Optional.
	ComplianceLevel int `json:"complianceLevel,omitempty" yaml:"complianceLevel,omitempty"`
}

// Gets the tag of the channel of the entry.
func (e ReleaseEntry) Type() string {
	return e.Channel.Tag()
}
