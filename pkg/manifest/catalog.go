package manifest

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/samber/lo"
)

// The classified, read-only view over all releases of one manifest document.
type Catalog struct {
	byChannel  map[common.ChannelType][]common.ReleaseEntry
	mostRecent common.ReleaseEntry
	// Identifiers from the optional "latest" block of the manifest.
	latestIds map[common.ChannelType]string
	// Keys of the "latest" block that could not be used.
	ignoredLatestKeys []string
}

// Parses the raw manifest json and builds the catalog from it.
func Parse(data []byte) (*Catalog, error) {
	var document map[string]interface{}
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrMalformedDocument, err)
	}
	return NewCatalog(document)
}

// Builds the catalog from a decoded manifest document.
// The first record in the "versions" list is the most recent one.
func NewCatalog(document map[string]interface{}) (*Catalog, error) {
	rawVersions, ok := document["versions"]
	if !ok {
		return nil, fmt.Errorf("%w: missing 'versions' list", common.ErrMalformedDocument)
	}
	records, ok := rawVersions.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: 'versions' is not a list", common.ErrMalformedDocument)
	}
	if len(records) == 0 {
		return nil, common.ErrEmptyCatalog
	}

	catalog := &Catalog{
		byChannel: map[common.ChannelType][]common.ReleaseEntry{},
		latestIds: map[common.ChannelType]string{},
	}
	for index, rawRecord := range records {
		record, ok := rawRecord.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: record %d is not an object", common.ErrMalformedEntry, index)
		}
		entry, err := parseEntry(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", index, err)
		}
		if index == 0 {
			catalog.mostRecent = entry
		}
		catalog.byChannel[entry.Channel] = append(catalog.byChannel[entry.Channel], entry)
	}

	catalog.readLatestIds(document)
	return catalog, nil
}

// Gets the entry that was first in the manifest.
func (c *Catalog) GetMostRecent() common.ReleaseEntry {
	return c.mostRecent
}

// Searches all channels for the given identifier. Falls back to the most recent entry if it was
// not found, so callers that need to know must compare the identifier of the result.
func (c *Catalog) FindByIdentifier(id string) common.ReleaseEntry {
	if entry, found := c.FindStrict(id); found {
		return entry
	}
	return c.mostRecent
}

// Searches all channels for the given identifier, in the order release, snapshot, beta, alpha.
func (c *Catalog) FindStrict(id string) (common.ReleaseEntry, bool) {
	for _, channel := range common.AllChannels {
		if entry, found := lo.Find(c.byChannel[channel], func(e common.ReleaseEntry) bool { return e.Id == id }); found {
			return entry, true
		}
	}
	return common.ReleaseEntry{}, false
}

// Gets the entries of the channel in manifest order. Never nil.
func (c *Catalog) ListChannel(channel common.ChannelType) []common.ReleaseEntry {
	entries := c.byChannel[channel]
	if entries == nil {
		return []common.ReleaseEntry{}
	}
	return slices.Clone(entries)
}

// Gets the newest entry of the given channel. Uses the "latest" block of the manifest if it has
// one for the channel, the first entry of the channel otherwise.
func (c *Catalog) LatestOf(channel common.ChannelType) (common.ReleaseEntry, bool) {
	if id, ok := c.latestIds[channel]; ok {
		if entry, found := c.FindStrict(id); found && entry.Channel == channel {
			return entry, true
		}
	}
	entries := c.byChannel[channel]
	if len(entries) == 0 {
		return common.ReleaseEntry{}, false
	}
	return entries[0], true
}

// Gets the sorted keys of the "latest" block that were skipped while building the catalog.
func (c *Catalog) IgnoredLatestKeys() []string {
	return slices.Clone(c.ignoredLatestKeys)
}

// Gets the total number of entries over all channels.
func (c *Catalog) Count() int {
	return lo.SumBy(common.AllChannels, func(channel common.ChannelType) int {
		return len(c.byChannel[channel])
	})
}

// Gets the entries of the channel whose identifier matches one of the glob patterns.
func (c *Catalog) Filter(channel common.ChannelType, patterns ...string) ([]common.ReleaseEntry, error) {
	filtered := []common.ReleaseEntry{}
	for _, entry := range c.byChannel[channel] {
		isMatch, err := common.MatchesPattern(entry.Id, patterns...)
		if err != nil {
			return nil, fmt.Errorf("failed matching '%s': %w", entry.Id, err)
		}
		if isMatch {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

////////////////////////////////////////////////////////////
// Internal
////////////////////////////////////////////////////////////

func parseEntry(record map[string]interface{}) (common.ReleaseEntry, error) {
	id, err := requiredString(record, "id")
	if err != nil {
		return common.ReleaseEntry{}, err
	}
	tag, err := requiredString(record, "type")
	if err != nil {
		return common.ReleaseEntry{}, err
	}
	url, err := requiredString(record, "url")
	if err != nil {
		return common.ReleaseEntry{}, err
	}
	releaseTime, err := requiredString(record, "releaseTime")
	if err != nil {
		return common.ReleaseEntry{}, err
	}
	channel, err := common.ParseChannelType(tag)
	if err != nil {
		return common.ReleaseEntry{}, fmt.Errorf("entry '%s': %w", id, err)
	}

	entry := common.ReleaseEntry{
		Id:          id,
		Channel:     channel,
		Url:         url,
		ReleaseTime: releaseTime,
	}
	if entry.Time, err = optionalString(record, "time"); err != nil {
		return common.ReleaseEntry{}, err
	}
	if entry.Sha1, err = optionalString(record, "sha1"); err != nil {
		return common.ReleaseEntry{}, err
	}
	if rawLevel, ok := record["complianceLevel"]; ok {
		level, ok := rawLevel.(float64)
		if !ok {
			return common.ReleaseEntry{}, fmt.Errorf("%w: field 'complianceLevel' is not a number", common.ErrMalformedEntry)
		}
		entry.ComplianceLevel = int(level)
	}
	return entry, nil
}

func requiredString(record map[string]interface{}, field string) (string, error) {
	rawValue, ok := record[field]
	if !ok {
		return "", fmt.Errorf("%w: missing field '%s'", common.ErrMalformedEntry, field)
	}
	value, ok := rawValue.(string)
	if !ok {
		return "", fmt.Errorf("%w: field '%s' is not a string", common.ErrMalformedEntry, field)
	}
	return value, nil
}

func optionalString(record map[string]interface{}, field string) (string, error) {
	if _, ok := record[field]; !ok {
		return "", nil
	}
	return requiredString(record, field)
}

// Reads the optional "latest" block. Keys that are no channel tag and values that are no string are
// skipped and remembered, they never fail the construction.
func (c *Catalog) readLatestIds(document map[string]interface{}) {
	latest, ok := document["latest"].(map[string]interface{})
	if !ok {
		return
	}
	for tag, rawId := range latest {
		channel, err := common.ParseChannelType(tag)
		if err != nil {
			c.ignoredLatestKeys = append(c.ignoredLatestKeys, tag)
			continue
		}
		id, ok := rawId.(string)
		if !ok {
			c.ignoredLatestKeys = append(c.ignoredLatestKeys, tag)
			continue
		}
		c.latestIds[channel] = id
	}
	slices.Sort(c.ignoredLatestKeys)
}
