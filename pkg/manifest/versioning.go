package manifest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gover"
)

// The versioning used for release identifiers like "1.20" or "1.20.1".
const DefaultVersioning = `^(?P<d1>\d+)\.(?P<d2>\d+)(?:\.(?P<d3>\d+))?$`

type versionedEntry struct {
	entry   common.ReleaseEntry
	version *gover.Version
}

// Gets the highest stable release within the given version line (eg. "1.20" or "1").
// Releases that do not match the versioning are ignored.
func (c *Catalog) FindNewestInLine(line string, versioning *regexp.Regexp) (common.ReleaseEntry, error) {
	refVersion, err := parseVersionLine(line)
	if err != nil {
		return common.ReleaseEntry{}, err
	}
	if versioning == nil {
		versioning = regexp.MustCompile(DefaultVersioning)
	}

	candidates := []*versionedEntry{}
	for _, entry := range c.byChannel[common.CHANNEL_TYPE_RELEASE] {
		version, err := gover.ParseVersionFromRegex(entry.Id, versioning)
		if err != nil {
			continue
		}
		candidates = append(candidates, &versionedEntry{entry: entry, version: version})
	}

	newest := gover.FindMaxGeneric(candidates, func(x *versionedEntry) *gover.Version { return x.version }, refVersion, true)
	if newest == nil {
		return common.ReleaseEntry{}, fmt.Errorf("%w: no release in line '%s'", common.ErrEntryNotFound, line)
	}
	return newest.entry, nil
}

func parseVersionLine(line string) (*gover.Version, error) {
	parts := strings.Split(strings.TrimSpace(line), ".")
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		number, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version line '%s'", line)
		}
		numbers = append(numbers, number)
	}
	switch len(numbers) {
	case 1:
		return gover.ParseSimple(numbers[0]), nil
	case 2:
		return gover.ParseSimple(numbers[0], numbers[1]), nil
	case 3:
		return gover.ParseSimple(numbers[0], numbers[1], numbers[2]), nil
	}
	return nil, fmt.Errorf("invalid version line '%s'", line)
}
