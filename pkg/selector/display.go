package selector

import (
	"fmt"

	"github.com/roemer/gomanifest/pkg/common"
)

// Gets the human readable label of an entry.
func Display(entry common.ReleaseEntry) (string, error) {
	switch entry.Channel {
	case common.CHANNEL_TYPE_RELEASE:
		return entry.Id, nil
	case common.CHANNEL_TYPE_SNAPSHOT:
		return "Snapshot " + entry.Id, nil
	case common.CHANNEL_TYPE_OLD_BETA:
		return "Beta " + entry.Id, nil
	case common.CHANNEL_TYPE_OLD_ALPHA:
		return "Alpha " + entry.Id, nil
	}
	return "", fmt.Errorf("%w: %s", common.ErrUnknownChannel, entry.Channel.Tag())
}
