package manifest

import (
	"testing"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/stretchr/testify/assert"
)

func TestFindNewestInLine(t *testing.T) {
	assert := assert.New(t)

	catalog, err := NewCatalog(document(
		record("1.20-pre1", "release"),
		record("1.20.2", "release"),
		record("1.20.1", "release"),
		record("1.20", "release"),
		record("1.19.4", "release"),
		record("1.21.5", "snapshot"),
	))
	assert.NoError(err)

	entry, err := catalog.FindNewestInLine("1.20", nil)
	assert.NoError(err)
	assert.Equal("1.20.2", entry.Id)

	entry, err = catalog.FindNewestInLine("1.19", nil)
	assert.NoError(err)
	assert.Equal("1.19.4", entry.Id)

	// Snapshots are not considered
	_, err = catalog.FindNewestInLine("1.21", nil)
	assert.ErrorIs(err, common.ErrEntryNotFound)

	_, err = catalog.FindNewestInLine("one.two", nil)
	assert.Error(err)
}
