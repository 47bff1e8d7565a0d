package common

import (
	"context"
)

// This is the interface that needs to be implemented by all manifest datasources.
type IDatasource interface {
	// Gets the url the manifest is downloaded from.
	ManifestUrl() string
	// Downloads the raw manifest document.
	GetManifest(ctx context.Context) ([]byte, error)
}
