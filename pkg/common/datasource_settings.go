package common

import (
	"log/slog"
	"time"
)

type DatasourceSettings struct {
	// The logger to use for the datasource.
	Logger *slog.Logger
	// The url of the manifest. The datasource default is used if empty.
	ManifestUrl string
	// The timeout for a single download. No timeout if zero.
	Timeout time.Duration
	// Host rules that might apply when using this datasource.
	HostRules []*HostRule
}
