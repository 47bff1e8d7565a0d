package gomanifest

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gomanifest/pkg/config"
	"github.com/roemer/gomanifest/pkg/datasources"
	"github.com/roemer/gomanifest/pkg/logging"
	"github.com/roemer/gomanifest/pkg/manifest"
)

// The streams used by the commands. Replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Flags that all commands share.
type commonFlags struct {
	verbose    bool
	configFile string
	output     string
}

func addCommonFlags(flagSet *flag.FlagSet, flags *commonFlags) {
	flagSet.BoolVar(&flags.verbose, "verbose", false, "The flag to set in order to get verbose output")
	flagSet.BoolVar(&flags.verbose, "v", false, "Alias for -verbose")
	flagSet.StringVar(&flags.configFile, "config", "", "The path to the config file to read. Uses the defaults if empty")
	flagSet.StringVar(&flags.output, "output", "", "Overrides the output format (text, json or yaml)")
}

// Creates the logger and loads and validates the config.
func (flags *commonFlags) prepare() (*slog.Logger, *config.ManifestConfig, error) {
	logger := logging.NewCliLogger(stderr, flags.verbose)
	logger.Debug(fmt.Sprintf("Loading config '%s'", flags.configFile))
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, nil, err
	}
	if flags.output != "" {
		cfg.Output = common.OutputFormat(flags.output)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return logger, cfg, nil
}

// Downloads the manifest and builds the catalog.
func loadCatalog(logger *slog.Logger, cfg *config.ManifestConfig) (*manifest.Catalog, error) {
	ds := datasources.NewPistonManifestDatasource(cfg.ToDatasourceSettings(logger))
	return ds.GetCatalog(context.Background())
}

// Prints the help for a command
func printCmdUsage(flagSet *flag.FlagSet, commandName, nonFlagArgs string) {
	fmt.Fprintln(stderr, "Usage:")
	fmt.Fprintf(stderr, "  gomanifest %s [flags]", commandName)
	if nonFlagArgs != "" {
		fmt.Fprint(stderr, " "+nonFlagArgs)
	}
	fmt.Fprintln(stderr, "")

	fmt.Fprintln(stderr, "")
	fmt.Fprintln(stderr, "Flags:")
	flagSet.SetOutput(stderr)
	flagSet.PrintDefaults()
}
