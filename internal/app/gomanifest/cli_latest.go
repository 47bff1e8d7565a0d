package gomanifest

import (
	"flag"
	"fmt"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gomanifest/pkg/output"
)

// Prints the most recent release, the latest of a channel or the newest of a version line.
func LatestCmd(args []string) error {
	flags := &commonFlags{}
	var channelTag string
	var line string
	flagSet := flag.NewFlagSet("latest", flag.ExitOnError)
	addCommonFlags(flagSet, flags)
	flagSet.StringVar(&channelTag, "channel", "", "The channel to get the latest entry of (release, snapshot, old_beta, old_alpha)")
	flagSet.StringVar(&line, "line", "", "A version line like '1.20' to get the newest release of")
	flagSet.Usage = func() { printCmdUsage(flagSet, "latest", "") }
	flagSet.Parse(args)

	if channelTag != "" && line != "" {
		return fmt.Errorf("the flags 'channel' and 'line' cannot be combined")
	}

	logger, cfg, err := flags.prepare()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(logger, cfg)
	if err != nil {
		return err
	}

	entry := catalog.GetMostRecent()
	switch {
	case channelTag != "":
		channel, err := common.ParseChannelType(channelTag)
		if err != nil {
			return err
		}
		var ok bool
		if entry, ok = catalog.LatestOf(channel); !ok {
			return fmt.Errorf("%w: channel '%s' has no entries", common.ErrEntryNotFound, channelTag)
		}
	case line != "":
		versionRegex, err := cfg.GetVersioningRegex()
		if err != nil {
			return err
		}
		if entry, err = catalog.FindNewestInLine(line, versionRegex); err != nil {
			return err
		}
	}
	return output.Render(stdout, entry, cfg.Output)
}
