package gomanifest

import (
	"flag"
	"fmt"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gomanifest/pkg/output"
)

// Lists the entries of a channel.
func ListCmd(args []string) error {
	flags := &commonFlags{}
	var channelTag string
	var matchPattern string
	flagSet := flag.NewFlagSet("list", flag.ExitOnError)
	addCommonFlags(flagSet, flags)
	flagSet.StringVar(&channelTag, "channel", common.CHANNEL_TYPE_RELEASE.Tag(), "The channel to list (release, snapshot, old_beta, old_alpha)")
	flagSet.StringVar(&matchPattern, "match", "", "A glob pattern the identifiers need to match, eg. '1.20*'")
	flagSet.Usage = func() { printCmdUsage(flagSet, "list", "") }
	flagSet.Parse(args)

	channel, err := common.ParseChannelType(channelTag)
	if err != nil {
		return err
	}

	logger, cfg, err := flags.prepare()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(logger, cfg)
	if err != nil {
		return err
	}

	entries := catalog.ListChannel(channel)
	if matchPattern != "" {
		if entries, err = catalog.Filter(channel, matchPattern); err != nil {
			return err
		}
	}
	logger.Info(fmt.Sprintf("Found %d entries in channel '%s'", len(entries), channel.Tag()))
	return output.RenderList(stdout, entries, cfg.Output)
}
