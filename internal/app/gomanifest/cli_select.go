package gomanifest

import (
	"flag"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gomanifest/pkg/output"
	"github.com/roemer/gomanifest/pkg/selector"
)

// Interactively selects a release and prints it.
func SelectCmd(args []string) error {
	flags := &commonFlags{}
	flagSet := flag.NewFlagSet("select", flag.ExitOnError)
	addCommonFlags(flagSet, flags)
	flagSet.Usage = func() { printCmdUsage(flagSet, "select", "") }
	flagSet.Parse(args)

	logger, cfg, err := flags.prepare()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(logger, cfg)
	if err != nil {
		return err
	}

	entry, err := selector.New(catalog, common.NewLineReader(stdin), stdout, logger).Run()
	if err != nil {
		return err
	}
	return output.Render(stdout, entry, cfg.Output)
}
