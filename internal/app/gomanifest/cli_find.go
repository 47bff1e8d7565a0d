package gomanifest

import (
	"flag"
	"fmt"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gomanifest/pkg/output"
)

// Looks up a release by its identifier.
func FindCmd(args []string) error {
	flags := &commonFlags{}
	var strict bool
	flagSet := flag.NewFlagSet("find", flag.ExitOnError)
	addCommonFlags(flagSet, flags)
	flagSet.BoolVar(&strict, "strict", false, "Fail instead of falling back to the most recent entry")
	flagSet.Usage = func() { printCmdUsage(flagSet, "find", "<id>") }
	flagSet.Parse(args)

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return fmt.Errorf("exactly one identifier is needed")
	}
	id := flagSet.Arg(0)

	logger, cfg, err := flags.prepare()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(logger, cfg)
	if err != nil {
		return err
	}

	var entry common.ReleaseEntry
	if strict {
		var found bool
		if entry, found = catalog.FindStrict(id); !found {
			return fmt.Errorf("%w: '%s'", common.ErrEntryNotFound, id)
		}
	} else {
		entry = catalog.FindByIdentifier(id)
		if entry.Id != id {
			logger.Warn(fmt.Sprintf("Entry '%s' not found, using the most recent entry '%s'", id, entry.Id))
		}
	}
	return output.Render(stdout, entry, cfg.Output)
}
