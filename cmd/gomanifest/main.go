package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/roemer/gomanifest/internal/app/gomanifest"
)

// Holds information about a CLI command that can be executed
type Command struct {
	Name string
	Help string
	Run  func(args []string) error
}

// The list of CLI commands
var commands []Command

func init() {
	commands = []Command{
		{Name: "help", Help: "Prints this help or the help of a command", Run: helpCmd},
		{Name: "select", Help: "Interactively selects a release", Run: gomanifest.SelectCmd},
		{Name: "latest", Help: "Prints the most recent release", Run: gomanifest.LatestCmd},
		{Name: "find", Help: "Finds a release by its identifier", Run: gomanifest.FindCmd},
		{Name: "list", Help: "Lists the releases of a channel", Run: gomanifest.ListCmd},
	}
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	// A command need to be passed
	if len(flag.Args()) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	runCommand(flag.Arg(0), flag.Args()[1:])
}

// Prints the base usage
func printUsage() {
	fmt.Fprintf(os.Stderr, "gomanifest v%s", gomanifest.Version)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  gomanifest <command> [command flags]")
	fmt.Fprintln(os.Stderr, "")

	fmt.Fprintln(os.Stderr, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", cmd.Name, cmd.Help)
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Run `gomanifest <command> -h` to get help for a specific command\n\n")
}

func helpCmd(args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}
	runCommand(args[0], []string{"-h"})
	return nil
}

// Tries to run the given command
func runCommand(name string, args []string) {
	cmdIdx := slices.IndexFunc(commands, func(cmd Command) bool {
		return cmd.Name == name
	})

	if cmdIdx < 0 {
		fmt.Fprintf(os.Stderr, "command \"%s\" not found\n\n", name)
		flag.Usage()
		os.Exit(1)
	}

	if err := commands[cmdIdx].Run(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
