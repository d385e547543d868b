// Package cmd implements the CLI application to explore Monte Carlo
// investment simulations.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose enables progress logging on stderr.
var Verbose = flag.Bool("v", false, "enable verbose logging")

var known = map[string]bool{}

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, builtin := range []subcommands.Command{
		subcommands.HelpCommand(),
		subcommands.FlagsCommand(),
		subcommands.CommandsCommand(),
	} {
		c.Register(builtin, "")
		known[builtin.Name()] = true
	}

	register(c, &runCmd{}, "simulation")
	register(c, &compareCmd{}, "simulation")
	register(c, &chartCmd{}, "simulation")

	register(c, &presetCmd{}, "scenarios")
	register(c, &wizardCmd{}, "scenarios")

	register(c, &topicCmd{}, "help")
	register(c, &assistCmd{}, "help")
}

func register(c *subcommands.Commander, cmd subcommands.Command, group string) {
	c.Register(cmd, group)
	known[cmd.Name()] = true
}

// IsKnown reports whether name is a built-in subcommand, as opposed to
// a candidate mcs-<name> extension.
func IsKnown(name string) bool { return known[name] }

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(source)
		return
	}
	fmt.Print(out)
}
