// Package cmd implements the lottie CLI commands.
//
// A root command dispatches to subcommands (inspect, play) registered from
// init functions.
package cmd

import (
	"fmt"
	"io"

	"github.com/go-drift/drift-lottie/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string, out io.Writer) error
}

var rootCmd = &Command{
	Name:  "lottie",
	Short: "Inspect and play Lottie animations",
	Long: `lottie loads Lottie JSON files and YAML manifests with the drift-lottie
default engine.

Use "lottie <command> --help" for more information about a command.`,
	Usage: "lottie <command> [flags]",
}

var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with args, writing command output to out.
func Execute(args []string, out io.Writer) error {
	var filtered []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp(out)
				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version", "version":
			if len(filtered) == 0 {
				fmt.Fprintf(out, "lottie version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filtered = append(filtered, arg)
		case "--debug":
			logger, err := logging.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			prev := logging.SetLogger(logger)
			defer func() {
				_ = logger.Sync()
				logging.SetLogger(prev)
			}()
		default:
			filtered = append(filtered, arg)
		}
	}

	if len(filtered) == 0 {
		printHelp(out)
		return nil
	}

	name := filtered[0]
	cmd, ok := commands[name]
	if !ok {
		printHelp(out)
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := filtered[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(out, cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs, out)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, rootCmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, sub := range ordered {
		fmt.Fprintf(out, "  %-10s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  -h, --help      Show help for a command")
	fmt.Fprintln(out, "  -v, --version   Show version information")
	fmt.Fprintln(out, "  --debug         Log engine and widget activity to stderr")
}

func printCommandHelp(out io.Writer, cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
}
