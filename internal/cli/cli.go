package cli

import (
	"fmt"
	"io"
	"os"

	"opennotes/internal/notes"
)

// Swapped out in tests
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run executes a CLI command against the store and returns the exit code.
func Run(args []string, store *notes.Store) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "list", "ls", "l":
		return runList(cmdArgs, store)
	case "show", "cat":
		return runShow(cmdArgs, store)
	case "add", "a":
		return runAdd(cmdArgs, store)
	case "delete", "rm", "del":
		return runDelete(cmdArgs, store)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(stdout, `opennotes - plain-text notes in a folder

Usage: opennotes [flags] [command] [arguments]

Commands:
  list, ls       List note files
  show <file>    Print a note
                 opennotes show "Hello World.txt"
                 opennotes show --html "Hello World.txt"
  add <title> [body...]
                 Save a note; body is read from stdin when not given
  delete <file>  Delete a note
  help           Show this help message

Flags:
  -d, --dir <path>       Notes directory (default "notes")
      --ext <.ext>       Extension for new notes (default ".txt")
      --preview <mode>   TUI preview mode: plain, markdown

Running opennotes without a command launches the interactive TUI.`)
}
