package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"opennotes/internal/notes"
	"opennotes/internal/render"
)

func runList(args []string, store *notes.Store) int {
	if err := store.Ensure(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	names, err := store.List()
	if err != nil {
		fmt.Fprintf(stderr, "Error listing notes: %v\n", err)
		return 1
	}

	if len(names) == 0 {
		fmt.Fprintln(stdout, "No notes found.")
		return 0
	}

	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return 0
}

func runShow(args []string, store *notes.Store) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asHTML := fs.Bool("html", false, "Render the note as HTML")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: note filename required")
		fmt.Fprintln(stderr, "Usage: opennotes show [--html] <file>")
		return 1
	}

	content, err := store.Read(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *asHTML {
		content, err = render.HTML(content)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	fmt.Fprint(stdout, content)
	return 0
}

func runAdd(args []string, store *notes.Store) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Error: note title required")
		fmt.Fprintln(stderr, "Usage: opennotes add <title> [body...]")
		return 1
	}

	title := args[0]
	if title == "" {
		fmt.Fprintf(stderr, "Error: %v\n", notes.ErrEmptyTitle)
		return 1
	}

	var body string
	if len(args) > 1 {
		body = strings.Join(args[1:], " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading body: %v\n", err)
			return 1
		}
		body = string(data)
	}

	if err := store.Ensure(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	filename, err := store.Write(title, body)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Saved: %s\n", filename)
	return 0
}

func runDelete(args []string, store *notes.Store) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Error: note filename required")
		fmt.Fprintln(stderr, "Usage: opennotes delete <file>")
		return 1
	}

	if err := store.Delete(args[0]); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Deleted: %s\n", args[0])
	return 0
}
