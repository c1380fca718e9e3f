package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"opennotes/internal/cli"
	"opennotes/internal/config"
	"opennotes/internal/logs"
	"opennotes/internal/notes"
	"opennotes/internal/tui"
)

func main() {
	// A .env next to the binary may set OPENNOTES_DIR
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	// Parse CLI flags
	dirFlag := flag.String("dir", "", "Notes directory")
	flag.StringVar(dirFlag, "d", "", "Notes directory (shorthand)")
	extFlag := flag.String("ext", "", "Extension for new notes, e.g. .txt")
	previewFlag := flag.String("preview", "", "Preview mode: plain, markdown")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{
		NotesDir:  *dirFlag,
		Extension: *extFlag,
		Preview:   *previewFlag,
	})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	store := notes.NewStore(cfg.NotesDir, cfg.Extension)

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		os.Exit(cli.Run(args, store))
	}

	// The TUI takes over the terminal, so logs move to a file
	if configDir, err := config.ConfigDir(); err == nil {
		if err := logs.Initialize(configDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
		}
	}
	defer logs.Close()

	logs.Logger.Printf("Starting app in TUI mode, notes dir: %s", cfg.NotesDir)
	p := tea.NewProgram(tui.NewAppModel(cfg, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
