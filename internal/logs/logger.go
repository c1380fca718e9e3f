package logs

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	prefix  = "[opennotes] "
	logName = "debug.log"
)

var (
	Logger  *log.Logger
	logFile *os.File
	mu      sync.Mutex
)

// Until Initialize is called, diagnostics go to stderr.
func init() {
	Logger = log.New(os.Stderr, prefix, log.LstdFlags|log.Lshortfile)
}

// Initialize redirects the logger to debug.log inside logDir.
// The TUI owns the terminal, so anything written to stderr while it runs
// would be painted over.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}

	logPath := filepath.Join(logDir, logName)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger.Printf("Failed to open log file at %s: %v", logPath, err)
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = log.New(f, prefix, log.LstdFlags|log.Lshortfile)

	Logger.Printf("Logger initialized at: %s", logPath)

	return nil
}

// Close closes the log file and falls back to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	Logger = log.New(os.Stderr, prefix, log.LstdFlags|log.Lshortfile)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
