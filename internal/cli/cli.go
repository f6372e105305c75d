package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/grafo/pkg/buildinfo"
	"github.com/matzehuels/grafo/pkg/cache"
	"github.com/matzehuels/grafo/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "grafo"

	// defaultLogFile is the auxiliary log written next to the working directory.
	defaultLogFile = "grafo.log"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	// Logger writes human-readable records to the terminal.
	Logger *log.Logger

	// LogFile is the path of the auxiliary logfmt log; empty disables it.
	LogFile string

	// RunID tags every record of one invocation.
	RunID string

	fileLog *log.Logger
	logSink io.Closer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		LogFile: defaultLogFile,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "grafo generates random clustered graphs for Graphviz",
		Long: `grafo builds random graphs from a declarative configuration: groups of
nodes colored from a shared base color, linked densely inside each group and
sparsely across groups. The result is written as Graphviz DOT or rendered to
an image.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.RunID = uuid.NewString()
			installHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.LogFile, "log-file", c.LogFile, `auxiliary log file ("" disables it)`)

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.flushCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Run Log
// =============================================================================

// runLogger returns the logger that receives per-run debug records: the
// auxiliary log file when one is configured, otherwise the terminal logger.
// The file is opened in append mode on first use.
func (c *CLI) runLogger() *log.Logger {
	if c.fileLog != nil {
		return c.fileLog
	}
	if c.LogFile == "" {
		return c.Logger
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		c.Logger.Warn("cannot open log file", "path", c.LogFile, "err", err)
		return c.Logger
	}
	c.logSink = f
	c.fileLog = newFileLogger(f, c.RunID)
	return c.fileLog
}

// Close releases the auxiliary log file, if one was opened.
func (c *CLI) Close() error {
	if c.logSink == nil {
		return nil
	}
	err := c.logSink.Close()
	c.logSink, c.fileLog = nil, nil
	return err
}

// =============================================================================
// Cache Factory
// =============================================================================

// cacheOpts selects the render cache backend.
type cacheOpts struct {
	disabled bool
	url      string
	ttl      time.Duration
}

// openCache returns the configured cache. An unreachable local cache
// directory degrades to no caching; a bad Redis URL is an error.
func openCache(ctx context.Context, opts cacheOpts) (cache.Cache, error) {
	if opts.disabled {
		return cache.NewNullCache(), nil
	}
	if opts.url != "" {
		if err := errors.ValidateRedisURL(opts.url); err != nil {
			return nil, err
		}
		rc, err := cache.NewRedisCache(ctx, opts.url)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "connect to cache %s", opts.url)
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/grafo/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
