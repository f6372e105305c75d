package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/grafo/pkg/cache"
	"github.com/matzehuels/grafo/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached renders",
		Long: `Remove all cached renders from the local cache directory, or from a
shared Redis cache when --cache-url is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url != "" {
				return clearRedisCache(cmd, url)
			}
			return clearFileCache()
		},
	}

	cmd.Flags().StringVar(&url, "cache-url", "", "Redis URL of a shared render cache")
	return cmd
}

func clearFileCache() error {
	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("get cache dir: %w", err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return err
	}
	defer fc.Close()

	count, err := fc.Clear()
	if err != nil {
		return err
	}
	if count == 0 {
		printInfo("Cache is empty")
		return nil
	}
	printSuccess("Cleared %d cached entries", count)
	printDetail("Directory: %s", dir)
	return nil
}

func clearRedisCache(cmd *cobra.Command, url string) error {
	if err := errors.ValidateRedisURL(url); err != nil {
		return err
	}
	rc, err := cache.NewRedisCache(cmd.Context(), url)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "connect to cache %s", url)
	}
	defer rc.Close()

	count, err := rc.Clear(cmd.Context())
	if err != nil {
		return err
	}
	printSuccess("Cleared %d cached entries", count)
	printDetail("Redis: %s", url)
	return nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
