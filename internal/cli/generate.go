package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/grafo/pkg/cache"
	"github.com/matzehuels/grafo/pkg/errors"
	"github.com/matzehuels/grafo/pkg/pipeline"
	"github.com/matzehuels/grafo/pkg/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output   string // output file; stdout when empty
	format   string // gv, svg, png, jpg or json
	seed     uint64 // random seed
	seedSet  bool   // whether --seed was given
	layout   string // Graphviz layout engine
	renderer string // embedded or command
	binary   string // executable override for the command renderer
	cache    cacheOpts
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		format:   pipeline.DefaultFormat,
		layout:   render.DefaultLayout,
		renderer: pipeline.RendererEmbedded,
		cache:    cacheOpts{ttl: pipeline.DefaultCacheTTL},
	}

	cmd := &cobra.Command{
		Use:   "generate <config>",
		Short: "Generate a random graph from a configuration file",
		Long: `Generate a random clustered graph from a TOML or YAML configuration.

DOT (gv) and JSON are written to stdout unless --output is given. Image
formats are rendered with Graphviz and require --output.`,
		Example: `  grafo config example > graph.toml
  grafo generate graph.toml > graph.gv
  grafo generate graph.toml -f png -o graph.png --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(render.Formats, ", "))
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible graphs (default random)")
	cmd.Flags().StringVar(&opts.layout, "layout", opts.layout, "layout engine: "+strings.Join(render.Layouts, ", "))
	cmd.Flags().StringVar(&opts.renderer, "renderer", opts.renderer, "renderer: embedded (built-in Graphviz) or command (Graphviz on PATH)")
	cmd.Flags().StringVar(&opts.binary, "graphviz-bin", "", "Graphviz executable for --renderer command (default: the layout name)")
	cmd.Flags().BoolVar(&opts.cache.disabled, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&opts.cache.url, "cache-url", "", "Redis URL for a shared render cache (redis://host:6379/0)")
	cmd.Flags().DurationVar(&opts.cache.ttl, "cache-ttl", opts.cache.ttl, "how long rendered images stay cached (0 keeps them forever)")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(render.Formats, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("layout", cobra.FixedCompletions(render.Layouts, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("renderer", cobra.FixedCompletions(pipeline.Renderers, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (o *generateOpts) validate() error {
	if err := o.pipelineOptions("").ValidateEncode(); err != nil {
		return err
	}
	if o.output != "" {
		if err := errors.ValidateOutputPath(o.output); err != nil {
			return err
		}
	}
	if render.IsImage(o.format) && o.output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "%s output requires --output", o.format)
	}
	if o.cache.url != "" {
		if err := errors.ValidateRedisURL(o.cache.url); err != nil {
			return err
		}
	}
	return nil
}

func (o *generateOpts) pipelineOptions(cfgPath string) *pipeline.Options {
	return &pipeline.Options{
		ConfigPath: cfgPath,
		Seed:       o.seed,
		Format:     o.format,
		Layout:     o.layout,
		Renderer:   o.renderer,
		Binary:     o.binary,
		CacheTTL:   o.cache.ttl,
	}
}

func (c *CLI) runGenerate(ctx context.Context, cfgPath string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	runLog := c.runLogger()

	if !opts.seedSet {
		opts.seed = rand.Uint64()
	}
	logger.Debug("generating", "config", cfgPath, "seed", opts.seed, "run", c.RunID)
	runLog.Info("run started", "config", cfgPath, "seed", opts.seed, "format", opts.format)

	store, err := c.storeFor(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	var spinner *Spinner
	if render.IsImage(opts.format) {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s with %s...", opts.format, opts.layout))
		spinner.Start()
	}
	prog := newProgress(logger)
	res, err := pipeline.NewRunner(store, runLog).Execute(ctx, *opts.pipelineOptions(cfgPath))
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		runLog.Error("run failed", "err", err)
		return err
	}
	prog.done(fmt.Sprintf("Generated %d nodes, %d edges", res.Stats.NodeCount, res.Stats.EdgeCount))

	if err := writeOutput(opts.output, res.Artifact); err != nil {
		return err
	}
	runLog.Info("run finished",
		"nodes", res.Stats.NodeCount, "edges", res.Stats.EdgeCount,
		"skipped", res.Generation.Skipped, "output", outputName(opts.output))

	// Status lines would corrupt a document written to stdout.
	if opts.output == "" {
		return nil
	}
	printSuccess("Generated %s", opts.format)
	printFile(opts.output)
	printStats(res.Generation, res.Stats.EdgeCount, res.CacheInfo.RenderHit)
	printDetail("seed %d", opts.seed)
	if res.Generation.Skipped > 0 {
		printWarning("%d links skipped: no other node or group to link to", res.Generation.Skipped)
	}
	if opts.format == render.FormatGV {
		png := strings.TrimSuffix(opts.output, filepath.Ext(opts.output)) + ".png"
		printNextStep("Render it", fmt.Sprintf("%s -Tpng %s -o %s", opts.layout, opts.output, png))
	}
	return nil
}

// storeFor opens the render cache for image formats. DOT and JSON never
// touch it.
func (c *CLI) storeFor(ctx context.Context, opts *generateOpts) (cache.Cache, error) {
	if !render.IsImage(opts.format) {
		return openCache(ctx, cacheOpts{disabled: true})
	}
	return openCache(ctx, opts.cache)
}

// writeOutput writes data to path, or to stdout when path is empty. Files
// are written only after the whole document exists, so a failed run never
// leaves a truncated file behind.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
