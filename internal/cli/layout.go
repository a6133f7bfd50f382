package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphscape/graphscape/pkg/cache"
	"github.com/graphscape/graphscape/pkg/graph"
	"github.com/graphscape/graphscape/pkg/layout"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	algorithm    string // built-in algorithm name
	iterations   int    // simulation steps / refinement rounds
	gravity      float64
	scalingRatio float64
	seed         uint64
	presetFile   string // TOML parameter preset
	output       string // output file path (stdout if empty)
	jsonOutput   string // optional layout JSON export path
	noCache      bool   // bypass the result cache
}

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	defaults := layout.Defaults()
	opts := layoutOpts{
		algorithm:    layout.NameForceDirected,
		iterations:   defaults.Iterations,
		gravity:      defaults.Gravity,
		scalingRatio: defaults.ScalingRatio,
		seed:         defaults.Seed,
	}

	cmd := &cobra.Command{
		Use:   "layout [graph.txt]",
		Short: "Compute node positions for a graph",
		Long: `Compute node positions for a graph in interchange text form.

The input is a single line of the form

  nodes:<x,y;x,y;...>edges:<s-t,s-t,...>

read from the given file, or from stdin when the argument is omitted or "-".
The output uses the same grammar with the positions replaced by the computed
layout, so invocations compose:

  graphscape generate -n 30 -e 45 | graphscape layout -a stress-majorization

Run 'graphscape algorithms' for the list of built-in algorithms. Parameters
can also be loaded from a TOML preset file with --preset; explicit flags win
over preset values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return c.runLayout(cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm,
		"layout algorithm: "+strings.Join(layout.Names(), ", "))
	cmd.Flags().IntVar(&opts.iterations, "iterations", opts.iterations, "iteration count (0 keeps input positions)")
	cmd.Flags().Float64Var(&opts.gravity, "gravity", opts.gravity, "gravity strength for force-based algorithms")
	cmd.Flags().Float64Var(&opts.scalingRatio, "scaling-ratio", opts.scalingRatio, "repulsion scaling for force-directed")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().StringVar(&opts.presetFile, "preset", "", "TOML preset file with algorithm and parameters")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.jsonOutput, "json", "", "also write the layout as JSON to this file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable result caching")

	return cmd
}

// runLayout reads the graph text, resolves parameters, runs the engine, and
// writes the result.
func (c *CLI) runLayout(cmd *cobra.Command, input string, opts *layoutOpts) error {
	ctx := cmd.Context()

	text, err := readInput(input)
	if err != nil {
		return fmt.Errorf("read graph %s: %w", input, err)
	}

	algorithm, params, err := resolveParams(cmd, opts)
	if err != nil {
		return err
	}

	c.Logger.Debugf("Running %s with %+v", algorithm, params)

	store := newCache(opts.noCache)
	defer store.Close()
	key := cache.Key(text, algorithm, params)

	prog := newProgress(c.Logger)
	var result string
	cacheHit := false
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		result = string(data)
		cacheHit = true
	} else {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", algorithm))
		spinner.Start()

		result, err = layout.NewEngine().Run(text, algorithm, params)
		if err != nil {
			spinner.StopWithError("Layout failed")
			return err
		}
		spinner.Stop()

		if err := store.Set(ctx, key, []byte(result), defaultCacheTTL); err != nil {
			c.Logger.Debugf("Cache write failed: %v", err)
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	g, err := graph.Parse(result)
	if err != nil {
		return fmt.Errorf("re-read layout result: %w", err)
	}
	prog.done(fmt.Sprintf("Placed %d nodes", g.NodeCount()))

	if err := writeOutput(result+"\n", opts.output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if opts.jsonOutput != "" {
		if err := graph.WriteLayoutFile(graph.Export(g, nil, algorithm), opts.jsonOutput); err != nil {
			return fmt.Errorf("write layout JSON %s: %w", opts.jsonOutput, err)
		}
	}

	if opts.output != "" {
		printSuccess("Layout complete")
		printFile(opts.output)
		if opts.jsonOutput != "" {
			printFile(opts.jsonOutput)
		}
		printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	}

	return nil
}

// resolveParams merges defaults, the optional preset, and explicit flags,
// in that order of precedence.
func resolveParams(cmd *cobra.Command, opts *layoutOpts) (string, layout.Params, error) {
	algorithm := opts.algorithm
	params := layout.Defaults()

	if opts.presetFile != "" {
		p, err := loadPreset(opts.presetFile)
		if err != nil {
			return "", layout.Params{}, err
		}
		if name, ok := p.apply(&params); ok && !cmd.Flags().Changed("algorithm") {
			algorithm = name
		}
	}

	flags := cmd.Flags()
	if flags.Changed("iterations") {
		params.Iterations = opts.iterations
	}
	if flags.Changed("gravity") {
		params.Gravity = opts.gravity
	}
	if flags.Changed("scaling-ratio") {
		params.ScalingRatio = opts.scalingRatio
	}
	if flags.Changed("seed") {
		params.Seed = opts.seed
	}

	return algorithm, params, nil
}

// readInput returns the trimmed graph text from path, or from stdin for "-".
func readInput(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeOutput writes text to path, or stdout when path is empty.
func writeOutput(text, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.WriteString(out, text)
	return err
}
