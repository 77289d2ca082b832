package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/ispcli/internal/cli"
	"github.com/studiowebux/ispcli/internal/config"
	"github.com/studiowebux/ispcli/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ispcli [file]",
	Short: "ISP table editor and Base Choice Coverage test generator",
	Long: `ispcli edits Input Space Partitioning tables and derives Base Choice
Coverage test sets from them.

Run without arguments to start the TUI, or provide a snapshot (.json, .yaml)
to open it in the editor.

Examples:
  ispcli                               # Start with an empty table
  ispcli table.json                    # Open a snapshot in the editor
  ispcli sample -o table.json          # Write the demo table
  ispcli bcc table.json                # Print the test set as HTML
  ispcli bcc table.json -f json -q 'tests[?base]'
  ispcli skeleton table.yaml --style go
  ispcli --help                        # Show help`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),

	// main prints errors itself
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Settings and key bindings live under ~/.ispcli
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var file string
		if len(args) > 0 {
			file = args[0]
		}
		return tui.Run(file)
	},
}

var ispCmd = &cobra.Command{
	Use:   "isp <file>",
	Short: "Print the ISP table of a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ISP(cli.ISPOptions{
			Output: output(),
			File:   args[0],
			Format: flagISPFormat,
		})
	},
}

var bccCmd = &cobra.Command{
	Use:   "bcc <file>",
	Short: "Print the Base Choice Coverage test set of a snapshot",
	Long: `Print the Base Choice Coverage test set of a snapshot.

Oracles and test names can be supplied as JSON or YAML mappings keyed by test
name (T1, T2, ...). A JMESPath --query can be applied to the json output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.BCC(cli.BCCOptions{
			Output:      output(),
			File:        args[0],
			Format:      flagBCCFormat,
			OraclesFile: flagOracles,
			NamesFile:   flagNames,
			Query:       flagQuery,
		})
	},
}

var skeletonCmd = &cobra.Command{
	Use:   "skeleton <file>",
	Short: "Print test stubs for the test set of a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Skeleton(cli.SkeletonOptions{
			Output:    output(),
			File:      args[0],
			Style:     flagStyle,
			NamesFile: flagNames,
		})
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a snapshot between JSON and YAML",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Convert(cli.ConvertOptions{
			In:  args[0],
			Out: args[1],
		})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a snapshot and report whether it can produce a test set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(cli.ValidateOptions{File: args[0]})
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write the built-in demo table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Sample(cli.SampleOptions{
			Output: output(),
			Format: flagSampleFormat,
			Force:  flagForce,
		})
	},
}

// Shared output flags
var (
	flagOutput string
	flagCopy   bool
)

// Each command has its own format default
var (
	flagISPFormat    string
	flagBCCFormat    string
	flagSampleFormat string
)

// Flags for bcc and skeleton
var (
	flagOracles string
	flagNames   string
	flagQuery   string
	flagStyle   string
	flagForce   bool
)

func init() {
	for _, c := range []*cobra.Command{ispCmd, bccCmd, skeletonCmd, sampleCmd} {
		c.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to file instead of stdout")
		c.Flags().BoolVarP(&flagCopy, "copy", "c", false, "Copy the result to the clipboard")
	}

	ispCmd.Flags().StringVarP(&flagISPFormat, "format", "f", "html", "Output format (html/markdown)")

	bccCmd.Flags().StringVarP(&flagBCCFormat, "format", "f", "html", "Output format (html/markdown/json/yaml)")
	bccCmd.Flags().StringVar(&flagOracles, "oracles", "", "Oracle mapping file (json/yaml)")
	bccCmd.Flags().StringVar(&flagNames, "names", "", "Test name mapping file (json/yaml)")
	bccCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath query applied to json output")

	skeletonCmd.Flags().StringVarP(&flagStyle, "style", "s", "", "Skeleton style (junit/go), defaults to settings")
	skeletonCmd.Flags().StringVar(&flagNames, "names", "", "Test name mapping file (json/yaml)")

	sampleCmd.Flags().StringVarP(&flagSampleFormat, "format", "f", "json", "Snapshot format when writing to stdout (json/yaml)")
	sampleCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file without asking")

	rootCmd.AddCommand(ispCmd)
	rootCmd.AddCommand(bccCmd)
	rootCmd.AddCommand(skeletonCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sampleCmd)
}

// output builds the shared output settings from flags
func output() cli.Output {
	return cli.Output{
		Path: flagOutput,
		Copy: flagCopy,
	}
}
