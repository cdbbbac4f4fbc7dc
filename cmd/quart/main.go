// Command quart is the front end's command-line entry point: the
// "out-of-scope shell" spec.md §6 describes only by its entry conditions
// (a single source path, exit 1 on front-end failure). Flag handling uses
// github.com/spf13/cobra, following the command-tree convention
// playbymail-ottomap's cmd/ binaries use.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blanketsucks/language/internal/compiler"
	"github.com/blanketsucks/language/internal/diag"
)

var flags struct {
	output string
	emit   string
	target string
	optLvl int
}

var rootCmd = &cobra.Command{
	Use:   "quart [file]",
	Short: "Compile a quart source file",
	Long:  "quart lexes, parses, and compiles a single quart source file to a native object, assembly, bitcode, or linked executable.",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "a.out", "output file path")
	rootCmd.Flags().StringVar(&flags.emit, "emit", "exe", "output kind: obj|asm|llvm-ir|bitcode|exe")
	rootCmd.Flags().StringVar(&flags.target, "target", "", "target triple override")
	rootCmd.Flags().IntVarP(&flags.optLvl, "optimize", "O", 0, "optimization level (0 = debug, >=1 = release)")
}

func outputFormat(emit string) (compiler.OutputFormat, error) {
	switch emit {
	case "obj":
		return compiler.Object, nil
	case "asm":
		return compiler.Assembly, nil
	case "llvm-ir":
		return compiler.LLVM, nil
	case "bitcode":
		return compiler.Bitcode, nil
	case "exe":
		return compiler.Executable, nil
	default:
		return 0, fmt.Errorf("unknown --emit kind %q", emit)
	}
}

func run(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(flags.emit)
	if err != nil {
		return err
	}

	sink := diag.NewDefaultSink()
	pipeline := compiler.NewPipeline(args[0], flags.output, format, sink)
	if flags.target != "" {
		pipeline = pipeline.WithTarget(flags.target)
	}
	pipeline.Opt = compiler.Debug
	if flags.optLvl > 0 {
		pipeline.Opt = compiler.Release
	}

	return pipeline.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
