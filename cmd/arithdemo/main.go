// Command arithdemo drives the arithmetic example grammar against an
// expression given on the command line (or read from stdin), printing the
// folded result or a line/column-annotated failure report.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava12/llparser/examples/arithmetic"
	"github.com/ava12/llparser/source"
)

var verbose bool

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arithdemo [expression]",
		Short: "Parse an arithmetic expression with the llparser example grammar",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runArithDemo,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug information, such as the expression being parsed")
	return cmd
}

func runArithDemo(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	text, err := readExpression(args)
	if err != nil {
		return err
	}

	logger.Debug("parsing expression", zap.String("text", text))

	value, ok, index := arithmetic.Parse(text)
	if ok {
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	src := source.New("<input>", []byte(text))
	line, col := src.LineCol(index)
	logger.Warn("parse failed", zap.Int("index", index), zap.Int("line", line), zap.Int("col", col))
	return fmt.Errorf("parse error at line %d, col %d: expected %s", line, col, value)
}

func readExpression(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading expression from stdin: %w", err)
	}
	return string(data), nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}
