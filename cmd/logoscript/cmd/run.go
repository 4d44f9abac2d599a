package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/logoscript/internal/builtins"
	"github.com/cwbudde/logoscript/internal/canvas"
	"github.com/cwbudde/logoscript/internal/diag"
	"github.com/cwbudde/logoscript/internal/eval"
	"github.com/cwbudde/logoscript/internal/lexer"
	"github.com/cwbudde/logoscript/internal/logging"
	"github.com/cwbudde/logoscript/internal/parser"
	"github.com/cwbudde/logoscript/internal/reader"
	"github.com/cwbudde/logoscript/internal/runtime"
)

var noRender bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a logoscript program",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&noRender, "no-render", "n", false, "skip printing the canvas render step")
}

func runScript(c *cobra.Command, args []string) error {
	filename := args[0]
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	source, err := readSource(filename)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("file not found: %s", filename)
			return nil
		}
		return err
	}

	prog, err := parser.ParseProgram(lexer.New(reader.NewString(source)))
	if err != nil {
		return reportError(err.(diag.PositionedError), source)
	}

	root := runtime.NewRoot()
	cv := canvas.New()
	builtins.Populate(root, cv, logging.StdoutSink{})

	if err := eval.Execute(prog, root); err != nil {
		return reportError(err.(diag.PositionedError), source)
	}

	if !(noRender || cfg.NoRender) {
		renderCanvas(cv)
	}
	return nil
}

func readSource(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func reportError(err diag.PositionedError, source string) error {
	fmt.Fprint(os.Stderr, diag.Format(err, source))
	return fmt.Errorf("execution failed")
}

func renderCanvas(cv *canvas.Canvas) {
	for _, id := range cv.Turtles() {
		line := cv.Line(id)
		fmt.Printf("Turtle %d: %d point(s), heading %g\n", id, len(line), cv.Angle(id))
	}
}
