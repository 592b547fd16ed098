package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/mattn/go-isatty"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"esfront/ast"
	"esfront/diag"
	"esfront/parser"
	"esfront/scanner"
)

type args struct {
	File     string `arg:"positional,required" help:"JavaScript source file"`
	Options  string `help:"YAML file with parser options"`
	Tokens   bool   `help:"dump the token stream instead of the tree"`
	Comments bool   `help:"collect and print comments"`
	Module   bool   `help:"parse as a module"`
	JSX      bool   `arg:"--jsx" help:"enable JSX"`
	Tolerant bool   `help:"record recoverable errors and keep going"`
	Verbose  bool   `arg:"-v,--verbose" help:"debug logging to stderr"`
}

func (args) Description() string {
	return "esfront parses an ECMAScript file and prints its syntax tree or tokens."
}

func main() {
	var a args
	arg.MustParse(&a)

	logger := zap.NewNop()
	if a.Verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	if err := run(a, logger); err != nil {
		os.Exit(1)
	}
}

func run(a args, logger *zap.Logger) error {
	b, err := os.ReadFile(a.File)
	if err != nil {
		err = pkgerrors.Wrapf(err, "reading %s", a.File)
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	src := string(b)

	opts, err := loadOptions(a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	opts.Logger = logger
	logger.Debug("parsing",
		zap.String("file", a.File),
		zap.String("sourceType", opts.SourceType),
		zap.Bool("jsx", opts.JSX),
		zap.Bool("tolerant", opts.Tolerant))

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if a.Tokens {
		words, comments, err := scanner.Tokenize(src, scanner.Options{
			Comments:    opts.Comments,
			Tolerant:    opts.Tolerant,
			Module:      opts.SourceType == "module",
			JSX:         opts.JSX,
			RegexMode:   opts.RegexMode,
			RegexEngine: opts.RegexEngine,
			Source:      opts.Source,
		})
		for _, w := range words {
			fmt.Fprintf(out, "%d:%d\t%s\t%s\t%q\n", w.Loc.Start.Line, w.Loc.Start.Column, w.Kind(), w.Token, w.Raw)
		}
		printComments(out, comments)
		return report(src, err)
	}

	p := parser.New(src, opts)
	prog, err := p.Parse()
	if prog != nil {
		if perr := ast.Fprint(out, prog); perr != nil {
			return pkgerrors.Wrap(perr, "writing tree")
		}
		printComments(out, p.Comments())
	}
	return report(src, err)
}

func loadOptions(a args) (*parser.Options, error) {
	opts := parser.DefaultOptions
	if a.Options != "" {
		data, err := os.ReadFile(a.Options)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "reading %s", a.Options)
		}
		if opts, err = parser.LoadOptions(data); err != nil {
			return nil, pkgerrors.Wrapf(err, "loading %s", a.Options)
		}
	}
	if opts.Source == "" {
		opts.Source = a.File
	}
	if a.Module {
		opts.SourceType = "module"
	}
	opts.JSX = opts.JSX || a.JSX
	opts.Tolerant = opts.Tolerant || a.Tolerant
	opts.Comments = opts.Comments || a.Comments
	return &opts, nil
}

func printComments(out *bufio.Writer, comments []scanner.Comment) {
	for _, c := range comments {
		fmt.Fprintf(out, "comment %d:%d %q\n", c.Loc.Start.Line, c.Loc.Start.Column, c.Value)
	}
}

// report prints err to stderr, one line per error. On a terminal each
// error is followed by its source line and a caret under the column.
func report(src string, err error) error {
	if err == nil {
		return nil
	}
	var errs diag.List
	var one *diag.Error
	switch {
	case errors.As(err, &errs):
	case errors.As(err, &one):
		errs = diag.List{one}
	default:
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	caret := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	lines := strings.Split(src, "\n")
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s: %s\n", e.Source, e.Line, e.Column, e.Kind, e.Description)
		if caret && e.Line >= 1 && e.Line <= len(lines) {
			line := strings.TrimRight(lines[e.Line-1], "\r")
			fmt.Fprintf(os.Stderr, "\t%s\n\t%s^\n", line, strings.Repeat(" ", min(e.Column, len(line))))
		}
	}
	return err
}
