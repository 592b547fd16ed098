package parser

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"esfront/diag"
	"esfront/jsregexp"
)

type Options struct {
	// SourceType is "script" or "module".
	SourceType string
	// Range and Location add Range and Loc to every node.
	Range    bool
	Location bool
	// Source names the input in locations and errors.
	Source string
	// Tokens and Comments collect the token stream and the comments,
	// available from Parser.Tokens and Parser.Comments after a parse.
	Tokens   bool
	Comments bool
	Tolerant bool
	JSX      bool

	RegexMode   jsregexp.Mode
	RegexEngine jsregexp.Engine

	AllowReturnOutsideFunction bool

	// ErrorHook sees every error before it is recorded or returned.
	ErrorHook func(*diag.Error)
	Logger    *zap.Logger
}

var DefaultOptions = Options{
	SourceType:  "script",
	RegexMode:   jsregexp.Validate,
	RegexEngine: jsregexp.RE2,
}

// GetOptions returns a copy of opts with unset fields taken from
// DefaultOptions. A nil opts yields the defaults.
func GetOptions(opts *Options) *Options {
	options := DefaultOptions
	if opts != nil {
		options = *opts
		if options.SourceType == "" {
			options.SourceType = DefaultOptions.SourceType
		}
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	return &options
}

// optionsFile is the YAML spelling of Options. Hooks and the logger have no
// file form.
type optionsFile struct {
	SourceType                 string `yaml:"sourceType"`
	Range                      bool   `yaml:"range"`
	Location                   bool   `yaml:"location"`
	Source                     string `yaml:"source"`
	Tokens                     bool   `yaml:"tokens"`
	Comments                   bool   `yaml:"comments"`
	Tolerant                   bool   `yaml:"tolerant"`
	JSX                        bool   `yaml:"jsx"`
	RegexMode                  string `yaml:"regexMode"`
	RegexEngine                string `yaml:"regexEngine"`
	AllowReturnOutsideFunction bool   `yaml:"allowReturnOutsideFunction"`
}

// LoadOptions reads options from a YAML document. Unknown keys are errors.
// Fields missing from the document keep their default values.
func LoadOptions(data []byte) (Options, error) {
	f := optionsFile{SourceType: DefaultOptions.SourceType}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return Options{}, errors.Wrap(err, "decoding parser options")
	}

	switch f.SourceType {
	case "script", "module":
	default:
		return Options{}, errors.Errorf("invalid sourceType %q", f.SourceType)
	}
	mode, err := jsregexp.ParseMode(f.RegexMode)
	if err != nil {
		return Options{}, errors.Wrap(err, "regexMode")
	}
	engine, err := jsregexp.ParseEngine(f.RegexEngine)
	if err != nil {
		return Options{}, errors.Wrap(err, "regexEngine")
	}

	return Options{
		SourceType:                 f.SourceType,
		Range:                      f.Range,
		Location:                   f.Location,
		Source:                     f.Source,
		Tokens:                     f.Tokens,
		Comments:                   f.Comments,
		Tolerant:                   f.Tolerant,
		JSX:                        f.JSX,
		RegexMode:                  mode,
		RegexEngine:                engine,
		AllowReturnOutsideFunction: f.AllowReturnOutsideFunction,
	}, nil
}
