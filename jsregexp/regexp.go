// Package jsregexp parses and validates ECMAScript regular expression
// patterns, and adapts them to Go regex engines.
//
// A pattern is read once into a small tree (see Node). In Adapt mode the
// tree is translated either to RE2 syntax, compiled with the standard
// regexp package, or to the syntax of github.com/dlclark/regexp2 in its
// ECMAScript mode, which supports backreferences and lookaround. Patterns
// the chosen engine cannot express fail with a *TranslationError, which is
// distinct from the *SyntaxError returned for invalid patterns.
package jsregexp

import (
	"fmt"
	"regexp"
	"unicode/utf16"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru"
)

type Mode int

const (
	// Validate checks the pattern and keeps the literal text.
	Validate Mode = iota
	// Skip accepts any pattern text without looking at it.
	Skip
	// Adapt validates, translates and compiles the pattern.
	Adapt
)

func (m Mode) String() string {
	switch m {
	case Validate:
		return "validate"
	case Skip:
		return "skip"
	case Adapt:
		return "adapt"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps the configuration spelling of a mode to its value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "validate":
		return Validate, nil
	case "skip":
		return Skip, nil
	case "adapt":
		return Adapt, nil
	}
	return 0, fmt.Errorf("unknown regex mode %q", s)
}

// Engine selects the target of Adapt mode.
type Engine int

const (
	RE2 Engine = iota
	Regexp2
)

func (e Engine) String() string {
	if e == Regexp2 {
		return "regexp2"
	}
	return "re2"
}

// ParseEngine maps the configuration spelling of an engine to its value.
func ParseEngine(s string) (Engine, error) {
	switch s {
	case "", "re2":
		return RE2, nil
	case "regexp2":
		return Regexp2, nil
	}
	return 0, fmt.Errorf("unknown regex engine %q", s)
}

type Options struct {
	Mode   Mode
	Engine Engine
}

// Result describes a regular expression literal. Tree is nil in Skip mode;
// Adapted and one of RE2 or Regexp2 are set in Adapt mode only. A Result is
// shared through the adapt cache and must not be modified.
type Result struct {
	Pattern string
	Flags   Flags
	Tree    Node
	// Groups is the number of capturing groups; GroupNames[i] is the name of
	// group i, or "" (index 0 is unused).
	Groups     int
	GroupNames []string

	Engine  Engine
	Adapted string
	RE2     *regexp.Regexp
	Regexp2 *regexp2.Regexp
}

const cacheSize = 1024

var adaptCache *lru.Cache

func init() {
	var err error
	adaptCache, err = lru.New(cacheSize)
	if err != nil {
		panic(err)
	}
}

type cacheEntry struct {
	res *Result
	err error
}

// Parse reads a pattern and its flags according to opts.Mode.
func Parse(pattern, flags string, opts Options) (*Result, error) {
	if opts.Mode == Skip {
		f, _ := ParseFlags(flags)
		return &Result{Pattern: pattern, Flags: f}, nil
	}

	f, err := ParseFlags(flags)
	if err != nil {
		se := err.(*SyntaxError)
		se.Pattern, se.Flags = pattern, flags
		return nil, se
	}
	if opts.Mode != Adapt {
		return parse(pattern, flags, f)
	}

	key := fmt.Sprintf("%d|%s|%s", opts.Engine, f, pattern)
	if v, ok := adaptCache.Get(key); ok {
		e := v.(cacheEntry)
		return e.res, e.err
	}
	res, err := adapt(pattern, flags, f, opts.Engine)
	adaptCache.Add(key, cacheEntry{res: res, err: err})
	return res, err
}

func adapt(pattern, flags string, f Flags, engine Engine) (*Result, error) {
	res, err := parse(pattern, flags, f)
	if err != nil {
		return nil, err
	}
	res.Engine = engine
	if res.Adapted, err = translate(res, engine); err != nil {
		return nil, err
	}
	switch engine {
	case RE2:
		res.RE2, err = compileRE2(res.Adapted)
	case Regexp2:
		res.Regexp2, err = compileRegexp2(res.Adapted, f)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func parse(pattern, flags string, f Flags) (res *Result, err error) {
	src := []rune(pattern)
	if !f.Unicode() {
		src = codeUnits(src)
	}
	p := &parser{src: src, flags: f, u: f.Unicode(), v: f.Has(FlagUnicodeSets)}
	p.numCaptures, p.n = prescan(src)
	p.n = p.n || p.u

	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			se.Pattern, se.Flags = pattern, flags
			res, err = nil, se
		}
	}()
	tree := p.pattern()
	return &Result{
		Pattern:    pattern,
		Flags:      f,
		Tree:       tree,
		Groups:     p.groupIndex,
		GroupNames: p.names,
	}, nil
}

// codeUnits splits code points above the BMP into surrogate halves, which is
// how patterns without u or v see their source.
func codeUnits(src []rune) []rune {
	out := make([]rune, 0, len(src))
	for _, r := range src {
		if r > 0xffff {
			hi, lo := utf16.EncodeRune(r)
			out = append(out, hi, lo)
			continue
		}
		out = append(out, r)
	}
	return out
}
