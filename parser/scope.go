package parser

import (
	"fmt"
	"slices"

	"esfront/ast"
)

type Flags int

const (
	SCOPE_TOP Flags = 1 << iota
	SCOPE_FUNCTION
	SCOPE_ASYNC
	SCOPE_GENERATOR
	SCOPE_ARROW
	SCOPE_SIMPLE_CATCH
	SCOPE_SUPER
	SCOPE_DIRECT_SUPER
	SCOPE_CLASS_STATIC_BLOCK
	SCOPE_CLASS_FIELD_INIT
)

const SCOPE_VAR = SCOPE_TOP | SCOPE_FUNCTION | SCOPE_CLASS_STATIC_BLOCK

func functionFlags(async, generator bool) Flags {
	f := SCOPE_FUNCTION
	if async {
		f |= SCOPE_ASYNC
	}
	if generator {
		f |= SCOPE_GENERATOR
	}
	return f
}

// BindingType says how a name is being declared.
type BindingType int

const (
	BIND_NONE BindingType = iota // not a binding
	BIND_VAR
	BIND_LEXICAL
	BIND_FUNCTION
	BIND_SIMPLE_CATCH // simple catch clause parameter
	BIND_OUTSIDE      // function name, bound in the enclosing scope
)

type Scope struct {
	Flags     Flags
	Var       []string
	Lexical   []string
	Functions []string
}

func NewScope(flags Flags) *Scope {
	return &Scope{
		Flags:     flags,
		Var:       []string{},
		Lexical:   []string{},
		Functions: []string{},
	}
}

func (s *Scope) clone() *Scope {
	return &Scope{
		Flags:     s.Flags,
		Var:       slices.Clone(s.Var),
		Lexical:   slices.Clone(s.Lexical),
		Functions: slices.Clone(s.Functions),
	}
}

func (p *Parser) enterScope(flags Flags) {
	p.scopeStack = append(p.scopeStack, NewScope(flags))
}

func (p *Parser) exitScope() {
	p.scopeStack = p.scopeStack[:len(p.scopeStack)-1]
}

func (p *Parser) currentScope() *Scope {
	return p.scopeStack[len(p.scopeStack)-1]
}

func (p *Parser) currentVarScope() *Scope {
	for i := len(p.scopeStack) - 1; ; i-- {
		s := p.scopeStack[i]
		if s.Flags&(SCOPE_VAR|SCOPE_CLASS_FIELD_INIT|SCOPE_CLASS_STATIC_BLOCK) != 0 {
			return s
		}
	}
}

// currentThisScope is the scope that determines the meaning of this.
func (p *Parser) currentThisScope() *Scope {
	for i := len(p.scopeStack) - 1; ; i-- {
		s := p.scopeStack[i]
		if s.Flags&(SCOPE_VAR|SCOPE_CLASS_FIELD_INIT|SCOPE_CLASS_STATIC_BLOCK) != 0 && s.Flags&SCOPE_ARROW == 0 {
			return s
		}
	}
}

func (p *Parser) treatFunctionsAsVarInScope(s *Scope) bool {
	return s.Flags&SCOPE_FUNCTION != 0 || !p.inModule && s.Flags&SCOPE_TOP != 0
}

func (p *Parser) treatFunctionsAsVar() bool {
	return p.treatFunctionsAsVarInScope(p.currentScope())
}

func (p *Parser) inFunction() bool  { return p.currentVarScope().Flags&SCOPE_FUNCTION != 0 }
func (p *Parser) inGenerator() bool { return p.currentVarScope().Flags&SCOPE_GENERATOR != 0 }
func (p *Parser) inAsync() bool     { return p.currentVarScope().Flags&SCOPE_ASYNC != 0 }

func (p *Parser) inClassStaticBlock() bool {
	return p.currentVarScope().Flags&SCOPE_CLASS_STATIC_BLOCK != 0
}

func (p *Parser) canAwait() bool {
	for i := len(p.scopeStack) - 1; i >= 0; i-- {
		f := p.scopeStack[i].Flags
		if f&(SCOPE_CLASS_STATIC_BLOCK|SCOPE_CLASS_FIELD_INIT) != 0 {
			return false
		}
		if f&SCOPE_FUNCTION != 0 {
			return f&SCOPE_ASYNC != 0
		}
	}
	return p.inModule
}

func (p *Parser) allowSuper() bool {
	return p.currentThisScope().Flags&SCOPE_SUPER != 0
}

func (p *Parser) allowDirectSuper() bool {
	return p.currentThisScope().Flags&SCOPE_DIRECT_SUPER != 0
}

func (p *Parser) allowNewDotTarget() bool {
	for i := len(p.scopeStack) - 1; i >= 0; i-- {
		f := p.scopeStack[i].Flags
		if f&(SCOPE_CLASS_STATIC_BLOCK|SCOPE_CLASS_FIELD_INIT) != 0 || f&SCOPE_FUNCTION != 0 && f&SCOPE_ARROW == 0 {
			return true
		}
	}
	return false
}

func (p *Parser) declareName(name string, binding BindingType, pos int) {
	redeclared := false
	switch binding {
	case BIND_LEXICAL:
		s := p.currentScope()
		redeclared = slices.Contains(s.Lexical, name) || slices.Contains(s.Functions, name) || slices.Contains(s.Var, name)
		s.Lexical = append(s.Lexical, name)
		if p.inModule && s.Flags&SCOPE_TOP != 0 {
			delete(p.undefinedExports, name)
		}
	case BIND_SIMPLE_CATCH:
		s := p.currentScope()
		s.Lexical = append(s.Lexical, name)
	case BIND_FUNCTION:
		s := p.currentScope()
		if p.treatFunctionsAsVar() {
			redeclared = slices.Contains(s.Lexical, name)
		} else {
			redeclared = slices.Contains(s.Lexical, name) || slices.Contains(s.Var, name)
		}
		s.Functions = append(s.Functions, name)
	default:
		for i := len(p.scopeStack) - 1; i >= 0; i-- {
			s := p.scopeStack[i]
			simpleCatch := s.Flags&SCOPE_SIMPLE_CATCH != 0 && len(s.Lexical) > 0 && s.Lexical[0] == name
			if slices.Contains(s.Lexical, name) && !simpleCatch ||
				!p.treatFunctionsAsVarInScope(s) && slices.Contains(s.Functions, name) {
				redeclared = true
				break
			}
			s.Var = append(s.Var, name)
			if p.inModule && s.Flags&SCOPE_TOP != 0 {
				delete(p.undefinedExports, name)
			}
			if s.Flags&SCOPE_VAR != 0 {
				break
			}
		}
	}
	if redeclared {
		p.raiseRecoverable(pos, fmt.Sprintf("Identifier '%s' has already been declared", name))
	}
}

// checkLocalExport remembers an exported name that is not declared yet.
// It must be declared by the end of the module.
func (p *Parser) checkLocalExport(id *ast.Identifier) {
	top := p.scopeStack[0]
	if !slices.Contains(top.Lexical, id.Name) && !slices.Contains(top.Var, id.Name) {
		p.undefinedExports[id.Name] = id
	}
}

// label is an entry of the label set. kind is "loop", "switch" or empty for
// a plain statement label.
type label struct {
	name           string
	kind           string
	statementStart int
}

// privateNames tracks the private names of one class body.
type privateNames struct {
	declared map[string]string
	used     []*ast.PrivateIdentifier
}
