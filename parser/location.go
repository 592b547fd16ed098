package parser

import (
	"esfront/ast"
	"esfront/token"
)

// marker is the start of a node being parsed.
type marker struct {
	pos int
	loc token.Position
}

func (p *Parser) startNode() marker {
	return marker{pos: p.tok.Start, loc: p.tok.Loc.Start}
}

func (p *Parser) startNodeAt(pos int, loc token.Position) marker {
	return marker{pos: pos, loc: loc}
}

// markerOf starts a node where an already built node starts.
func (p *Parser) markerOf(n ast.Node) marker {
	b := n.Base()
	if b.Loc != nil {
		return marker{pos: b.Start, loc: b.Loc.Start}
	}
	return marker{pos: b.Start, loc: p.scan.Position(b.Start)}
}

// finishNode ends a node at the end of the previous token.
func (p *Parser) finishNode(m marker) ast.NodeBase {
	return p.finishNodeAt(m, p.prev.End, p.prev.Loc.End)
}

func (p *Parser) finishNodeAt(m marker, end int, endLoc token.Position) ast.NodeBase {
	b := ast.NodeBase{Start: m.pos, End: end}
	if p.options.Location {
		b.Loc = &token.SourceLocation{Start: m.loc, End: endLoc, Source: p.options.Source}
	}
	if p.options.Range {
		b.Range = &token.Range{m.pos, end}
	}
	return b
}

// endOf returns the end of an already built node.
func (p *Parser) endOf(n ast.Node) (int, token.Position) {
	b := n.Base()
	if b.Loc != nil {
		return b.End, b.Loc.End
	}
	return b.End, p.scan.Position(b.End)
}
