package latex

import "github.com/custodia-labs/faster-beamer/internal/core/ports/driven"

type tree struct {
	root *node
	text string
}

func (t *tree) Root() driven.Node { return t.root }
func (t *tree) Text() string      { return t.text }

type node struct {
	kind     string
	name     string
	start    int
	end      int
	children []*node
}

func (n *node) Kind() string         { return n.kind }
func (n *node) Name() string         { return n.name }
func (n *node) StartByte() int       { return n.start }
func (n *node) EndByte() int         { return n.end }
func (n *node) NamedChildCount() int { return len(n.children) }

func (n *node) NamedChild(i int) driven.Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *node) append(child *node) {
	n.children = append(n.children, child)
}
