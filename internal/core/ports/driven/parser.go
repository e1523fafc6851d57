package driven

// Node kinds produced by structural parsers.
const (
	// NodeKindRoot is the kind of the tree's root node.
	NodeKindRoot = "source_file"

	// NodeKindEnvironment is a \begin{name} ... \end{name} block.
	NodeKindEnvironment = "generic_environment"

	// NodeKindVerbatim is an environment whose body is not parsed.
	NodeKindVerbatim = "verbatim_environment"

	// NodeKindComment is a line comment.
	NodeKindComment = "comment"

	// NodeKindError marks source the parser could not make sense of.
	NodeKindError = "ERROR"
)

// Parser builds a syntax tree from source text.
// A parse is all-or-nothing: either a tree is returned or an error.
type Parser interface {
	// Parse returns the syntax tree for text.
	Parse(text string) (SyntaxTree, error)
}

// SyntaxTree is the result of one parse.
type SyntaxTree interface {
	// Root returns the top-level node.
	Root() Node

	// Text returns the source the tree was built from.
	Text() string
}

// Node is one element of a syntax tree.
type Node interface {
	// Kind returns the node type, one of the NodeKind constants.
	Kind() string

	// Name returns the environment name for environment nodes, else "".
	Name() string

	// StartByte is the offset of the first byte covered by the node.
	StartByte() int

	// EndByte is the offset one past the last byte covered by the node.
	EndByte() int

	// NamedChildCount returns the number of child nodes.
	NamedChildCount() int

	// NamedChild returns the i-th child.
	NamedChild(i int) Node
}

// Walk visits every node depth-first in source order. Returning false from
// visit skips the node's children.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for i := 0; i < n.NamedChildCount(); i++ {
		Walk(n.NamedChild(i), visit)
	}
}

// ErrorNodes returns every ERROR node in the tree.
func ErrorNodes(t SyntaxTree) []Node {
	var out []Node
	Walk(t.Root(), func(n Node) bool {
		if n.Kind() == NodeKindError {
			out = append(out, n)
		}
		return true
	})
	return out
}
