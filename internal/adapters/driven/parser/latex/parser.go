package latex

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// DefaultMaxDepth bounds environment nesting.
const DefaultMaxDepth = 256

// verbatimEnvironments have bodies that may contain unbalanced markup.
var verbatimEnvironments = map[string]bool{
	"verbatim":     true,
	"verbatim*":    true,
	"Verbatim":     true,
	"lstlisting":   true,
	"minted":       true,
	"comment":      true,
	"semiverbatim": true,
}

// Parser builds environment trees from LaTeX source.
type Parser struct {
	maxDepth int
}

// New creates a parser with the default nesting limit.
func New() *Parser {
	return &Parser{maxDepth: DefaultMaxDepth}
}

// NewWithMaxDepth creates a parser with a custom nesting limit.
func NewWithMaxDepth(depth int) *Parser {
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	return &Parser{maxDepth: depth}
}

// Parse returns the syntax tree for text.
func (p *Parser) Parse(text string) (driven.SyntaxTree, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: source is not valid UTF-8", domain.ErrParse)
	}

	root := &node{kind: driven.NodeKindRoot, start: 0, end: len(text)}
	s := &scanner{text: text, stack: []*node{root}}

	for s.pos < len(s.text) {
		switch s.text[s.pos] {
		case '%':
			s.comment()
		case '\\':
			if err := s.controlSequence(p.maxDepth); err != nil {
				return nil, err
			}
		default:
			s.pos++
		}
	}

	// Anything still open at EOF is unclosed.
	for len(s.stack) > 1 {
		s.closeAsError(len(s.text))
	}

	return &tree{root: root, text: text}, nil
}

type scanner struct {
	text  string
	pos   int
	stack []*node
}

func (s *scanner) top() *node {
	return s.stack[len(s.stack)-1]
}

func (s *scanner) comment() {
	start := s.pos
	end := strings.IndexByte(s.text[start:], '\n')
	if end < 0 {
		end = len(s.text)
	} else {
		end += start
	}
	s.top().append(&node{kind: driven.NodeKindComment, start: start, end: end})
	s.pos = end
}

func (s *scanner) controlSequence(maxDepth int) error {
	start := s.pos
	word, next := readControlWord(s.text, start+1)
	if word == "" {
		// Control symbol such as \% or \\: skip the escaped character too.
		_, size := utf8.DecodeRuneInString(s.text[min(start+1, len(s.text)):])
		s.pos = min(start+1+size, len(s.text))
		return nil
	}

	switch word {
	case "begin":
		name, end, ok := readGroup(s.text, next)
		if !ok {
			s.pos = next
			return nil
		}
		if verbatimEnvironments[name] {
			s.verbatim(start, end, name)
			return nil
		}
		if len(s.stack) > maxDepth {
			return fmt.Errorf("%w: environments nested deeper than %d", domain.ErrParse, maxDepth)
		}
		s.stack = append(s.stack, &node{kind: driven.NodeKindEnvironment, name: name, start: start})
		s.pos = end
	case "end":
		name, end, ok := readGroup(s.text, next)
		if !ok {
			s.pos = next
			return nil
		}
		s.closeEnvironment(start, end, name)
		s.pos = end
	case "verb", "lstinline":
		s.pos = skipInlineVerbatim(s.text, next)
	default:
		s.pos = next
	}
	return nil
}

func (s *scanner) verbatim(start, bodyStart int, name string) {
	closing := `\end{` + name + `}`
	idx := strings.Index(s.text[bodyStart:], closing)
	if idx < 0 {
		s.top().append(&node{kind: driven.NodeKindError, name: name, start: start, end: len(s.text)})
		s.pos = len(s.text)
		return
	}
	end := bodyStart + idx + len(closing)
	s.top().append(&node{kind: driven.NodeKindVerbatim, name: name, start: start, end: end})
	s.pos = end
}

func (s *scanner) closeEnvironment(start, end int, name string) {
	match := -1
	for i := len(s.stack) - 1; i > 0; i-- {
		if s.stack[i].name == name {
			match = i
			break
		}
	}
	if match < 0 {
		s.top().append(&node{kind: driven.NodeKindError, name: name, start: start, end: end})
		return
	}
	for len(s.stack)-1 > match {
		s.closeAsError(start)
	}
	env := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	env.end = end
	s.top().append(env)
}

// closeAsError pops the innermost open environment as an ERROR node.
func (s *scanner) closeAsError(end int) {
	env := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	env.kind = driven.NodeKindError
	env.end = end
	s.top().append(env)
}

func readControlWord(text string, pos int) (string, int) {
	end := pos
	for end < len(text) && isLetter(text[end]) {
		end++
	}
	return text[pos:end], end
}

// readGroup reads "{name}" after optional blanks and returns name and the
// offset just past the closing brace.
func readGroup(text string, pos int) (string, int, bool) {
	for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t') {
		pos++
	}
	if pos >= len(text) || text[pos] != '{' {
		return "", pos, false
	}
	closeIdx := strings.IndexAny(text[pos+1:], "}\n")
	if closeIdx < 0 || text[pos+1+closeIdx] != '}' {
		return "", pos, false
	}
	name := strings.TrimSpace(text[pos+1 : pos+1+closeIdx])
	if name == "" {
		return "", pos, false
	}
	return name, pos + closeIdx + 2, true
}

func skipInlineVerbatim(text string, pos int) int {
	if pos < len(text) && text[pos] == '*' {
		pos++
	}
	if pos >= len(text) || isLetter(text[pos]) || text[pos] == ' ' || text[pos] == '\n' {
		return pos
	}
	delim := text[pos]
	if delim == '{' {
		delim = '}'
	}
	rest := text[pos+1:]
	idx := strings.IndexByte(rest, delim)
	nl := strings.IndexByte(rest, '\n')
	if idx < 0 || (nl >= 0 && nl < idx) {
		return pos + 1
	}
	return pos + 1 + idx + 1
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '@'
}
