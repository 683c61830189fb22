package internal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedMarkup is wrapped by every error returned by ReadMarkup
var ErrMalformedMarkup = errors.New("malformed markup")

// Node is one marker read back from serialized output. Leaves have Text and
// no children.
type Node struct {
	Tag      string
	Text     string
	Leaf     bool
	Line     int
	Children []*Node
}

// Elements returns the direct children with the given tag
func (n *Node) Elements(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Leaves returns every leaf below n in document order
func (n *Node) Leaves() []*Node {
	if n.Leaf {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// String prints the tree as nested lists, leaves as their text
func (n *Node) String() string {
	if n.Leaf {
		return n.Text
	}
	out := "(" + n.Tag
	for _, c := range n.Children {
		out += " " + c.String()
	}
	return out + ")"
}

// ReadMarkup parses one-marker-per-line output back into nodes. Every open
// marker must be closed by the matching tag in LIFO order and every leaf
// text must be escaped.
func ReadMarkup(text string) ([]*Node, error) {
	var roots []*Node
	var stack []*Node
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		n := i + 1
		if !strings.HasPrefix(line, "<") || !strings.HasSuffix(line, ">") {
			return nil, markupError(n, "expected a marker, found %q", line)
		}

		if strings.HasPrefix(line, "</") {
			tag := line[2 : len(line)-1]
			if len(stack) == 0 {
				return nil, markupError(n, "close marker %q without open marker", tag)
			}
			top := stack[len(stack)-1]
			if top.Tag != tag {
				return nil, markupError(n, "close marker %q does not match %q", tag, top.Tag)
			}
			stack = stack[:len(stack)-1]
			continue
		}

		gt := strings.IndexByte(line, '>')
		tag := line[1:gt]
		if !validTag(tag) {
			return nil, markupError(n, "invalid tag %q", tag)
		}
		node := &Node{Tag: tag, Line: n}
		if rest := line[gt+1:]; rest != "" {
			content, err := leafText(tag, rest)
			if err != nil {
				return nil, markupError(n, "%s", err)
			}
			if len(stack) == 0 {
				return nil, markupError(n, "leaf %q outside of any node", tag)
			}
			node.Leaf = true
			node.Text = content
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		if !node.Leaf {
			stack = append(stack, node)
		}
	}
	if len(stack) != 0 {
		return nil, markupError(0, "marker %q opened on line %d is never closed", stack[len(stack)-1].Tag, stack[len(stack)-1].Line)
	}
	return roots, nil
}

// CheckMarkup verifies nesting and escaping and returns the number of
// top-level nodes
func CheckMarkup(text string) (int, error) {
	roots, err := ReadMarkup(text)
	if err != nil {
		return 0, err
	}
	return len(roots), nil
}

// leafText extracts and unescapes "text </tag>" from the rest of a leaf line
func leafText(tag, rest string) (string, error) {
	closing := "</" + tag + ">"
	if !strings.HasSuffix(rest, closing) {
		return "", fmt.Errorf("leaf %q is not closed on the same line", tag)
	}
	content := strings.TrimSuffix(rest, closing)
	if len(content) < 2 || content[0] != ' ' || content[len(content)-1] != ' ' {
		return "", fmt.Errorf("leaf %q text must be surrounded by spaces", tag)
	}
	content = content[1 : len(content)-1]
	if strings.ContainsAny(content, "<>") {
		return "", fmt.Errorf("leaf %q holds unescaped markup", tag)
	}
	var b strings.Builder
	for i := 0; i < len(content); i++ {
		if content[i] != '&' {
			b.WriteByte(content[i])
			continue
		}
		entity := ""
		for _, e := range []string{"&lt;", "&gt;", "&amp;"} {
			if strings.HasPrefix(content[i:], e) {
				entity = e
				break
			}
		}
		switch entity {
		case "&lt;":
			b.WriteByte('<')
		case "&gt;":
			b.WriteByte('>')
		case "&amp;":
			b.WriteByte('&')
		default:
			return "", fmt.Errorf("leaf %q holds an unescaped '&'", tag)
		}
		i += len(entity) - 1
	}
	return b.String(), nil
}

func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, c := range tag {
		if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

func markupError(line int, format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	if line == 0 {
		return fmt.Errorf("%w: %s", ErrMalformedMarkup, msg)
	}
	return fmt.Errorf("line %d: %w: %s", line, ErrMalformedMarkup, msg)
}
