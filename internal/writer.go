package internal

import (
	"strings"

	"github.com/mliezun/jackal/internal/tokens"
)

// DefaultIndent is the indentation unit used per nesting level
const DefaultIndent = "  "

// treeWriter appends open, close and leaf markers to an output buffer
type treeWriter struct {
	buf    strings.Builder
	indent string
	depth  int
}

func newTreeWriter(indent string) *treeWriter {
	return &treeWriter{indent: indent}
}

func (w *treeWriter) open(tag string) {
	w.pad()
	w.buf.WriteString("<" + tag + ">\n")
	w.depth++
}

func (w *treeWriter) close(tag string) {
	w.depth--
	w.pad()
	w.buf.WriteString("</" + tag + ">\n")
}

func (w *treeWriter) leaf(tk tokens.Token) {
	w.pad()
	w.buf.WriteString(tk.Markup())
	w.buf.WriteByte('\n')
}

func (w *treeWriter) pad() {
	for i := 0; i < w.depth; i++ {
		w.buf.WriteString(w.indent)
	}
}

func (w *treeWriter) String() string {
	return w.buf.String()
}
