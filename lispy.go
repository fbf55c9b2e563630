package lispy

import (
	"io"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/parser"
)

// Reader reads expressions from a character stream, one at a time.
type Reader struct {
	p *parser.Parser
}

// Option configures a Reader.
type Option func(*parser.Options)

// WithHeap makes the reader allocate every object from heap.
func WithHeap(heap *ast.Heap) Option {
	return func(opts *parser.Options) {
		opts.Heap = heap
	}
}

// NewReader creates a Reader that consumes r.
func NewReader(r io.Reader, options ...Option) *Reader {
	opts := parser.Options{}
	for _, fn := range options {
		fn(&opts)
	}

	p := parser.New(r)
	p.SetOptions(opts)

	return &Reader{p: p}
}

// Read returns the next expression. The caller owns the returned tree and
// must release it with Destroy. Read returns io.EOF once the stream is
// exhausted.
func (r *Reader) Read() (ast.Object, error) {
	return r.p.Parse()
}

// Reset discards input that was buffered but not read yet.
func (r *Reader) Reset() {
	r.p.Reset()
}

// Parse reads the single expression held by in.
func Parse(in []byte) (ast.Object, error) {
	return parser.Parse(in)
}

// Print writes obj to w, followed by a newline.
func Print(w io.Writer, obj ast.Object) error {
	return ast.Print(w, obj)
}

// Destroy releases obj and everything it owns.
func Destroy(obj ast.Object) {
	ast.Destroy(obj)
}
