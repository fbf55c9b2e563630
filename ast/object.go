package ast

import (
	"fmt"
	"strings"
)

// Delimiters lists the characters that can never be part of a symbol.
const Delimiters = "()' \t\n\r\f\v"

// Object is a node of the tree. It is implemented by *Symbol, *Number, *Pair
// and *Empty only.
type Object interface {
	Type() ObjectType
	String() string

	header() *node
}

// node holds the bookkeeping shared by every object.
type node struct {
	heap *Heap

	owned    bool
	released bool
}

func (n *node) header() *node {
	return n
}

// Symbol is a named atom.
type Symbol struct {
	node
	name string
}

// Number is a numeric atom.
type Number struct {
	node
	v float64
}

// Pair is a cons cell, it exclusively owns its head and its tail.
type Pair struct {
	node
	head Object
	tail Object
}

// Empty is the empty list, it terminates every proper list.
type Empty struct {
	node
}

// Type returns TypeSymbol.
func (s *Symbol) Type() ObjectType { return TypeSymbol }

// Name returns the text of the symbol.
func (s *Symbol) Name() string {
	return s.name
}

func (s *Symbol) String() string {
	return s.name
}

// Type returns TypeNumber.
func (n *Number) Type() ObjectType { return TypeNumber }

// Value returns the numeric value.
func (n *Number) Value() float64 {
	return n.v
}

func (n *Number) String() string {
	return encodeNumber(n.v)
}

// Type returns TypePair.
func (p *Pair) Type() ObjectType { return TypePair }

// Head returns the first slot of the pair.
func (p *Pair) Head() Object {
	return p.head
}

// Tail returns the second slot of the pair.
func (p *Pair) Tail() Object {
	return p.tail
}

func (p *Pair) String() string {
	return encodeString(p)
}

// Type returns TypeEmpty.
func (e *Empty) Type() ObjectType { return TypeEmpty }

func (e *Empty) String() string {
	return "()"
}

// NewSymbol creates an untracked symbol.
func NewSymbol(name string) (*Symbol, error) {
	return (*Heap)(nil).NewSymbol(name)
}

// NewNumber creates an untracked number.
func NewNumber(v float64) *Number {
	return (*Heap)(nil).NewNumber(v)
}

// NewPair creates an untracked pair that takes ownership of head and tail.
func NewPair(head Object, tail Object) (*Pair, error) {
	return (*Heap)(nil).NewPair(head, tail)
}

// NewEmpty creates an untracked empty list.
func NewEmpty() *Empty {
	return (*Heap)(nil).NewEmpty()
}

// Head returns the head of obj, or nil if obj is not a pair.
func Head(obj Object) Object {
	if p, ok := obj.(*Pair); ok {
		return p.head
	}
	return nil
}

// Tail returns the tail of obj, or nil if obj is not a pair.
func Tail(obj Object) Object {
	if p, ok := obj.(*Pair); ok {
		return p.tail
	}
	return nil
}

// Destroy releases obj and, for pairs, everything it owns: the head first,
// then the tail. Destroying nil or an already destroyed object does nothing.
func Destroy(obj Object) {
	if obj == nil {
		return
	}
	n := obj.header()
	if n.released {
		return
	}
	switch o := obj.(type) {
	case *Pair:
		Destroy(o.head)
		Destroy(o.tail)
		o.head, o.tail = nil, nil
		n.heap.release(0)
	case *Symbol:
		n.heap.release(len(o.name))
		o.name = ""
	case *Number, *Empty:
		n.heap.release(0)
	default:
		panic(fmt.Sprintf("unknown object type %T", obj))
	}
	n.released = true
}

// Released reports whether obj has been destroyed.
func Released(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.header().released
}

func validSymbol(name string) bool {
	return name != "" && !strings.ContainsAny(name, Delimiters)
}
