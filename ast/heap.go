package ast

import (
	"fmt"
	"strings"
)

// Heap hands out objects and keeps track of the ones that are still alive.
// Symbol text is duplicated into the heap and counts against its limit. A nil
// *Heap is valid: it has no limit and keeps no counts.
type Heap struct {
	limit int

	text int
	live int
}

// NewHeap creates a heap that holds at most limit bytes of symbol text at any
// time. A limit of zero means no limit.
func NewHeap(limit int) *Heap {
	return &Heap{limit: limit}
}

// Live returns the number of objects created by the heap and not destroyed
// yet.
func (h *Heap) Live() int {
	if h == nil {
		return 0
	}
	return h.live
}

// TextBytes returns the number of bytes of symbol text currently alive.
func (h *Heap) TextBytes() int {
	if h == nil {
		return 0
	}
	return h.text
}

// NewSymbol copies name into a new symbol. It fails with ErrInvalidArgument
// if name is empty or contains a delimiter, and with ErrAllocation if the
// copy does not fit in the heap.
func (h *Heap) NewSymbol(name string) (*Symbol, error) {
	if !validSymbol(name) {
		return nil, fmt.Errorf("%w: bad symbol name %q", ErrInvalidArgument, name)
	}
	if err := h.alloc(len(name)); err != nil {
		return nil, err
	}
	return &Symbol{node: node{heap: h}, name: strings.Clone(name)}, nil
}

// NewNumber creates a number.
func (h *Heap) NewNumber(v float64) *Number {
	h.track()
	return &Number{node: node{heap: h}, v: v}
}

// NewEmpty creates an empty list.
func (h *Heap) NewEmpty() *Empty {
	h.track()
	return &Empty{node: node{heap: h}}
}

// NewPair creates a pair that owns head and tail from now on. Both must be
// present, alive and not owned by another pair.
func (h *Heap) NewPair(head Object, tail Object) (*Pair, error) {
	if head == nil || tail == nil {
		return nil, fmt.Errorf("%w: pair with a missing child", ErrInvalidArgument)
	}
	if head.header() == tail.header() {
		return nil, fmt.Errorf("%w: pair with the same head and tail", ErrInvalidArgument)
	}
	for _, child := range []Object{head, tail} {
		n := child.header()
		if n.released {
			return nil, fmt.Errorf("%w: destroyed %v in pair", ErrInvalidArgument, child.Type())
		}
		if n.owned {
			return nil, fmt.Errorf("%w: %v already owned by another pair", ErrInvalidArgument, child.Type())
		}
	}
	h.track()
	head.header().owned = true
	tail.header().owned = true
	return &Pair{node: node{heap: h}, head: head, tail: tail}, nil
}

func (h *Heap) alloc(size int) error {
	if h == nil {
		return nil
	}
	if h.limit > 0 && h.text+size > h.limit {
		return fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrAllocation, size, h.text, h.limit)
	}
	h.text += size
	h.live++
	return nil
}

func (h *Heap) track() {
	if h == nil {
		return
	}
	h.live++
}

func (h *Heap) release(size int) {
	if h == nil {
		return
	}
	h.text -= size
	h.live--
}
