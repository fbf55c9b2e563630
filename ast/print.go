package ast

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes the text representation of obj to w, followed by a newline.
func Print(w io.Writer, obj Object) error {
	buf, err := Encode(obj)
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}

// Encode transforms an object into its text representation.
func Encode(obj Object) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeObject(&buf, obj, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeString(obj Object) string {
	buf, err := Encode(obj)
	if err != nil {
		return ":invalid"
	}
	return string(buf)
}

func encodeNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// encodeObject writes obj into buf. When cont is true obj is the tail of a
// pair whose group is already open, so no open paren is written for it.
func encodeObject(buf *bytes.Buffer, obj Object, cont bool) error {
	if obj == nil {
		return fmt.Errorf("%w: missing object", ErrInvalidArgument)
	}

	switch o := obj.(type) {
	case *Number:
		buf.WriteString(encodeNumber(o.v))

	case *Symbol:
		buf.WriteString(o.name)

	case *Empty:
		if !cont {
			buf.WriteByte('(')
		}
		buf.WriteByte(')')

	case *Pair:
		if !cont {
			buf.WriteByte('(')
		}
		if err := encodeObject(buf, o.head, false); err != nil {
			return err
		}
		switch tail := o.tail.(type) {
		case *Symbol, *Number:
			buf.WriteString(" . ")
			if err := encodeObject(buf, tail, false); err != nil {
				return err
			}
			buf.WriteByte(')')
		case *Pair:
			buf.WriteByte(' ')
			return encodeObject(buf, tail, true)
		default:
			return encodeObject(buf, tail, true)
		}

	default:
		panic(fmt.Sprintf("unknown object type %T", obj))
	}

	return nil
}

// Dump writes a human-readable tree of obj to w, one node per line.
func Dump(w io.Writer, obj Object) error {
	var buf bytes.Buffer
	dumpLevel(&buf, obj, 0)
	_, err := w.Write(buf.Bytes())
	return err
}

func dumpLevel(buf *bytes.Buffer, obj Object, level int) {
	indent := strings.Repeat("    ", level)
	if obj == nil {
		fmt.Fprintf(buf, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(buf, "%s(%s)", indent, obj.Type())

	switch o := obj.(type) {
	case *Pair:
		buf.WriteByte('\n')
		dumpLevel(buf, o.head, level+1)
		dumpLevel(buf, o.tail, level+1)

	case *Symbol:
		fmt.Fprintf(buf, ": %s\n", o.name)

	case *Number:
		fmt.Fprintf(buf, ": %v\n", o.v)

	case *Empty:
		buf.WriteByte('\n')

	default:
		panic("unknown object type")
	}
}
