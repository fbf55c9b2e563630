package ast

// ObjectType represents the type of a tree node
type ObjectType uint16

// Object types
const (
	objectTypeAtom ObjectType = 128
	objectTypeList ObjectType = 256

	TypeSymbol = objectTypeAtom | 1
	TypeNumber = objectTypeAtom | 2

	TypePair  = objectTypeList | 1
	TypeEmpty = objectTypeList | 2
)

// IsAtom returns true for symbols and numbers.
func (ot ObjectType) IsAtom() bool {
	return ot&objectTypeAtom > 0
}

// IsList returns true for pairs and the empty list.
func (ot ObjectType) IsList() bool {
	return ot&objectTypeList > 0
}

func (ot ObjectType) String() string {
	s, ok := objectTypeName[ot]
	if ok {
		return s
	}
	return ""
}

var objectTypeName = map[ObjectType]string{
	TypeSymbol: "symbol",
	TypeNumber: "number",
	TypePair:   "pair",
	TypeEmpty:  "empty",
}
