package schema

import (
	"fmt"
	"strings"
)

// Type describes a column's SQL type.
//
// Decorated types (Impl != nil) keep their own Name for display and defer
// storage semantics to Impl. Array types set Elem.
type Type struct {
	Name      string
	Length    int
	Collation string
	Elem      *Type
	Impl      *Type
}

// Generic types.
var (
	Integer      = Type{Name: "INTEGER"}
	SmallInteger = Type{Name: "SMALLINT"}
	BigInteger   = Type{Name: "BIGINT"}
	Boolean      = Type{Name: "BOOLEAN"}
	Char         = Type{Name: "CHAR"}
	Float        = Type{Name: "FLOAT"}
	Text         = Type{Name: "TEXT"}
)

// String returns a VARCHAR type of the given length.
func String(length int) Type {
	return Type{Name: "VARCHAR", Length: length}
}

// Array returns an array type of elem.
func Array(elem Type) Type {
	return Type{Name: "ARRAY", Elem: &elem}
}

// Decorate returns a named type backed by impl.
func Decorate(name string, impl Type) Type {
	return Type{Name: name, Impl: &impl}
}

// Collate returns a copy of t with the given collation.
func (t Type) Collate(collation string) Type {
	t.Collation = collation
	return t
}

// Storage returns the innermost implementation of a decorated type.
func (t Type) Storage() Type {
	for t.Impl != nil {
		t = *t.Impl
	}
	return t
}

// IsArray reports whether the stored type is an array.
func (t Type) IsArray() bool {
	return t.Storage().Elem != nil
}

// DDL renders the storage type as it would appear in a column definition.
func (t Type) DDL() string {
	s := t.Storage()

	var b strings.Builder
	switch {
	case s.Elem != nil:
		b.WriteString(s.Elem.DDL())
		b.WriteString("[]")
	case s.Length > 0:
		fmt.Fprintf(&b, "%s(%d)", s.Name, s.Length)
	default:
		b.WriteString(s.Name)
	}
	if s.Collation != "" {
		fmt.Fprintf(&b, " COLLATE %q", s.Collation)
	}
	return b.String()
}

// String returns the declared type name; decorated types show their own name.
func (t Type) String() string {
	if t.Impl != nil {
		return t.Name
	}
	return t.DDL()
}
