package instset

import "fmt"

// ParseError reports a malformed data line in a table file: a
// non-integer index or id field, an over-long char field, or a row with
// too few columns.
type ParseError struct {
	Line  int    // 1-based line number in the table file
	Field string // "index", "id", "char" or "row"
	Token string // the offending token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("instruction set line %d: malformed %s field %q", e.Line, e.Field, e.Token)
}

// UnknownSymbolError reports a genome symbol with no table entry during a
// symbol-to-name conversion.
type UnknownSymbolError struct {
	Char rune
	Pos  int // 0-based rune position in the input string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q at position %d", e.Char, e.Pos)
}

// UnknownNameError reports an instruction name with no table entry during
// a name-to-symbol conversion.
type UnknownNameError struct {
	Name string
	Line int // 1-based entry position in the input listing
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown name %q at line %d", e.Name, e.Line)
}

// Warning reports an unrecognized header token. Warnings never abort a
// load; they are returned alongside the table for the caller to surface.
type Warning struct {
	Column string // the unrecognized header token
	Pos    int    // 0-based column position
}

func (w Warning) String() string {
	return fmt.Sprintf("unknown column %q at position %d", w.Column, w.Pos)
}
