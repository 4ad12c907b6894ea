// Package instset loads Avida-style instruction-set tables and converts
// organism genomes between their two encodings: the compact symbol string
// (one character per instruction) and the readable name listing (one
// instruction name per line).
//
// A table file is whitespace- and comma-tolerant text. An optional header
// line declares the column order using any subset of the literal tokens
// "index", "id", "char" and "name"; without a header the columns are
// assumed to be index, id, char, name in that order. The loaded Table is
// immutable and safe for concurrent readers.
package instset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Default column positions for headerless table files.
const (
	defaultIndexCol = 0
	defaultIDCol    = 1
	defaultCharCol  = 2
	defaultNameCol  = 3
)

// Instruction is one row of an instruction-set table: a single operation
// of the virtual hardware, identified four ways.
type Instruction struct {
	Index int    // position within the instruction set
	ID    int    // numeric id used by the simulator
	Char  rune   // one-character genome symbol
	Name  string // human-readable name, e.g. "nop-A"
}

func (in Instruction) String() string {
	return fmt.Sprintf("[index: %d, id: %d, char: %c, name: %s]", in.Index, in.ID, in.Char, in.Name)
}

// Table holds a loaded instruction set, indexed by each of the four
// record attributes. All four maps share the same records. A Table is
// read-only once built; conversions are pure lookups over it.
type Table struct {
	byIndex map[int]*Instruction
	byID    map[int]*Instruction
	byChar  map[rune]*Instruction
	byName  map[string]*Instruction
}

func newTable() *Table {
	return &Table{
		byIndex: make(map[int]*Instruction),
		byID:    make(map[int]*Instruction),
		byChar:  make(map[rune]*Instruction),
		byName:  make(map[string]*Instruction),
	}
}

// insert registers a record under all four keys. Duplicate keys are
// overwritten, last loaded wins; callers should treat duplicates in a
// table file as a data error.
func (t *Table) insert(in *Instruction) {
	t.byIndex[in.Index] = in
	t.byID[in.ID] = in
	t.byChar[in.Char] = in
	t.byName[in.Name] = in
}

// ByIndex looks up an instruction by its set position.
func (t *Table) ByIndex(index int) (*Instruction, bool) {
	in, ok := t.byIndex[index]
	return in, ok
}

// ByID looks up an instruction by its simulator id.
func (t *Table) ByID(id int) (*Instruction, bool) {
	in, ok := t.byID[id]
	return in, ok
}

// ByChar looks up an instruction by its genome symbol.
func (t *Table) ByChar(c rune) (*Instruction, bool) {
	in, ok := t.byChar[c]
	return in, ok
}

// ByName looks up an instruction by its full name.
func (t *Table) ByName(name string) (*Instruction, bool) {
	in, ok := t.byName[name]
	return in, ok
}

// Len returns the number of loaded instructions.
func (t *Table) Len() int { return len(t.byChar) }

// Instructions returns the loaded records sorted by index.
func (t *Table) Instructions() []*Instruction {
	out := make([]*Instruction, 0, len(t.byIndex))
	for _, in := range t.byIndex {
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// CharsToNames converts a symbol string into a name listing, one name per
// line with every line newline-terminated. The input has no delimiters;
// every rune is a symbol. A symbol missing from the table fails the whole
// conversion with an *UnknownSymbolError and no partial output.
func (t *Table) CharsToNames(s string) (string, error) {
	var b strings.Builder
	pos := 0
	for _, c := range s {
		in, ok := t.byChar[c]
		if !ok {
			return "", &UnknownSymbolError{Char: c, Pos: pos}
		}
		b.WriteString(in.Name)
		b.WriteByte('\n')
		pos++
	}
	return b.String(), nil
}

// NamesToChars converts an ordered name listing into a symbol string with
// no separators. Entries are trimmed first; blank entries are skipped and
// contribute nothing. An unknown name fails the whole conversion with an
// *UnknownNameError and no partial output.
func (t *Table) NamesToChars(names []string) (string, error) {
	var b strings.Builder
	for i, s := range names {
		s = strings.TrimSpace(s)
		if len(s) == 0 {
			continue
		}
		in, ok := t.byName[s]
		if !ok {
			return "", &UnknownNameError{Name: s, Line: i + 1}
		}
		b.WriteRune(in.Char)
	}
	return b.String(), nil
}

// Loader parses instruction-set table files, echoing each loaded record
// through its logger at debug level.
type Loader struct {
	log *zap.Logger
}

// NewLoader returns a Loader logging through log. A nil log disables the
// per-record echo.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Load reads and parses the table file at path.
func (l *Loader) Load(path string) (*Table, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open instruction set: %w", err)
	}
	defer f.Close()
	return l.Parse(f)
}

// Load reads the table file at path without per-record logging.
func Load(path string) (*Table, []Warning, error) {
	return NewLoader(nil).Load(path)
}

// columns records where each attribute lives on a data line.
type columns struct {
	index, id, char, name int
}

func defaultColumns() columns {
	return columns{
		index: defaultIndexCol,
		id:    defaultIDCol,
		char:  defaultCharCol,
		name:  defaultNameCol,
	}
}

// max returns the highest column position any attribute needs.
func (c columns) max() int {
	m := c.index
	for _, v := range []int{c.id, c.char, c.name} {
		if v > m {
			m = v
		}
	}
	return m
}

// Parse reads a whole table from r. It returns the table, any warnings
// produced while reading the header, and the first fatal parse error.
func (l *Loader) Parse(r io.Reader) (*Table, []Warning, error) {
	t := newTable()
	cols := defaultColumns()
	var warnings []Warning

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := splitFields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if lineNo == 1 && !isNumeric(fields[0]) {
			// Header line: record the declared column order. Tokens
			// other than the four known names are reported, not fatal.
			for i, tok := range fields {
				switch tok {
				case "index":
					cols.index = i
				case "id":
					cols.id = i
				case "char":
					cols.char = i
				case "name":
					cols.name = i
				default:
					warnings = append(warnings, Warning{Column: tok, Pos: i})
				}
			}
			l.log.Debug("parsed table header",
				zap.Int("index_col", cols.index),
				zap.Int("id_col", cols.id),
				zap.Int("char_col", cols.char),
				zap.Int("name_col", cols.name))
			continue
		}
		if lineNo == 1 {
			l.log.Debug("no table header detected, using default column order")
		}

		in, err := parseRecord(fields, cols, lineNo)
		if err != nil {
			return nil, warnings, err
		}
		t.insert(in)
		l.log.Debug("loaded instruction", zap.Stringer("inst", in))
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("read instruction set: %w", err)
	}
	if lineNo == 0 {
		return nil, warnings, fmt.Errorf("instruction set is empty")
	}
	return t, warnings, nil
}

// parseRecord builds one Instruction from a split data line.
func parseRecord(fields []string, cols columns, lineNo int) (*Instruction, error) {
	if len(fields) <= cols.max() {
		return nil, &ParseError{Line: lineNo, Field: "row", Token: strings.Join(fields, " ")}
	}
	index, err := strconv.Atoi(fields[cols.index])
	if err != nil {
		return nil, &ParseError{Line: lineNo, Field: "index", Token: fields[cols.index]}
	}
	id, err := strconv.Atoi(fields[cols.id])
	if err != nil {
		return nil, &ParseError{Line: lineNo, Field: "id", Token: fields[cols.id]}
	}
	charTok := fields[cols.char]
	if utf8.RuneCountInString(charTok) != 1 {
		return nil, &ParseError{Line: lineNo, Field: "char", Token: charTok}
	}
	c, _ := utf8.DecodeRuneInString(charTok)
	return &Instruction{
		Index: index,
		ID:    id,
		Char:  c,
		Name:  fields[cols.name],
	}, nil
}

// splitFields strips commas from a line and splits it on whitespace.
func splitFields(line string) []string {
	return strings.Fields(strings.ReplaceAll(line, ",", ""))
}

// isNumeric reports whether tok is all digits, the header check used to
// tell a data row from a header line.
func isNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
