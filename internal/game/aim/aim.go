// Package aim provides the four cardinal directions an ant can move in on the grid.
package aim

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSymbol is returned when a rune does not name any aim.
var ErrUnknownSymbol = errors.New("unknown aim symbol")

// Aim is one of the four cardinal movement directions.
// The zero value is North.
type Aim uint8

// The four aims. No other values are valid.
const (
	North Aim = iota
	East
	South
	West
)

type entry struct {
	name     string
	rowDelta int
	colDelta int
	symbol   rune
	opposite Aim
}

var table = [...]entry{
	North: {name: "north", rowDelta: -1, colDelta: 0, symbol: 'n', opposite: South},
	East:  {name: "east", rowDelta: 0, colDelta: 1, symbol: 'e', opposite: West},
	South: {name: "south", rowDelta: 1, colDelta: 0, symbol: 's', opposite: North},
	West:  {name: "west", rowDelta: 0, colDelta: -1, symbol: 'w', opposite: East},
}

// All returns the four aims in table order.
//
// Postcondition: Returns a new slice of length 4 on every call.
func All() []Aim {
	return []Aim{North, East, South, West}
}

// Valid reports whether a is one of the four aims.
func (a Aim) Valid() bool {
	return int(a) < len(table)
}

// RowDelta returns the change in row index for one step in this direction.
// Invalid aims have a zero delta.
func (a Aim) RowDelta() int {
	if !a.Valid() {
		return 0
	}
	return table[a].rowDelta
}

// ColDelta returns the change in column index for one step in this direction.
// Invalid aims have a zero delta.
func (a Aim) ColDelta() int {
	if !a.Valid() {
		return 0
	}
	return table[a].colDelta
}

// Symbol returns the one-character wire encoding of a.
// Invalid aims return utf8.RuneError.
func (a Aim) Symbol() rune {
	if !a.Valid() {
		return utf8.RuneError
	}
	return table[a].symbol
}

// Opposite returns the aim whose delta negates a's delta.
// An invalid aim is returned unchanged.
func (a Aim) Opposite() Aim {
	if !a.Valid() {
		return a
	}
	return table[a].opposite
}

// Step returns the grid position one step from (row, col) in direction a.
func (a Aim) Step(row, col int) (int, int) {
	return row + a.RowDelta(), col + a.ColDelta()
}

// String returns the lowercase name of a.
func (a Aim) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Aim(%d)", uint8(a))
	}
	return table[a].name
}

// FromSymbol returns the aim whose symbol is c.
//
// Postcondition: Returns (aim, nil) for 'n', 'e', 's', 'w'; otherwise an error
// wrapping ErrUnknownSymbol. No default aim is ever substituted.
func FromSymbol(c rune) (Aim, error) {
	switch c {
	case 'n':
		return North, nil
	case 'e':
		return East, nil
	case 's':
		return South, nil
	case 'w':
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, c)
}

// ParseSymbol returns the aim encoded by s, which must hold exactly one symbol.
func ParseSymbol(s string) (Aim, error) {
	c, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
	}
	return FromSymbol(c)
}

// MarshalText encodes a as its symbol.
func (a Aim) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("marshalling %s: invalid aim", a)
	}
	return []byte(string(a.Symbol())), nil
}

// UnmarshalText decodes a symbol into a.
func (a *Aim) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML encodes a as its symbol.
func (a Aim) MarshalYAML() (interface{}, error) {
	text, err := a.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML decodes a scalar symbol node into a.
func (a *Aim) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: aim must be a scalar", value.Line)
	}
	parsed, err := ParseSymbol(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*a = parsed
	return nil
}
