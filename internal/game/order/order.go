// Package order parses and formats ant movement orders of the form "o <row> <col> <aim>".
package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/ants/internal/game/aim"
)

// ErrMalformed is returned when an order line does not have the expected shape.
var ErrMalformed = errors.New("malformed order")

const prefix = "o"

// Order moves the ant at (Row, Col) one step in direction Aim.
type Order struct {
	Row int
	Col int
	Aim aim.Aim
}

// Parse decodes a single order line.
//
// Precondition: line holds exactly one order; surrounding whitespace is ignored.
// Postcondition: Returns the decoded Order, or an error wrapping ErrMalformed
// or aim.ErrUnknownSymbol.
func Parse(line string) (Order, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Order{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformed, len(fields))
	}
	if fields[0] != prefix {
		return Order{}, fmt.Errorf("%w: expected %q prefix, got %q", ErrMalformed, prefix, fields[0])
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return Order{}, fmt.Errorf("%w: row %q: %v", ErrMalformed, fields[1], err)
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return Order{}, fmt.Errorf("%w: col %q: %v", ErrMalformed, fields[2], err)
	}

	a, err := aim.ParseSymbol(fields[3])
	if err != nil {
		return Order{}, fmt.Errorf("order at %d,%d: %w", row, col, err)
	}

	return Order{Row: row, Col: col, Aim: a}, nil
}

// String formats o as an order line without a trailing newline.
func (o Order) String() string {
	return fmt.Sprintf("%s %d %d %c", prefix, o.Row, o.Col, o.Aim.Symbol())
}

// Target returns the position the ant reaches after carrying out o.
func (o Order) Target() (int, int) {
	return o.Aim.Step(o.Row, o.Col)
}

// Reverse returns the order that moves the ant from Target back to its origin.
func (o Order) Reverse() Order {
	row, col := o.Target()
	return Order{Row: row, Col: col, Aim: o.Aim.Opposite()}
}

// MarshalLogObject logs o with its destination.
func (o Order) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	row, col := o.Target()
	enc.AddInt("row", o.Row)
	enc.AddInt("col", o.Col)
	enc.AddString("aim", o.Aim.String())
	enc.AddInt("target_row", row)
	enc.AddInt("target_col", col)
	return nil
}
