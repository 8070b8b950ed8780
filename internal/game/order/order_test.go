package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/ants/internal/game/aim"
)

func TestParse_Valid(t *testing.T) {
	o, err := Parse("o 3 7 e")
	require.NoError(t, err)
	assert.Equal(t, Order{Row: 3, Col: 7, Aim: aim.East}, o)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	o, err := Parse("  o  10\t2 n \r\n")
	require.NoError(t, err)
	assert.Equal(t, Order{Row: 10, Col: 2, Aim: aim.North}, o)
}

func TestParse_Malformed(t *testing.T) {
	for _, line := range []string{
		"",
		"o 1 2",
		"o 1 2 n extra",
		"x 1 2 n",
		"o a 2 n",
		"o 1 b n",
	} {
		_, err := Parse(line)
		assert.ErrorIs(t, err, ErrMalformed, "line %q", line)
	}
}

func TestParse_UnknownAim(t *testing.T) {
	_, err := Parse("o 1 2 N")
	assert.ErrorIs(t, err, aim.ErrUnknownSymbol)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestString(t *testing.T) {
	assert.Equal(t, "o 4 5 s", Order{Row: 4, Col: 5, Aim: aim.South}.String())
}

func TestTargetAndReverse(t *testing.T) {
	o := Order{Row: 4, Col: 5, Aim: aim.West}
	row, col := o.Target()
	assert.Equal(t, 4, row)
	assert.Equal(t, 4, col)

	back := o.Reverse()
	assert.Equal(t, Order{Row: 4, Col: 4, Aim: aim.East}, back)
	row, col = back.Target()
	assert.Equal(t, 4, row)
	assert.Equal(t, 5, col)
}

func TestZeroOrderMovesNorth(t *testing.T) {
	row, col := Order{}.Target()
	assert.Equal(t, -1, row)
	assert.Equal(t, 0, col)
}

func TestMarshalLogObject(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	o := Order{Row: 2, Col: 3, Aim: aim.South}
	zap.New(core).Debug("order", zap.Object("order", o))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields, ok := entries[0].ContextMap()["order"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, int64(2), fields["row"])
	assert.Equal(t, int64(3), fields["col"])
	assert.Equal(t, "south", fields["aim"])
	assert.Equal(t, int64(3), fields["target_row"])
	assert.Equal(t, int64(3), fields["target_col"])
}

func TestPropertyStringParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		all := aim.All()
		o := Order{
			Row: rapid.IntRange(-500, 500).Draw(t, "row"),
			Col: rapid.IntRange(-500, 500).Draw(t, "col"),
			Aim: all[rapid.IntRange(0, len(all)-1).Draw(t, "aim_idx")],
		}
		got, err := Parse(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	})
}

func TestPropertyReverseIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		all := aim.All()
		o := Order{
			Row: rapid.IntRange(-500, 500).Draw(t, "row"),
			Col: rapid.IntRange(-500, 500).Draw(t, "col"),
			Aim: all[rapid.IntRange(0, len(all)-1).Draw(t, "aim_idx")],
		}
		assert.Equal(t, o, o.Reverse().Reverse())
	})
}
