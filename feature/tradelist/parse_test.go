package tradelist

import (
	"testing"

	"trade-ledger/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Line
	}{
		{"QuantityAndName", "3 Izzet Charm", Line{Quantity: 3, Name: "Izzet Charm"}},
		{"WithPrinting", "3 Izzet Charm [rna]", Line{Quantity: 3, Name: "Izzet Charm", Printing: "RNA"}},
		{"XSuffix", "4x Boros Charm", Line{Quantity: 4, Name: "Boros Charm"}},
		{"NoQuantity", "Izzet Charm", Line{Quantity: 1, Name: "Izzet Charm"}},
		{"ZeroQuantity", "0 Izzet Charm", Line{Quantity: 0, Name: "Izzet Charm"}},
		{"PlusSignInName", "+2 Mace", Line{Quantity: 1, Name: "+2 Mace"}},
		{"QuantityBeforeSignedName", "2 +2 Mace", Line{Quantity: 2, Name: "+2 Mace"}},
		{"DashName", "- Izzet Charm", Line{Quantity: 1, Name: "- Izzet Charm"}},
		{"ExtraSpaces", "  2   Fire  //  Ice  [ MH2 ] ", Line{Quantity: 2, Name: "Fire // Ice", Printing: "MH2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"Negative", "-2 Izzet Charm", ledger.ErrInvalidQuantity},
		{"NotANumber", "3a Izzet Charm", ledger.ErrInvalidQuantity},
		{"Overflow", "99999999999999999999 Izzet Charm", ledger.ErrInvalidQuantity},
		{"OnlyQuantity", "3", ErrInvalidLine},
		{"EmptyPrinting", "3 Izzet Charm []", ErrInvalidLine},
		{"Unbalanced", "3 Izzet Charm [RNA", ErrInvalidLine},
		{"MissingOpen", "3 Izzet Charm RNA]", ErrInvalidLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.text)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseLines(t *testing.T) {
	lines, failures := ParseLines([]string{
		"3 Izzet Charm",
		"",
		"-1 Boros Charm",
		"2 Izzet Charm [RNA]",
	})

	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, 4, lines[1].Number)

	require.Len(t, failures, 1)
	assert.Equal(t, 3, failures[0].Line.Number)
	assert.Equal(t, StatusFailed, failures[0].Status)
	assert.Contains(t, failures[0].Reason, "invalid quantity")
}
