package tradelist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"trade-ledger/core/ledger"
)

// ErrInvalidLine is returned for lines that name no card or have a broken printing suffix.
var ErrInvalidLine = errors.New("tradelist: invalid line")

// Line is one requested card movement, e.g. "3 Izzet Charm [RNA]".
type Line struct {
	// Number is the 1-based position of the line in its request.
	Number   int    `json:"number"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	// Printing is empty when any printing is acceptable.
	Printing string `json:"printing,omitempty"`
}

func (l Line) String() string {
	if l.Printing == "" {
		return fmt.Sprintf("%d %s", l.Quantity, l.Name)
	}
	return fmt.Sprintf("%d %s [%s]", l.Quantity, l.Name, l.Printing)
}

// ParseLine parses "<quantity> <card name> [<printing>]".
// The quantity may carry an "x" suffix ("3x") and defaults to 1 when the line
// starts with the card name. The printing suffix is optional.
func ParseLine(text string) (Line, error) {
	text = strings.TrimSpace(text)
	var line Line

	qty, rest, hasQty := splitQuantity(text)
	line.Quantity = 1
	if hasQty {
		n, err := strconv.Atoi(qty)
		if err != nil || n < 0 {
			return Line{}, fmt.Errorf("%w: %q", ledger.ErrInvalidQuantity, qty)
		}
		line.Quantity = n
		text = rest
	}

	if strings.HasSuffix(text, "]") {
		open := strings.LastIndex(text, "[")
		if open < 0 {
			return Line{}, fmt.Errorf("%w: unbalanced printing brackets", ErrInvalidLine)
		}
		line.Printing = strings.ToUpper(strings.TrimSpace(text[open+1 : len(text)-1]))
		if line.Printing == "" {
			return Line{}, fmt.Errorf("%w: empty printing", ErrInvalidLine)
		}
		text = text[:open]
	} else if strings.Contains(text, "[") {
		return Line{}, fmt.Errorf("%w: unbalanced printing brackets", ErrInvalidLine)
	}

	line.Name = strings.Join(strings.Fields(text), " ")
	if line.Name == "" {
		return Line{}, fmt.Errorf("%w: missing card name", ErrInvalidLine)
	}
	return line, nil
}

// splitQuantity separates a leading numeric token from the rest of the line.
// A token starting with a digit, or with "-" and a digit, is a quantity.
// Other leading signs belong to the card name ("+2 Mace").
func splitQuantity(text string) (qty, rest string, ok bool) {
	if text == "" {
		return "", "", false
	}
	digits := text
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" || !unicode.IsDigit(rune(digits[0])) {
		return "", text, false
	}
	qty, rest, _ = strings.Cut(text, " ")
	qty = strings.TrimSuffix(strings.ToLower(qty), "x")
	return qty, rest, true
}

// ParseLines parses a batch of lines. Lines that fail to parse are reported
// as failed results carrying their 1-based number; blank lines are ignored.
func ParseLines(texts []string) ([]Line, []LineResult) {
	var (
		lines    []Line
		failures []LineResult
	)
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		line, err := ParseLine(text)
		if err != nil {
			failures = append(failures, LineResult{
				Line:   Line{Number: i + 1, Name: strings.TrimSpace(text)},
				Status: StatusFailed,
				Reason: err.Error(),
			})
			continue
		}
		line.Number = i + 1
		lines = append(lines, line)
	}
	return lines, failures
}
