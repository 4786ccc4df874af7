package parse

import "strings"

// Letter codes for the square colours.
const (
	Yellow = "Y"
	Black  = "B"
	White  = "W"
	Green  = "G"
)

// symbolToLetter lists every known encoding of the four squares. Longer
// forms come first so a trailing variation selector is consumed.
var symbolToLetter = []struct {
	symbol string
	letter string
}{
	{"\U0001F7E8", Yellow},
	{"<0001f7e8>", Yellow},
	{"<0001F7E8>", Yellow},
	{"\u2B1B\uFE0F", Black},
	{"\u2B1B", Black},
	{"<00002B1B>", Black},
	{"<00002b1b>", Black},
	{"\u2B1C\uFE0F", White},
	{"\u2B1C", White},
	{"<00002B1C>", White},
	{"<00002b1c>", White},
	{"\U0001F7E9", Green},
	{"<0001f7e9>", Green},
	{"<0001F7E9>", Green},
}

var letterToSymbol = map[string]string{
	Yellow: "\U0001F7E8",
	Black:  "\u2B1B",
	White:  "\u2B1C",
	Green:  "\U0001F7E9",
}

var (
	decoder = newDecoder()
	encoder = strings.NewReplacer(
		Yellow, letterToSymbol[Yellow],
		Black, letterToSymbol[Black],
		White, letterToSymbol[White],
		Green, letterToSymbol[Green],
	)
)

func newDecoder() *strings.Replacer {
	pairs := make([]string, 0, len(symbolToLetter)*2)
	for _, s := range symbolToLetter {
		pairs = append(pairs, s.symbol, s.letter)
	}
	return strings.NewReplacer(pairs...)
}

// MapRow replaces every known square symbol in row with its letter code.
// Anything else is kept as is.
func MapRow(row string) string {
	return decoder.Replace(row)
}

// MapGrid maps each row of a grid to letter codes.
func MapGrid(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = MapRow(row)
	}
	return out
}

// EncodeGrid turns letter-coded rows back into emoji squares.
func EncodeGrid(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = encoder.Replace(row)
	}
	return out
}

// isGridLine reports whether a share line belongs to the guess grid: it
// holds a known square, or it has no ASCII text at all (other square
// colours such as high-contrast mode).
func isGridLine(line string) bool {
	if MapRow(line) != line {
		return true
	}
	for _, r := range line {
		if r < 0x80 && r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
