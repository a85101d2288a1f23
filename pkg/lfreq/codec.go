// Package lfreq decodes run-length encoded length-frequency histograms
// and expands them into per-size-class rows.
// This is a pure package - decoding and expansion are computation, not I/O.
package lfreq

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrParse indicates a malformed frequency code: a non-numeric token,
// a non-positive class width, or a plus marker whose size is not
// reachable from the minimum size with the given width.
var ErrParse = errors.New("malformed frequency code")

// Point is one decoded size class with its frequency count.
type Point struct {
	Size float64
	Freq float64
}

// sizeEpsilon absorbs float drift when matching plus-marked sizes
// against the generated arithmetic progression.
const sizeEpsilon = 1e-9

// Decode parses one comma-delimited frequency code into size classes.
//
// Token 0 is the class width, token 1 the minimum size. The remaining
// tokens are either plain frequency counts assigned to consecutive size
// classes, or "+<size>" plus markers that open-end the histogram: each
// marker's frequency is the token that follows it, and sizes run from
// the minimum up to and including the largest marked size. Size classes
// with a frequency of zero or less are dropped from the result.
func Decode(code string) ([]Point, error) {
	tokens := strings.Split(code, ",")
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: %q has no width and minimum size", ErrParse, code)
	}

	width, err := parseNum(tokens[0])
	if err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: class width %s is not positive", ErrParse, tokens[0])
	}

	minSize, err := parseNum(tokens[1])
	if err != nil {
		return nil, err
	}

	plusIdx := plusPositions(tokens)
	if len(plusIdx) == 0 {
		return decodePlain(tokens[2:], width, minSize)
	}
	return decodePlus(tokens, plusIdx, width, minSize)
}

// Encode builds the plain-branch representation of a frequency code.
// It is the inverse of Decode for codes without plus markers.
func Encode(width, minSize float64, freqs []float64) string {
	parts := make([]string, 0, len(freqs)+2)
	parts = append(parts, formatNum(width), formatNum(minSize))
	for _, f := range freqs {
		parts = append(parts, formatNum(f))
	}
	return strings.Join(parts, ",")
}

// decodePlain assigns frequencies to consecutive size classes, one
// class per token.
func decodePlain(tokens []string, width, minSize float64) ([]Point, error) {
	res := make([]Point, 0, len(tokens))
	for i, tok := range tokens {
		freq, err := parseNum(tok)
		if err != nil {
			return nil, err
		}
		if freq <= 0 {
			continue
		}
		res = append(res, Point{Size: minSize + float64(i)*width, Freq: freq})
	}
	return res, nil
}

// decodePlus handles codes with one or more plus markers. Sizes run
// from minSize to the largest marked size. A run of two or more plain
// tokens before the first marker fills consecutive classes from the
// start (a lone token is discarded); each marker sets the frequency of
// its own class from the following token.
func decodePlus(tokens []string, plusIdx []int, width, minSize float64) ([]Point, error) {
	maxSize := math.Inf(-1)
	for _, idx := range plusIdx {
		v, err := plusValue(tokens[idx])
		if err != nil {
			return nil, err
		}
		if v > maxSize {
			maxSize = v
		}
	}

	if maxSize < minSize {
		return nil, fmt.Errorf(
			"%w: plus size %s below minimum size %s",
			ErrParse, formatNum(maxSize), formatNum(minSize),
		)
	}
	steps := int(math.Floor((maxSize-minSize)/width+sizeEpsilon)) + 1
	freqs := make([]float64, steps)

	// Plain tokens between the minimum size and the first plus marker
	// are sequential frequencies for the leading size classes. A lone
	// token in that position is not a class frequency in the workbook
	// encoding: it is validated and discarded, leaving the classes
	// before the marked sizes at zero.
	leading := tokens[2:plusIdx[0]]
	if len(leading) > steps {
		return nil, fmt.Errorf(
			"%w: %d leading frequencies for %d size classes",
			ErrParse, len(leading), steps,
		)
	}
	if len(leading) == 1 {
		if _, err := parseNum(leading[0]); err != nil {
			return nil, err
		}
		leading = nil
	}
	for i, tok := range leading {
		freq, err := parseNum(tok)
		if err != nil {
			return nil, err
		}
		freqs[i] = freq
	}

	for _, idx := range plusIdx {
		v, err := plusValue(tokens[idx])
		if err != nil {
			return nil, err
		}
		pos, ok := classIndex(v, minSize, width, steps)
		if !ok {
			return nil, fmt.Errorf(
				"%w: plus size %s not reachable from %s with width %s",
				ErrParse, formatNum(v), formatNum(minSize), formatNum(width),
			)
		}
		if idx+1 >= len(tokens) {
			return nil, fmt.Errorf(
				"%w: plus marker %s has no frequency token", ErrParse, tokens[idx],
			)
		}
		freq, err := parseNum(tokens[idx+1])
		if err != nil {
			return nil, err
		}
		freqs[pos] = freq
	}

	res := make([]Point, 0, steps)
	for i, freq := range freqs {
		if freq <= 0 {
			continue
		}
		res = append(res, Point{Size: minSize + float64(i)*width, Freq: freq})
	}
	return res, nil
}

// plusPositions returns the indices of plus-marked tokens among the
// frequency tokens.
func plusPositions(tokens []string) []int {
	var res []int
	for i := 2; i < len(tokens); i++ {
		tok := strings.TrimSpace(tokens[i])
		if strings.HasPrefix(tok, "+") {
			res = append(res, i)
		}
	}
	return res
}

// classIndex maps a plus-marked size to its position in the generated
// progression, or reports that the size falls between classes.
func classIndex(v, minSize, width float64, steps int) (int, bool) {
	pos := int(math.Round((v - minSize) / width))
	if pos < 0 || pos >= steps {
		return 0, false
	}
	expected := minSize + float64(pos)*width
	if math.Abs(expected-v) > sizeEpsilon*math.Max(1, math.Abs(v)) {
		return 0, false
	}
	return pos, true
}

// plusValue extracts the size a plus-marked token points at.
func plusValue(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	return parseNum(strings.TrimPrefix(tok, "+"))
}

func parseNum(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %q is not a number", ErrParse, tok)
	}
	return v, nil
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
