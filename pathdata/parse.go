package pathdata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errParamMismatch = errors.New("param mismatch")

// Parse turns the content of a `d` attribute into an ordered sequence
// of segments. Parsing is best effort: a command whose parameters are
// missing or not valid numbers is dropped, it never aborts the whole
// path. An empty or whitespace-only input yields an empty path.
func Parse(data string) Path {
	p, _ := parseCommands(data)
	return p
}

// ParseStrict behaves like Parse but reports the commands that were
// dropped. The returned path contains the segments that did decode,
// so a caller may still use it after a non-nil error.
func ParseStrict(data string) (Path, error) {
	p, skipped := parseCommands(data)
	if len(skipped) == 0 {
		return p, nil
	}
	reasons := make([]string, len(skipped))
	for i, err := range skipped {
		reasons[i] = err.Error()
	}
	return p, errors.New("invalid path data: " + strings.Join(reasons, "; "))
}

// parseCommands runs the tokenizer and the decoder, collecting the
// decoded segments and the skip reason of every dropped command.
func parseCommands(data string) (Path, []error) {
	var (
		p       Path
		skipped []error
	)
	for _, raw := range tokenize(data) {
		seg, err := raw.decode()
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		p = append(p, seg)
	}
	return p, skipped
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

// splitAdjacent recovers numbers written without separators by
// starting a new token at every minus sign that is not the first
// character of its token, e.g. "10-5.5-3" -> "10", "-5.5", "-3".
// Exponent forms are deliberately not special-cased: "1e-5" splits
// into "1e" and "-5" and the enclosing command is then dropped by the
// numeric parse.
func splitAdjacent(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		start := 0
		for i := 1; i < len(f); i++ {
			if f[i] == '-' {
				out = append(out, f[start:i])
				start = i
			}
		}
		out = append(out, f[start:])
	}
	return out
}

// arity is the number of values consumed by each command kind;
// extra tokens beyond it are ignored.
func (k Kind) arity() int {
	switch k {
	case KindMove, KindLine:
		return 2
	case KindHLine, KindVLine:
		return 1
	case KindCubic:
		return 6
	default:
		return 0
	}
}

// decode materializes the typed segment of a raw command, validating
// arity. The returned error is the reason the command was skipped.
func (raw rawCommand) decode() (Segment, error) {
	if raw.kind == KindUnknown {
		return nil, fmt.Errorf("content %q without a command letter", raw.params)
	}
	if raw.kind == KindClose {
		return Close{}, nil
	}
	tokens := splitAdjacent(splitOnCommaOrSpace(raw.params))
	arity := raw.kind.arity()
	if len(tokens) < arity {
		return nil, fmt.Errorf("%s command %q: expected %d values, got %d",
			raw.kind, raw.params, arity, len(tokens))
	}
	vals := make([]float64, arity)
	for i := range vals {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%s command %q: %w: %s", raw.kind, raw.params, errParamMismatch, tokens[i])
		}
		vals[i] = v
	}
	switch raw.kind {
	case KindMove:
		return MoveTo{X: vals[0], Y: vals[1], Abs: raw.abs}, nil
	case KindLine:
		return LineTo{X: vals[0], Y: vals[1], Abs: raw.abs}, nil
	case KindHLine:
		return HLineTo{X: vals[0], Abs: raw.abs}, nil
	case KindVLine:
		return VLineTo{Y: vals[0], Abs: raw.abs}, nil
	default: // KindCubic
		return CubicTo{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3], X: vals[4], Y: vals[5], Abs: raw.abs}, nil
	}
}
