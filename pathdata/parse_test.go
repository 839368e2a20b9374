package pathdata

import (
	"reflect"
	"strings"
	"testing"
)

func assertPath(t *testing.T, data string, expected Path) {
	t.Helper()
	got := Parse(data)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Parse(%q) = %v, expected %v", data, got, expected)
	}
}

func TestParseAbsolute(t *testing.T) {
	assertPath(t, "M1 2L3 4", Path{
		MoveTo{X: 1, Y: 2, Abs: true},
		LineTo{X: 3, Y: 4, Abs: true},
	})
}

func TestParseRelative(t *testing.T) {
	assertPath(t, "m1 2l3 4", Path{
		MoveTo{X: 1, Y: 2},
		LineTo{X: 3, Y: 4},
	})
}

func TestParseAdjacentNumbers(t *testing.T) {
	assertPath(t, "M1-2L3-4", Path{
		MoveTo{X: 1, Y: -2, Abs: true},
		LineTo{X: 3, Y: -4, Abs: true},
	})
	assertPath(t, "m10-5.5-3 4", Path{
		MoveTo{X: 10, Y: -5.5},
	})
}

func TestParseSeparators(t *testing.T) {
	expected := Path{
		MoveTo{X: 1, Y: 2, Abs: true},
		LineTo{X: 3, Y: 4, Abs: true},
	}
	for _, data := range []string{
		"M 1,2 L 3 4",
		"M1,2L3,4",
		"M  1 , 2  L,3,,4",
	} {
		assertPath(t, data, expected)
	}
}

func TestParseClose(t *testing.T) {
	assertPath(t, "M0 0L1 1Z", Path{
		MoveTo{Abs: true},
		LineTo{X: 1, Y: 1, Abs: true},
		Close{},
	})
	// z is emitted eagerly, whatever follows it
	assertPath(t, "M0 0z 5", Path{
		MoveTo{Abs: true},
		Close{},
	})
}

func TestParseHorizontalVertical(t *testing.T) {
	assertPath(t, "M0 0H10v-2.5", Path{
		MoveTo{Abs: true},
		HLineTo{X: 10, Abs: true},
		VLineTo{Y: -2.5},
	})
}

func TestParseCubic(t *testing.T) {
	assertPath(t, "M0 0C1 2 3 4 5 6c-1-2-3-4-5-6", Path{
		MoveTo{Abs: true},
		CubicTo{X1: 1, Y1: 2, X2: 3, Y2: 4, X: 5, Y: 6, Abs: true},
		CubicTo{X1: -1, Y1: -2, X2: -3, Y2: -4, X: -5, Y: -6},
	})
}

func TestParseDropsMalformedCommands(t *testing.T) {
	for _, data := range []string{
		"L5",          // missing arity
		"L1 x",        // not a number
		"C1 2 3 4 5",  // one value short of a cubic
		"5 6",         // content before any command letter
		"M1e-5 2 L5x", // exponent split limitation, then junk
	} {
		assertPath(t, data, nil)
	}
	// a malformed command degrades the path, it does not abort it
	assertPath(t, "M1 2L5L3 4", Path{
		MoveTo{X: 1, Y: 2, Abs: true},
		LineTo{X: 3, Y: 4, Abs: true},
	})
}

func TestParseExtraTokensIgnored(t *testing.T) {
	// no implicit command repetition: one segment per letter
	assertPath(t, "L10 10 20 20", Path{
		LineTo{X: 10, Y: 10, Abs: true},
	})
}

func TestParseExponentLimitation(t *testing.T) {
	// the adjacency split does not special-case exponents: "1e-5"
	// becomes "1e" and "-5", and the command is dropped
	assertPath(t, "M1e-5 2", nil)
}

func TestParseEmpty(t *testing.T) {
	for _, data := range []string{"", "   ", " , "} {
		if got := Parse(data); len(got) != 0 {
			t.Errorf("Parse(%q) = %v, expected empty path", data, got)
		}
	}
}

func TestParseOrderPreserved(t *testing.T) {
	got := Parse("M0 0L1 1H2V3C1 2 3 4 5 6Z")
	expected := []Kind{KindMove, KindLine, KindHLine, KindVLine, KindCubic, KindClose}
	if len(got) != len(expected) {
		t.Fatalf("got %d segments, expected %d", len(got), len(expected))
	}
	for i, seg := range got {
		if seg.Kind() != expected[i] {
			t.Errorf("segment %d: got %s, expected %s", i, seg.Kind(), expected[i])
		}
	}
}

func TestParseStrict(t *testing.T) {
	p, err := ParseStrict("M1 2L3 4Z")
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 3 {
		t.Errorf("expected 3 segments, got %v", p)
	}

	p, err = ParseStrict("M1 2L5")
	if err == nil {
		t.Error("expected an error for a short line command")
	}
	if !strings.Contains(err.Error(), "Line") {
		t.Errorf("error should name the dropped command: %s", err)
	}
	// decoded segments are still returned
	if !reflect.DeepEqual(p, Path{MoveTo{X: 1, Y: 2, Abs: true}}) {
		t.Errorf("unexpected partial path %v", p)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, data := range []string{
		"M1 2L3 4Z",
		"m1.5-2.25l3 4h5v-6",
		"M0 0C1 2 3 4 5 6c-1-2-3-4-5-6z",
		"M 1,2 3,4",
	} {
		first := Parse(data)
		second := Parse(first.ToSVGPath())
		if !reflect.DeepEqual(first, second) {
			t.Errorf("round trip of %q: %v != %v", data, first, second)
		}
	}
}

func TestTokenize(t *testing.T) {
	raws := tokenize("M1 2L3 4Z")
	expected := []rawCommand{
		{kind: KindMove, params: "1 2", abs: true},
		{kind: KindLine, params: "3 4", abs: true},
		{kind: KindClose, abs: true},
	}
	if !reflect.DeepEqual(raws, expected) {
		t.Errorf("tokenize: got %v, expected %v", raws, expected)
	}

	// unsupported letters are not command characters: their content is
	// absorbed into the surrounding parameter text
	raws = tokenize("M1 2A3 4")
	if len(raws) != 1 || raws[0].params != "1 2A3 4" {
		t.Errorf("unexpected raw commands %v", raws)
	}
}

func TestSplitAdjacent(t *testing.T) {
	got := splitAdjacent([]string{"10-5.5-3", "-4", "7"})
	expected := []string{"10", "-5.5", "-3", "-4", "7"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("splitAdjacent: got %v, expected %v", got, expected)
	}
}
