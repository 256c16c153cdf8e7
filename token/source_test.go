package token

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func kinds(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func kindsEqual(got, want []TokenType) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestIndentRoundTrip(t *testing.T) {
	s := "a\n  b\n    c\nd\n"
	toks, err := Tokenize(nil, []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{
		TWord, TEndOfLine,
		TIndent, TWord, TEndOfLine,
		TIndent, TWord, TEndOfLine,
		TOutdent, TOutdent, TWord, TEndOfLine,
	}
	if !kindsEqual(kinds(toks), want) {
		t.Errorf("`%s` gave %v, want %v", s, kinds(toks), want)
	}
}

// adding blank lines, comments and trailing whitespace is a no-op
func TestReformatNoOp(t *testing.T) {
	a := "a\n  b\n"
	b := "# header\na   \n\n  # note\n  b  # trailing\n\n"
	aToks, err := Tokenize(nil, []byte(a))
	if err != nil {
		t.Fatal(err)
	}
	bToks, err := Tokenize(nil, []byte(b))
	if err != nil {
		t.Fatal(err)
	}
	if len(aToks) != len(bToks) {
		t.Fatalf("got %d vs %d tokens", len(aToks), len(bToks))
	}
	for i := range aToks {
		if !aToks[i].Equal(&bToks[i]) {
			t.Errorf("token %d: %s != %s", i, aToks[i].Info(), bToks[i].Info())
		}
	}
}

func TestBracketsSuppressLineStructure(t *testing.T) {
	s := "f(\n  1,\n  2\n)\n"
	toks, err := Tokenize(nil, []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{
		TWord, TSymbol, TInteger, TSymbol, TInteger, TSymbol, TEndOfLine,
	}
	if !kindsEqual(kinds(toks), want) {
		t.Errorf("`%s` gave %v, want %v", s, kinds(toks), want)
	}
	eols := 0
	for i := range toks {
		if toks[i].Type == TEndOfLine {
			eols++
		}
	}
	if eols != 1 {
		t.Errorf("`%s` gave %d EOLs, want 1", s, eols)
	}
}

func TestMultiLineStringAdvancesLine(t *testing.T) {
	s := "x = '''a\nb'''\ny = 1\n"
	toks, err := Tokenize(nil, []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{
		TWord, TSymbol, TString, TEndOfLine,
		TWord, TSymbol, TInteger, TEndOfLine,
	}
	if !kindsEqual(kinds(toks), want) {
		t.Fatalf("`%s` gave %v, want %v", s, kinds(toks), want)
	}
	str := toks[2]
	if str.Prefix != "" || str.Content != `a\nb` {
		t.Errorf("string gave (%q, %q), want (\"\", `a\\nb`)", str.Prefix, str.Content)
	}
	if str.Line != 1 {
		t.Errorf("string on line %d, want 1 (opening quote)", str.Line)
	}
	if toks[3].Line != 2 {
		t.Errorf("EOL on line %d, want 2 (closing line)", toks[3].Line)
	}
	if toks[4].Line != 3 {
		t.Errorf("y on line %d, want 3", toks[4].Line)
	}
}

func TestInconsistentIndent(t *testing.T) {
	s := "a\n    b\n  c\n"
	_, err := Tokenize(nil, []byte(s))
	if !errors.Is(err, ErrIndent) {
		t.Fatalf("`%s` gave %v, want ErrIndent", s, err)
	}
	te := &TokenizeErr{}
	if !errors.As(err, &te) {
		t.Fatalf("`%s` gave %T, want *TokenizeErr", s, err)
	}
	if te.Line != 3 {
		t.Errorf("error at line %d, want 3", te.Line)
	}
}

func TestMismatchedBracket(t *testing.T) {
	ib := &ErrImbalancedBracket{}

	_, err := Tokenize(nil, []byte("(]\n"))
	if !errors.Is(err, ErrBracket) {
		t.Fatalf("(] gave %v, want ErrBracket", err)
	}
	if !errors.As(err, &ib) {
		t.Fatalf("(] gave %T, want *ErrImbalancedBracket", err)
	}
	if ib.Open != '(' || ib.Close != ']' {
		t.Errorf("(] gave open %q close %q", string(ib.Open), string(ib.Close))
	}

	_, err = Tokenize(nil, []byte("x)\n"))
	if !errors.Is(err, ErrBracket) {
		t.Fatalf("x) gave %v, want ErrBracket", err)
	}
	if !errors.As(err, &ib) {
		t.Fatalf("x) gave %T, want *ErrImbalancedBracket", err)
	}
	if ib.Open != 0 || ib.Close != ')' {
		t.Errorf("x) gave open %q close %q, want no open context", string(ib.Open), string(ib.Close))
	}
}

func TestUnrecognizedText(t *testing.T) {
	_, err := Tokenize(nil, []byte("a\nb $ c\n"))
	if !errors.Is(err, ErrUnrecognized) {
		t.Fatalf("gave %v, want ErrUnrecognized", err)
	}
	te := &TokenizeErr{}
	if !errors.As(err, &te) {
		t.Fatalf("gave %T, want *TokenizeErr", err)
	}
	if te.Line != 2 || !strings.HasPrefix(te.Text, "$") {
		t.Errorf("gave line %d text %q, want line 2 text starting with $", te.Line, te.Text)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := Tokenize(nil, []byte("x = '''abc\ndef\n"))
	if !errors.Is(err, ErrUnterminated) {
		t.Fatalf("gave %v, want ErrUnterminated", err)
	}
	te := &TokenizeErr{}
	if !errors.As(err, &te) {
		t.Fatalf("gave %T, want *TokenizeErr", err)
	}
	if te.Line != 1 {
		t.Errorf("error at line %d, want 1 (opening quote)", te.Line)
	}
}

// errors are sticky: once a run fails, Next keeps failing
func TestNextAfterError(t *testing.T) {
	ts := NewTokenSource(strings.NewReader("$\n"))
	_, err := ts.Next()
	if !errors.Is(err, ErrUnrecognized) {
		t.Fatalf("gave %v, want ErrUnrecognized", err)
	}
	_, err2 := ts.Next()
	if err2 != err {
		t.Errorf("second Next gave %v, want the same error", err2)
	}
}

func TestNextDeliversOneTokenPerCall(t *testing.T) {
	ts := NewTokenSource(strings.NewReader("a\n      b\nc\n"))
	var toks []Token
	for {
		tok, err := ts.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		toks = append(toks, *tok)
	}
	want := []TokenType{
		TWord, TEndOfLine,
		TIndent, TWord, TEndOfLine,
		TOutdent, TWord, TEndOfLine,
	}
	if !kindsEqual(kinds(toks), want) {
		t.Errorf("gave %v, want %v", kinds(toks), want)
	}
}

func TestNoFinalNewline(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a = 1"))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{TWord, TSymbol, TInteger, TEndOfLine}
	if !kindsEqual(kinds(toks), want) {
		t.Errorf("gave %v, want %v", kinds(toks), want)
	}
}

func TestCommentOnlyLinesProduceNothing(t *testing.T) {
	s := "a\n        # deep comment, no indent tokens\n\t\nb\n"
	toks, err := Tokenize(nil, []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{TWord, TEndOfLine, TWord, TEndOfLine}
	if !kindsEqual(kinds(toks), want) {
		t.Errorf("gave %v, want %v", kinds(toks), want)
	}
}

func TestTrailingCommentDropped(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a = 1 # note\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{TWord, TSymbol, TInteger, TEndOfLine}
	if !kindsEqual(kinds(toks), want) {
		t.Errorf("gave %v, want %v", kinds(toks), want)
	}
}

func ExampleTokenSource() {
	ts := NewTokenSource(strings.NewReader("x = 0xFF\n"))
	for {
		tok, err := ts.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(tok.String())
	}
	// Output:
	// x
	// =
	// 255
	// EOL
}
