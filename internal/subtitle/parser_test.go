package subtitle

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// runs the parser to exhaustion the way the driver does
func collect(lines []string) (blocks []*Block, errs []*ParseError, blanks int) {
	p := NewParser(lines)
	for !p.Done() {
		res := p.Next()
		switch res.Kind {
		case KindBlock:
			blocks = append(blocks, res.Block)
		case KindError:
			errs = append(errs, res.Err)
		case KindBlank:
			blanks++
		}
	}
	return blocks, errs, blanks
}

func TestParserWellFormed(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.
And a third.

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`
	blocks, errs, _ := collect(strings.Split(content, "\n"))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}

	want := []Block{
		{ID: 1, Start: 1000, End: 4000, Lines: []string{"Hello, world!"}},
		{ID: 2, Start: 5500, End: 8200, Lines: []string{
			"This is a test.",
			"With multiple lines.",
			"And a third.",
		}},
		{ID: 3, Start: 10000, End: 12500, Lines: []string{"Final subtitle."}},
	}
	for i := range want {
		if !reflect.DeepEqual(*blocks[i], want[i]) {
			t.Errorf("block %d: got %+v, want %+v", i, *blocks[i], want[i])
		}
	}
}

func TestParserNoTrailingBlankLine(t *testing.T) {
	lines := []string{
		"1",
		"00:00:01,000 --> 00:00:02,000",
		"Last line",
	}
	blocks, errs, _ := collect(lines)
	if len(errs) != 0 || len(blocks) != 1 {
		t.Fatalf("got %d blocks, %d errors", len(blocks), len(errs))
	}
	if !reflect.DeepEqual(blocks[0].Lines, []string{"Last line"}) {
		t.Errorf("unexpected lines %q", blocks[0].Lines)
	}
}

func TestParserEmptyText(t *testing.T) {
	lines := []string{
		"1",
		"00:00:01,000 --> 00:00:02,000",
		"",
		"2",
		"00:00:03,000 --> 00:00:04,000",
	}
	blocks, errs, _ := collect(lines)
	if len(errs) != 0 || len(blocks) != 2 {
		t.Fatalf("got %d blocks, %d errors", len(blocks), len(errs))
	}
	for _, b := range blocks {
		if len(b.Lines) != 0 {
			t.Errorf("block %d: expected no text, got %q", b.ID, b.Lines)
		}
	}
}

func TestParserStrayBlankLines(t *testing.T) {
	lines := []string{
		"",
		"",
		"1",
		"00:00:01,000 --> 00:00:02,000",
		"Hello",
		"",
		"",
		"   ",
		"2",
		"00:00:03,000 --> 00:00:04,000",
		"World",
		"",
	}
	blocks, errs, blanks := collect(lines)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blanks != 4 {
		t.Errorf("expected 4 blank results, got %d", blanks)
	}
}

func TestParserRecoversFromInvalidID(t *testing.T) {
	content := "abc\n00:00:01,000 --> 00:00:02,000\nHello\n\n2\n00:00:03,000 --> 00:00:04,000\nWorld\n"
	blocks, errs, _ := collect(strings.Split(content, "\n"))

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].ID != 2 {
		t.Errorf("expected id 2, got %d", blocks[0].ID)
	}
	if !reflect.DeepEqual(blocks[0].Lines, []string{"World"}) {
		t.Errorf("unexpected lines %q", blocks[0].Lines)
	}

	if len(errs) == 0 {
		t.Fatal("expected parse errors for the malformed entry")
	}
	if !errors.Is(errs[0], ErrInvalidSequenceID) {
		t.Errorf("first error = %v, want ErrInvalidSequenceID", errs[0])
	}
	if errs[0].Line != 1 || errs[0].Text != "abc" {
		t.Errorf("first error at line %d text %q", errs[0].Line, errs[0].Text)
	}
}

func TestParserRejectsNonPositiveID(t *testing.T) {
	for _, id := range []string{"0", "-3"} {
		t.Run(id, func(t *testing.T) {
			p := NewParser([]string{id, "00:00:01,000 --> 00:00:02,000"})
			res := p.Next()
			if res.Kind != KindError || !errors.Is(res.Err, ErrInvalidSequenceID) {
				t.Errorf("got kind %v err %v", res.Kind, res.Err)
			}
		})
	}
}

func TestParserMalformedTimingLine(t *testing.T) {
	lines := []string{
		"1",
		"00:00:01 --> 00:00:02",
		"Broken",
		"",
		"2",
		"00:00:03,000 --> 00:00:04,000",
		"Fine",
	}
	p := NewParser(lines)

	res := p.Next()
	if res.Kind != KindError {
		t.Fatalf("expected error, got %v", res.Kind)
	}
	if !errors.Is(res.Err, ErrMalformedTimingLine) {
		t.Errorf("error = %v, want ErrMalformedTimingLine", res.Err)
	}
	if res.Err.Line != 2 {
		t.Errorf("error line = %d, want 2", res.Err.Line)
	}
	if p.Line() != 3 {
		t.Errorf("cursor should sit after the timing line, next line = %d", p.Line())
	}

	blocks, _, _ := collect(lines)
	if len(blocks) != 1 || blocks[0].ID != 2 {
		t.Errorf("expected only block 2 to survive, got %+v", blocks)
	}
}

func TestParserTruncatedBlock(t *testing.T) {
	p := NewParser([]string{"1"})

	res := p.Next()
	if res.Kind != KindError || !errors.Is(res.Err, ErrMalformedTimingLine) {
		t.Fatalf("got kind %v err %v", res.Kind, res.Err)
	}
	if !p.Done() {
		t.Error("parser should be done")
	}
}

func TestParserNextAfterDone(t *testing.T) {
	p := NewParser(nil)
	if !p.Done() {
		t.Fatal("empty input should be done immediately")
	}
	for i := 0; i < 3; i++ {
		if res := p.Next(); res.Kind != KindBlank || res.Block != nil || res.Err != nil {
			t.Errorf("call %d after done returned %+v", i, res)
		}
	}
}
