package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// kind of value produced by Parser.Next
type Kind int

const (
	KindBlank Kind = iota
	KindError
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindError:
		return "error"
	case KindBlock:
		return "block"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is one step of a parse pass. Block is set for KindBlock and Err
// for KindError.
type Result struct {
	Kind  Kind
	Block *Block
	Err   *ParseError
}

// Parser reads SubRip blocks from a slice of lines it does not own.
// It is forward-only and meant for a single pass.
type Parser struct {
	lines  []string
	cursor int
}

func NewParser(lines []string) *Parser {
	return &Parser{lines: lines}
}

// true once every line has been consumed
func (p *Parser) Done() bool {
	return p.cursor >= len(p.lines)
}

// 1-based number of the next line to read
func (p *Parser) Line() int {
	return p.cursor + 1
}

// Next consumes the next block. Blank separator lines come back as
// KindBlank, as does any call made after Done.
func (p *Parser) Next() Result {
	if p.Done() {
		return Result{Kind: KindBlank}
	}

	if isBlank(p.lines[p.cursor]) {
		p.cursor++
		return Result{Kind: KindBlank}
	}

	idLine := p.lines[p.cursor]
	p.cursor++
	id, err := strconv.ParseInt(strings.TrimSpace(idLine), 10, 64)
	if err != nil || id <= 0 {
		return p.fail(p.cursor, idLine, fmt.Errorf("%w: %q", ErrInvalidSequenceID, idLine))
	}

	if p.Done() {
		return p.fail(p.cursor+1, "", fmt.Errorf("%w: missing after id %d", ErrMalformedTimingLine, id))
	}
	timingLine := p.lines[p.cursor]
	p.cursor++
	start, end, err := ParseTimecode(timingLine)
	if err != nil {
		return p.fail(p.cursor, timingLine, err)
	}

	block := &Block{ID: id, Start: start, End: end}
	for !p.Done() {
		line := p.lines[p.cursor]
		p.cursor++
		if isBlank(line) {
			break
		}
		block.Lines = append(block.Lines, line)
	}

	return Result{Kind: KindBlock, Block: block}
}

func (p *Parser) fail(line int, text string, err error) Result {
	return Result{
		Kind: KindError,
		Err:  &ParseError{Line: line, Text: text, Err: err},
	}
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
