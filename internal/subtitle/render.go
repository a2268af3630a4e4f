package subtitle

import (
	"strconv"
	"strings"
)

// Renderer writes blocks back out in SubRip form.
type Renderer struct {
	// blank line between consecutive blocks
	Separate bool

	written int
}

// Render appends b to sb. A nil block writes nothing.
func (r *Renderer) Render(sb *strings.Builder, b *Block) {
	if b == nil {
		return
	}

	if r.Separate && r.written > 0 {
		sb.WriteString("\n")
	}

	// id
	sb.WriteString(strconv.FormatInt(b.ID, 10))
	sb.WriteString("\n")

	// timestamps: 00:00:00,000 --> 00:00:00,000
	sb.WriteString(FormatTimingLine(b.Start, b.End))
	sb.WriteString("\n")

	// text
	for _, line := range b.Lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	r.written++
}

// count of blocks rendered so far
func (r *Renderer) Written() int {
	return r.written
}
