package subtitle

// single SubRip entry, times in milliseconds
type Block struct {
	ID    int64
	Start int64
	End   int64
	Lines []string
}

// Shift moves both times by offsetSeconds and clamps each to zero.
// Duration is not preserved when only the start gets clamped.
func (b *Block) Shift(offsetSeconds int64) {
	if b == nil {
		return
	}

	delta := offsetSeconds * 1000
	b.Start = clamp(b.Start + delta)
	b.End = clamp(b.End + delta)
}

func clamp(ms int64) int64 {
	if ms < 0 {
		return 0
	}
	return ms
}
