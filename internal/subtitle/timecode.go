package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// hours may run past two digits on long files
var timingLineRegex = regexp.MustCompile(
	`^(\d{2,}):(\d{2}):(\d{2}),(\d{3}) --> (\d{2,}):(\d{2}):(\d{2}),(\d{3})$`,
)

// parses "HH:MM:SS,mmm --> HH:MM:SS,mmm" into start and end milliseconds
func ParseTimecode(line string) (int64, int64, error) {
	matches := timingLineRegex.FindStringSubmatch(strings.TrimSpace(line))
	if len(matches) != 9 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTimingLine, line)
	}

	start, err := toMillis(matches[1], matches[2], matches[3], matches[4])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: start: %v", ErrMalformedTimingLine, err)
	}
	end, err := toMillis(matches[5], matches[6], matches[7], matches[8])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end: %v", ErrMalformedTimingLine, err)
	}

	return start, end, nil
}

func toMillis(hours, minutes, seconds, millis string) (int64, error) {
	h, err := strconv.ParseInt(hours, 10, 64)
	if err != nil {
		return 0, err
	}
	m, err := strconv.ParseInt(minutes, 10, 64)
	if err != nil {
		return 0, err
	}
	s, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return 0, err
	}

	return ms + 1000*(s+60*(m+60*h)), nil
}

// FormatTimecode renders milliseconds as HH:MM:SS,mmm. Negative values
// render as zero.
func FormatTimecode(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	sub := ms % 1000
	ms /= 1000
	sec := ms % 60
	ms /= 60
	min := ms % 60
	hour := ms / 60

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hour, min, sec, sub)
}

// timing line for a start/end pair
func FormatTimingLine(start, end int64) string {
	return FormatTimecode(start) + " --> " + FormatTimecode(end)
}
