package renderer

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
)

const (
	// TimestampLayout is the layout of the timestamp every meeting identity ends with.
	TimestampLayout = "2006_01_02_15_04_05"
	// HeadingLayout is how a meeting time is shown in the digest.
	HeadingLayout = "2006-01-02 15:04"
)

var (
	rePart      = regexp.MustCompile(`^(.+)_part(\d+)$`)
	reTimestamp = regexp.MustCompile(`^(?:(.+)_)?(\d{4}_\d{2}_\d{2}_\d{2}_\d{2}_\d{2})$`)
)

// Meeting is the parsed identity of a transcript key.
type Meeting struct {
	// Identity is the key without its trailing _part<N>.
	Identity string
	// Label is whatever precedes the timestamp, e.g. "meeting"; often empty.
	Label string
	Time  time.Time
	// Part is the 1-based part number, 0 for an unsplit recording.
	Part int
}

// Heading returns the display string sections are grouped by.
func (m Meeting) Heading() string {
	return m.Time.Format(HeadingLayout)
}

// MeetingIdentity strips a trailing _part<N> from key.
func MeetingIdentity(key string) (string, int) {
	m := rePart.FindStringSubmatch(key)
	if m == nil {
		return key, 0
	}
	part, err := strconv.Atoi(m[2])
	if err != nil {
		return key, 0
	}
	return m[1], part
}

// ParseMeeting derives the meeting of a transcript key. The identity must be an
// optional label followed by a year_month_day_hour_minute_second timestamp.
func ParseMeeting(key string) (Meeting, error) {
	identity, part := MeetingIdentity(key)

	m := reTimestamp.FindStringSubmatch(identity)
	if m == nil {
		return Meeting{}, fmt.Errorf("%w: key %q does not end with a %s timestamp", errs.ErrFormat, key, TimestampLayout)
	}
	t, err := time.Parse(TimestampLayout, m[2])
	if err != nil {
		return Meeting{}, fmt.Errorf("%w: key %q: %w", errs.ErrFormat, key, err)
	}

	return Meeting{Identity: identity, Label: m[1], Time: t, Part: part}, nil
}
