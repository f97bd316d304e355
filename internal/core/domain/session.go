package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidHalf = errors.New("half must be 1 (first) or 2 (second)")
	ErrInvalidYear = errors.New("year out of range")
)

// Half identifies the first or second half of a calendar year.
type Half int

const (
	FirstHalf  Half = 1 // Jan 1 to Jul 1
	SecondHalf Half = 2 // Jul 1 to Jan 1 of the following year
)

// Valid reports whether h is FirstHalf or SecondHalf.
func (h Half) Valid() bool {
	return h == FirstHalf || h == SecondHalf
}

// ParseHalf accepts "1", "2", "1H", "2H", "first" and "second" in any case.
func ParseHalf(s string) (Half, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "1h", "h1", "first":
		return FirstHalf, nil
	case "2", "2h", "h2", "second":
		return SecondHalf, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidHalf, s)
	}
}

// Session is a half-year planning session. It is a coordinate supplied by
// callers and is never persisted.
type Session struct {
	Year int
	Half Half
}

// SessionOf returns the session whose bounds contain t.
func SessionOf(t time.Time) Session {
	t = t.UTC()
	if t.Month() < time.July {
		return Session{Year: t.Year(), Half: FirstHalf}
	}
	return Session{Year: t.Year(), Half: SecondHalf}
}

// ParseSession parses the "1H2012" notation used in event names and URLs.
func ParseSession(s string) (Session, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	idx := strings.IndexByte(s, 'H')
	if idx < 1 {
		return Session{}, fmt.Errorf("invalid session %q: want <half>H<year>", s)
	}
	half, err := ParseHalf(s[:idx])
	if err != nil {
		return Session{}, err
	}
	year, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return Session{}, fmt.Errorf("invalid session year %q: %w", s[idx+1:], err)
	}
	sess := Session{Year: year, Half: half}
	return sess, sess.Validate()
}

// Validate rejects unknown halves and years for which the previous year is
// not representable.
func (s Session) Validate() error {
	if !s.Half.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidHalf, int(s.Half))
	}
	if s.Year < 1 || s.Year > 9999 {
		return fmt.Errorf("%w: %d", ErrInvalidYear, s.Year)
	}
	return nil
}

// Next returns the session immediately following s.
func (s Session) Next() Session {
	if s.Half == SecondHalf {
		return Session{Year: s.Year + 1, Half: FirstHalf}
	}
	return Session{Year: s.Year, Half: SecondHalf}
}

// Bounds returns the half-open UTC window covered by s.
func (s Session) Bounds() Window {
	if s.Half == FirstHalf {
		return Window{
			Start: time.Date(s.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(s.Year, time.July, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return Window{
		Start: time.Date(s.Year, time.July, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(s.Year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// SourceWindow returns the bounds of the same half one year earlier. Events
// starting inside it are the ones rolled forward into s.
func (s Session) SourceWindow() Window {
	return Session{Year: s.Year - 1, Half: s.Half}.Bounds()
}

func (s Session) String() string {
	return fmt.Sprintf("%dH%d", int(s.Half), s.Year)
}

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies in [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
