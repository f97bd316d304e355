package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSessionNext(t *testing.T) {
	tests := []struct {
		in, want Session
	}{
		{Session{2011, FirstHalf}, Session{2011, SecondHalf}},
		{Session{2011, SecondHalf}, Session{2012, FirstHalf}},
		{Session{1999, SecondHalf}, Session{2000, FirstHalf}},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Next())
		})
	}
}

func TestSessionSourceWindow(t *testing.T) {
	first := Session{Year: 2012, Half: FirstHalf}.SourceWindow()
	assert.Equal(t, utc(2011, time.January, 1), first.Start)
	assert.Equal(t, utc(2011, time.July, 1), first.End)

	second := Session{Year: 2012, Half: SecondHalf}.SourceWindow()
	assert.Equal(t, utc(2011, time.July, 1), second.Start)
	assert.Equal(t, utc(2012, time.January, 1), second.End)
}

func TestWindowContainsIsHalfOpen(t *testing.T) {
	w := Session{Year: 2011, Half: FirstHalf}.Bounds()

	assert.True(t, w.Contains(w.Start), "start is included")
	assert.False(t, w.Contains(w.End), "end is excluded")
	assert.True(t, w.Contains(w.End.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
}

func TestSessionOf(t *testing.T) {
	assert.Equal(t, Session{2010, SecondHalf}, SessionOf(utc(2010, time.December, 30)))
	assert.Equal(t, Session{2011, FirstHalf}, SessionOf(utc(2011, time.June, 30)))
	assert.Equal(t, Session{2011, SecondHalf}, SessionOf(utc(2011, time.July, 1)))
	assert.Equal(t, Session{2012, FirstHalf}, SessionOf(utc(2012, time.January, 1)))
}

func TestSessionValidate(t *testing.T) {
	require.NoError(t, Session{Year: 2012, Half: SecondHalf}.Validate())

	err := Session{Year: 2012, Half: 3}.Validate()
	require.ErrorIs(t, err, ErrInvalidHalf)

	err = Session{Year: 2012, Half: 0}.Validate()
	require.ErrorIs(t, err, ErrInvalidHalf)

	err = Session{Year: 0, Half: FirstHalf}.Validate()
	require.ErrorIs(t, err, ErrInvalidYear)
}

func TestParseHalf(t *testing.T) {
	for _, in := range []string{"1", "1H", "first", " FIRST "} {
		h, err := ParseHalf(in)
		require.NoError(t, err, in)
		assert.Equal(t, FirstHalf, h, in)
	}
	for _, in := range []string{"2", "2h", "Second"} {
		h, err := ParseHalf(in)
		require.NoError(t, err, in)
		assert.Equal(t, SecondHalf, h, in)
	}
	_, err := ParseHalf("3")
	assert.ErrorIs(t, err, ErrInvalidHalf)
}

func TestParseSession(t *testing.T) {
	s, err := ParseSession("1H2012")
	require.NoError(t, err)
	assert.Equal(t, Session{Year: 2012, Half: FirstHalf}, s)
	assert.Equal(t, "1H2012", s.String())

	_, err = ParseSession("3H2012")
	assert.ErrorIs(t, err, ErrInvalidHalf)

	_, err = ParseSession("2012")
	assert.Error(t, err)

	_, err = ParseSession("2Hxx")
	assert.Error(t, err)
}
