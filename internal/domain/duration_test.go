package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElapsedMinutes_Truncates(t *testing.T) {
	from := at(9, 0)

	assert.Equal(t, 1, ElapsedMinutes(from, from.Add(90*time.Second)))
	assert.Equal(t, 0, ElapsedMinutes(from, from.Add(59*time.Second)))
	assert.Equal(t, 2, ElapsedMinutes(from, from.Add(2*time.Minute)))
	assert.Equal(t, 0, ElapsedMinutes(from, from))
}

func TestTotalsAt_OpenBreakContributesZero(t *testing.T) {
	s := NewWorkSession("s1", at(9, 0))
	require.NoError(t, s.StartBreakfast(at(10, 0)))

	// Break still open at 10:30: live totals ignore it.
	total, brk, actual := s.TotalsAt(at(10, 30))
	assert.Equal(t, 90, total)
	assert.Equal(t, 0, brk)
	assert.Equal(t, 90, actual)

	require.NoError(t, s.EndBreakfast(at(10, 15)))
	total, brk, actual = s.TotalsAt(at(10, 30))
	assert.Equal(t, 90, total)
	assert.Equal(t, 15, brk)
	assert.Equal(t, 75, actual)
}

func TestTotalsAt_ActualFlooredAtZero(t *testing.T) {
	s := NewWorkSession("s1", at(9, 0))
	require.NoError(t, s.StartBreakfast(at(9, 1)))
	require.NoError(t, s.EndBreakfast(at(9, 50)))

	// 5 total minutes vs 49 break minutes.
	total, brk, actual := s.TotalsAt(at(9, 5))
	assert.Equal(t, 5, total)
	assert.Equal(t, 49, brk)
	assert.Equal(t, 0, actual)
}

func TestSummarize(t *testing.T) {
	s1 := NewWorkSession("s1", at(9, 0))
	require.NoError(t, s1.Finish(at(17, 0)))

	s2 := NewWorkSession("s2", at(8, 0))
	require.NoError(t, s2.StartSnack(at(12, 0)))
	require.NoError(t, s2.EndSnack(at(12, 30)))
	require.NoError(t, s2.Finish(at(16, 0)))

	open := NewWorkSession("s3", at(9, 0))

	sum := Summarize([]*WorkSession{s1, s2, open})
	assert.Equal(t, 3, sum.Sessions)
	assert.Equal(t, 480+480, sum.TotalWorkMinutes)
	assert.Equal(t, 30, sum.TotalBreakMinutes)
	assert.Equal(t, 480+450, sum.ActualWorkMinutes)
}
