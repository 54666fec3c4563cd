package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/perioda/calends/internal/datemath"
)

// mockSeq is a mock DateSeq for exercising the wrappers against scripted
// inner sequences.
type mockSeq struct {
	mock.Mock
}

func (m *mockSeq) Next() (time.Time, bool) {
	args := m.Called()
	return args.Get(0).(time.Time), args.Bool(1)
}

func TestUntilStopsWithInnerSequence(t *testing.T) {
	seq := new(mockSeq)
	seq.On("Next").Return(datemath.Date(2022, 1, 1), true).Once()
	seq.On("Next").Return(time.Time{}, false).Once()

	until := UntilInclusive(datemath.Date(2030, 1, 1), seq)

	got, ok := until.Next()
	require.True(t, ok)
	assert.Equal(t, datemath.Date(2022, 1, 1), got)

	_, ok = until.Next()
	assert.False(t, ok)
	seq.AssertExpectations(t)
}

func TestUntilDoesNotPullPastBound(t *testing.T) {
	seq := new(mockSeq)
	seq.On("Next").Return(datemath.Date(2022, 1, 1), true).Once()
	seq.On("Next").Return(datemath.Date(2022, 2, 1), true).Once()

	until := UntilExclusive(datemath.Date(2022, 2, 1), seq)

	_, ok := until.Next()
	require.True(t, ok)
	_, ok = until.Next()
	require.False(t, ok)

	// once done, the inner sequence is never consulted again
	_, ok = until.Next()
	assert.False(t, ok)
	seq.AssertExpectations(t)
}

func TestExpandCap(t *testing.T) {
	rec, err := WithStart(Daily(), datemath.Date(2022, 1, 1))
	require.NoError(t, err)

	got := Expand(rec, ExpandOptions{MaxOccurrences: 10})
	require.Len(t, got, 10)
	assert.Equal(t, datemath.Date(2022, 1, 10), got[9])
}

func TestExpandDefaultCap(t *testing.T) {
	rec, err := WithStart(Daily(), datemath.Date(2022, 1, 1))
	require.NoError(t, err)

	// an infinite sequence with no explicit cap stops at the default
	got := Expand(rec, ExpandOptions{})
	assert.Len(t, got, DefaultExpandOptions.MaxOccurrences)
}

func TestExpandFiniteSequence(t *testing.T) {
	seq := new(mockSeq)
	seq.On("Next").Return(datemath.Date(2022, 1, 1), true).Once()
	seq.On("Next").Return(datemath.Date(2022, 1, 8), true).Once()
	seq.On("Next").Return(time.Time{}, false).Once()

	got := Expand(seq, ExpandOptions{MaxOccurrences: 10})
	assert.Equal(t, []time.Time{
		datemath.Date(2022, 1, 1),
		datemath.Date(2022, 1, 8),
	}, got)
	seq.AssertExpectations(t)
}
