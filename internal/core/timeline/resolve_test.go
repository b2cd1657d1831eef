package timeline

import (
	"testing"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByIDPrefix(t *testing.T) {
	marks := []model.Mark{
		task("abc123", clock(9, 0), "A"),
		task("abd456", clock(10, 0), "B"),
		task("abc789", clock(11, 0), "C"),
	}

	tests := []struct {
		name     string
		prefix   string
		expected int
		notFound bool
	}{
		{name: "unique prefix", prefix: "abd", expected: 1},
		{name: "shared prefix takes first", prefix: "abc", expected: 0},
		{name: "full id", prefix: "abc789", expected: 2},
		{name: "no match", prefix: "zzz", notFound: true},
		{name: "empty prefix", prefix: "", notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := FindByIDPrefix(marks, tt.prefix)
			if tt.notFound {
				var nf *model.NotFoundError
				assert.ErrorAs(t, err, &nf)
				assert.Equal(t, -1, idx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, idx)
		})
	}
}

func TestResolveIDRejectsAmbiguousPrefix(t *testing.T) {
	marks := []model.Mark{
		task("abc123", clock(9, 0), "A"),
		task("abc", clock(10, 0), "B"),
		task("abc789", clock(11, 0), "C"),
	}

	_, err := ResolveID(marks, "abc7")
	require.NoError(t, err)

	// Exact ids win even when they prefix other ids.
	idx, err := ResolveID(marks, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = ResolveID(marks, "ab")
	var amb *model.AmbiguousIDError
	require.ErrorAs(t, err, &amb)
	assert.Equal(t, []string{"abc123", "abc", "abc789"}, amb.Candidates)

	_, err = ResolveID(marks, "x")
	var nf *model.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestLastActiveIndex(t *testing.T) {
	marks := []model.Mark{
		task("a", clock(9, 0), "A"),
		boundary("s1", clock(10, 0)),
		task("b", clock(11, 0), "B"),
		boundary("s2", clock(12, 0)),
		boundary("s3", clock(12, 30)),
	}

	idx, err := LastActiveIndex(marks)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = LastActiveIndex([]model.Mark{boundary("s", clock(9, 0))})
	var nf *model.NotFoundError
	assert.ErrorAs(t, err, &nf)

	_, err = LastActiveIndex(nil)
	assert.ErrorAs(t, err, &nf)
}
