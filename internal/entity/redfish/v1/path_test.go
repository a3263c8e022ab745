package redfish

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResourcePathLengthBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		unit    string
		length  int
		wantErr bool
	}{
		{name: "empty", unit: "a", length: 0},
		{name: "short", unit: "a", length: 19},
		{name: "at limit", unit: "a", length: MaxPathLength},
		{name: "one over", unit: "a", length: MaxPathLength + 1, wantErr: true},
		{name: "far over", unit: "a", length: 4 * MaxPathLength, wantErr: true},
		{name: "multi-byte at limit", unit: "é", length: MaxPathLength},
		{name: "multi-byte under limit", unit: "é", length: 220},
		{name: "multi-byte one over", unit: "é", length: MaxPathLength + 1, wantErr: true},
		{name: "four-byte at limit", unit: "😀", length: MaxPathLength},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := strings.Repeat(tc.unit, tc.length)

			p, err := NewResourcePath(s)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrPathTooLong)
				assert.True(t, p.IsZero())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, s, p.String())
		})
	}
}

func TestMustResourcePathPanicsWhenTooLong(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustResourcePath(strings.Repeat("x", MaxPathLength+1)) })
	assert.NotPanics(t, func() { MustResourcePath("/redfish/v1/Chassis/1") })
}

func TestResourcePathOrderAndEquality(t *testing.T) {
	t.Parallel()

	a := MustResourcePath("/redfish/v1/Chassis/1")
	b := MustResourcePath("/redfish/v1/Chassis/2")

	assert.Equal(t, a, MustResourcePath("/redfish/v1/Chassis/1"))
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(a))
}

func TestSortedUnique(t *testing.T) {
	t.Parallel()

	in := []ResourcePath{
		MustResourcePath("/redfish/v1/Systems/3"),
		MustResourcePath("/redfish/v1/Systems/1"),
		MustResourcePath("/redfish/v1/Systems/3"),
		MustResourcePath("/redfish/v1/Systems/2"),
		MustResourcePath("/redfish/v1/Systems/1"),
	}

	out := SortedUnique(in)

	assert.Equal(t, []ResourcePath{
		MustResourcePath("/redfish/v1/Systems/1"),
		MustResourcePath("/redfish/v1/Systems/2"),
		MustResourcePath("/redfish/v1/Systems/3"),
	}, out)

	// input untouched
	assert.Equal(t, "/redfish/v1/Systems/3", in[0].String())
	assert.Nil(t, SortedUnique(nil))
}

func TestResourcePathJSON(t *testing.T) {
	t.Parallel()

	p := MustResourcePath("/redfish/v1/Systems/1")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `"/redfish/v1/Systems/1"`, string(data))

	var back ResourcePath

	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p, back)

	tooLong, err := json.Marshal(strings.Repeat("z", MaxPathLength+1))
	require.NoError(t, err)
	assert.ErrorIs(t, json.Unmarshal(tooLong, &back), ErrPathTooLong)
}
