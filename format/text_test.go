package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CamJeff/COMP-321-Problem-Development/format"
)

const sampleOne = `10 4
dp graphs arrays
1 5 3 dp 120
2 6 5 graphs 200
3 4 1 arrays 50
4 8 4 dp 300
`

func TestReadText_Sample(t *testing.T) {
	in, err := format.ReadText(strings.NewReader(sampleOne))
	require.NoError(t, err)
	assert.Equal(t, "10", in.Target.String())
	assert.Equal(t, []string{"dp", "graphs", "arrays"}, in.Topics)
	require.Len(t, in.Problems, 4)

	p := in.Problems[1]
	assert.Equal(t, 2, p.ID)
	assert.Equal(t, "6", p.Points.String())
	assert.Equal(t, 5, p.Difficulty)
	assert.Equal(t, "graphs", p.Topic)
	assert.Equal(t, 200, p.Length)
	assert.Zero(t, p.Rank)
}

func TestReadText_IrregularWhitespace(t *testing.T) {
	src := "260 2\n\tdp  graphs \n1 60 3 dp      300\n\n2 55\t3 graphs  280\n\n\n"
	in, err := format.ReadText(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"dp", "graphs"}, in.Topics)
	require.Len(t, in.Problems, 2)
	assert.Equal(t, 280, in.Problems[1].Length)
}

func TestReadText_HugeNumbers(t *testing.T) {
	src := "123456789012345678901234567890 1\nx\n1 99999999999999999999999 1 x 1\n"
	in, err := format.ReadText(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", in.Target.String())
	assert.Equal(t, "99999999999999999999999", in.Problems[0].Points.String())
}

func TestReadText_EmptyTopicLine(t *testing.T) {
	in, err := format.ReadText(strings.NewReader("5 1\n\n1 5 1 dp 1\n"))
	require.NoError(t, err)
	assert.Empty(t, in.Topics)
	require.Len(t, in.Problems, 1)
}

func TestReadText_NoProblems(t *testing.T) {
	in, err := format.ReadText(strings.NewReader("7 0\n"))
	require.NoError(t, err)
	assert.Empty(t, in.Problems)
	assert.Empty(t, in.Topics)
}

func TestReadText_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", format.ErrTruncated},
		{"header fields", "10\n", format.ErrMalformed},
		{"target not numeric", "ten 1\na\n1 1 1 a 1\n", format.ErrMalformed},
		{"negative target", "-10 1\na\n1 1 1 a 1\n", format.ErrMalformed},
		{"negative count", "10 -1\n", format.ErrMalformed},
		{"missing topics", "10 1\n", format.ErrTruncated},
		{"short problem", "10 1\na\n1 1 1 a\n", format.ErrMalformed},
		{"long problem", "10 1\na\n1 1 1 a 1 9\n", format.ErrMalformed},
		{"bad id", "10 1\na\nx 1 1 a 1\n", format.ErrMalformed},
		{"negative points", "10 1\na\n1 -1 1 a 1\n", format.ErrMalformed},
		{"bad difficulty", "10 1\na\n1 1 hard a 1\n", format.ErrMalformed},
		{"bad length", "10 1\na\n1 1 1 a 1.5\n", format.ErrMalformed},
		{"too few problems", "10 2\na\n1 1 1 a 1\n", format.ErrTruncated},
		{"huge count", "10 1000000000000\ndp\n1 5 1 dp 1\n", format.ErrTruncated},
		{"trailing", "10 1\na\n1 1 1 a 1\n2 1 1 a 1\n", format.ErrTrailingInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := format.ReadText(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadText_ErrorCarriesLine(t *testing.T) {
	_, err := format.ReadText(strings.NewReader("10 2\na\n1 1 1 a 1\n2 x 1 a 1\n"))
	require.ErrorIs(t, err, format.ErrMalformed)
	assert.Contains(t, err.Error(), "line 4")
}

func TestWriteText_RoundTrip(t *testing.T) {
	in, err := format.ReadText(strings.NewReader(sampleOne))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, format.WriteText(&buf, in))
	assert.Equal(t, sampleOne, buf.String())
}
