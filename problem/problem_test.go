package problem_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CamJeff/COMP-321-Problem-Development/problem"
)

func pts(v int64) *big.Int { return big.NewInt(v) }

func TestNewRanking_Order(t *testing.T) {
	r := problem.NewRanking([]string{"dp", "graphs", "arrays"})
	assert.Equal(t, 3, r.Rank("dp"))
	assert.Equal(t, 2, r.Rank("graphs"))
	assert.Equal(t, 1, r.Rank("arrays"))
	assert.Equal(t, 0, r.Rank("strings"), "unlisted topics rank 0")
}

func TestNewRanking_DuplicateKeepsLast(t *testing.T) {
	r := problem.NewRanking([]string{"dp", "graphs", "dp"})
	assert.Equal(t, 1, r.Rank("dp"))
	assert.Equal(t, 2, r.Rank("graphs"))
}

func TestNewRanking_Empty(t *testing.T) {
	r := problem.NewRanking(nil)
	assert.Equal(t, 0, r.Rank("anything"))
}

func TestApply(t *testing.T) {
	ps := []problem.Problem{
		problem.New(1, pts(5), 3, "dp", 120),
		problem.New(2, pts(6), 5, "trees", 200),
	}
	problem.Apply(problem.NewRanking([]string{"dp"}), ps)
	assert.Equal(t, 1, ps[0].Rank)
	assert.Equal(t, 0, ps[1].Rank)
}

func TestCanonical_SortsByDifficultyLengthID(t *testing.T) {
	ps := []problem.Problem{
		problem.New(4, pts(8), 4, "dp", 300),
		problem.New(3, pts(4), 1, "arrays", 50),
		problem.New(2, pts(6), 1, "graphs", 50),
		problem.New(1, pts(5), 1, "dp", 20),
	}
	got := problem.Canonical(ps)

	ids := make([]int, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)
	// input untouched
	assert.Equal(t, 4, ps[0].ID)
}

func TestValidate(t *testing.T) {
	ok := []problem.Problem{problem.New(1, pts(0), 0, "a", 0)}
	require.NoError(t, problem.Validate(ok))

	cases := []struct {
		name string
		ps   []problem.Problem
		want error
	}{
		{"nil points", []problem.Problem{problem.New(1, nil, 1, "a", 1)}, problem.ErrNilPoints},
		{"negative points", []problem.Problem{problem.New(1, pts(-1), 1, "a", 1)}, problem.ErrNegativePoints},
		{"negative difficulty", []problem.Problem{problem.New(1, pts(1), -1, "a", 1)}, problem.ErrNegativeDifficulty},
		{"negative length", []problem.Problem{problem.New(1, pts(1), 1, "a", -2)}, problem.ErrNegativeLength},
		{"duplicate id", []problem.Problem{
			problem.New(7, pts(1), 1, "a", 1),
			problem.New(7, pts(2), 1, "b", 1),
		}, problem.ErrDuplicateID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, problem.Validate(tc.ps), tc.want)
		})
	}
}

func TestTotal(t *testing.T) {
	big1, _ := new(big.Int).SetString("100000000000000000000", 10)
	ps := []problem.Problem{
		problem.New(1, big1, 1, "a", 1),
		problem.New(2, big1, 1, "a", 1),
		problem.New(3, nil, 1, "a", 1),
	}
	want, _ := new(big.Int).SetString("200000000000000000000", 10)
	assert.Equal(t, 0, problem.Total(ps).Cmp(want))
}
