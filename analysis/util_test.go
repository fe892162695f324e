package analysis_test

import (
	"testing"

	"github.com/rfielding/devs-sim/analysis"
)

func TestIntSqrt(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 8: 2, 9: 3, 10: 3, 15: 3, 16: 4, 99: 9, 100: 10}
	for n, want := range cases {
		if got := analysis.IntSqrt(n); got != want {
			t.Errorf("IntSqrt(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestStudentTKnownValues(t *testing.T) {
	if got := analysis.StudentT(0.05, 10); got != 1.812 {
		t.Errorf("StudentT(0.05, 10) = %v, want 1.812", got)
	}
	if got := analysis.StudentT(0.025, 1); got != 12.706 {
		t.Errorf("StudentT(0.025, 1) = %v, want 12.706", got)
	}
}

func TestStudentTConvergesTowardNormalAsDfGrows(t *testing.T) {
	t30 := analysis.StudentT(0.05, 30)
	t300 := analysis.StudentT(0.05, 300)
	if t300 >= t30 {
		t.Errorf("expected the interpolated large-df critical value (%v) to be closer to the normal asymptote than df=30 (%v)", t300, t30)
	}
}
