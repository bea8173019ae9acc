package predmix_test

import (
	"fmt"

	"github.com/avlab/confseq/predmix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEmpiricalBernsteinCS
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	100 bounded observations with mean near 1/2. The variance-adaptive
//	empirical Bernstein sequence is queried after the final observation;
//	because it is anytime-valid, the same interval would have been valid
//	had we stopped at any earlier time.
func ExampleEmpiricalBernsteinCS() {
	x := make([]float64, 100)
	for i := range x {
		x[i] = float64((i*37)%101) / 101
	}

	lower, upper, err := predmix.EmpiricalBernsteinCS(x, predmix.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("t=100: [%.3f, %.3f]\n", lower[99], upper[99])
	// Output:
	// t=100: [0.385, 0.602]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleHoeffdingCS
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same stream through the variance-free Hoeffding sequence, with
//	the running intersection switched on so the interval can only
//	shrink over time.
func ExampleHoeffdingCS() {
	x := make([]float64, 100)
	for i := range x {
		x[i] = float64((i*37)%101) / 101
	}

	opts := predmix.DefaultOptions()
	opts.RunningIntersection = true
	lower, upper, err := predmix.HoeffdingCS(x, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("t=100: [%.3f, %.3f]\n", lower[99], upper[99])
	// Output:
	// t=100: [0.335, 0.638]
}
