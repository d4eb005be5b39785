package choice_test

import (
	"fmt"

	"github.com/Primav1022/SynWorld-VSIbench/choice"
)

// ExampleAlternatives shows set-based collection of distinct incorrect
// options from a deterministic generator.
func ExampleAlternatives() {
	seqs := []string{"L, R", "L, R", "R, R", "L, L", "R, L"}
	i := 0
	gen := func() string {
		s := seqs[i%len(seqs)]
		i++
		return s
	}

	alts, err := choice.Alternatives("L, L", 3, 10, gen)
	fmt.Println(alts, err)
	// Output:
	// [L, R R, R R, L] <nil>
}

// ExampleLetter shows the index-to-letter mapping used for option prefixes.
func ExampleLetter() {
	fmt.Println(choice.Letter(0), choice.Letter(1), choice.Letter(25))
	// Output:
	// A B Z
}
