// SPDX-License-Identifier: MIT
package format_test

import (
	"fmt"

	"github.com/katalvlaran/matcalc/format"
	"github.com/katalvlaran/matcalc/value"
)

func ExampleFormat() {
	v := value.MustParse("7/2")
	for _, m := range format.Modes() {
		fmt.Printf("%s: %s\n", m, format.Format(v, m))
	}

	// Output:
	// Decimal: 3.5
	// Fraction: 7/2
	// Letters: D
}
