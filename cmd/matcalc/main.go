// SPDX-License-Identifier: MIT

// Command matcalc adds, subtracts and multiplies symbolic matrices and shows
// how every cell of the result was obtained.
package main

import (
	"os"

	"github.com/katalvlaran/matcalc/cmd/matcalc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
