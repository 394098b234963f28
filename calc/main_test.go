// SPDX-License-Identifier: MIT
package calc_test

import (
	"testing"

	"go.uber.org/goleak"
)

// The core is synchronous; no test may leave a goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
