// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for the matrix test-suite.
package matrix_test

import "math"

// nan returns a quiet NaN without tripping vet's constant checks.
func nan() float64 { return math.NaN() }

// inf returns +Inf.
func inf() float64 { return math.Inf(1) }
