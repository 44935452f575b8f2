// SPDX-License-Identifier: MIT

package boukman

import (
	"strconv"
	"strings"
)

// Version is the release of this module.
const Version = "0.1.0"

// VersionTuple splits v on dots; numeric parts become ints, the rest stay
// strings ("1.2.0rc1" → 1, 2, "0rc1").
func VersionTuple(v string) []any {
	parts := strings.Split(strings.TrimSpace(v), ".")
	out := make([]any, len(parts))
	for i, p := range parts {
		if n, err := strconv.Atoi(p); err == nil {
			out[i] = n
			continue
		}
		out[i] = p
	}

	return out
}
