// SPDX-License-Identifier: MIT
package types

import (
	"fmt"
	"strings"
)

type (
	// StringSlice is an append-only, index-addressed store for `string`s.
	//
	// Entries are appended per occurrence, never deduplicated, rewritten nor
	// removed; indices handed out by Push stay valid for the slice's
	// lifetime.
	StringSlice []string
)

// Push appends a value & returns its index.
func (sl *StringSlice) Push(value string) (index int) {
	index = len(*sl)
	*sl = append(*sl, value)

	return
}

// Locate for `StringSlice`.
func (sl *StringSlice) Locate(val string) (resl int) {
	resl = -1

	for index := range *sl {
		if (*sl)[index] == val {
			resl = index
			return
		}
	}

	return
}

// String is the `fmt.Stringer` interface implementation for `StringSlice`
func (sl *StringSlice) String() (dst string) {
	lenSl := len(*sl)
	if lenSl > 0 {
		buffer := strings.Builder{}
		fmt.Fprintf(&buffer, "[%q", (*sl)[0])
		for index := 1; index < lenSl; index++ {
			fmt.Fprintf(&buffer, ",%q", (*sl)[index])
		}
		buffer.WriteString("]")

		dst = buffer.String()
	}

	return
}
