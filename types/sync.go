// SPDX-License-Identifier: MIT
package types

import (
	"sync"
)

type (
	// SafeCounter is a thread-safe counter.
	SafeCounter struct {
		m   sync.Mutex
		val int
	}
)

// Inc increments the counter.
func (c *SafeCounter) Inc() {
	c.m.Lock()
	defer c.m.Unlock()
	c.val++
}

// Add increments the counter by n.
func (c *SafeCounter) Add(n int) {
	c.m.Lock()
	defer c.m.Unlock()
	c.val += n
}

// Value returns the current value of the counter.
func (c *SafeCounter) Value() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.val
}
