package widget

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// DefaultIDPrefix prefixes generated widget ids.
const DefaultIDPrefix = "timepicker"

// IDGenerator hands out unique widget ids. Hosts share one generator across
// the widgets of a page.
type IDGenerator interface {
	NextID() string
}

// IDFunc adapts a function (for example a UUID source) to IDGenerator.
type IDFunc func() string

func (fn IDFunc) NextID() string { return fn() }

// Counter is a monotonically increasing IDGenerator. The zero value is
// ready to use and produces timepicker1, timepicker2, ...
type Counter struct {
	prefix string
	next   atomic.Uint64
}

// NewCounter starts counting after seed. Seeding with a timestamp keeps ids
// distinct across page loads, as hosts rendering into one document expect.
func NewCounter(prefix string, seed uint64) *Counter {
	c := &Counter{prefix: strings.TrimSpace(prefix)}
	c.next.Store(seed)
	return c
}

func (c *Counter) NextID() string {
	prefix := c.prefix
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return prefix + strconv.FormatUint(c.next.Add(1), 10)
}
