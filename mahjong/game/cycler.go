package game

// Cycler walks seat indices in turn order.
type Cycler struct {
	count   int
	current int
}

func NewCycler(count, start int) *Cycler {
	return &Cycler{count: count, current: start % count}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Peek() int {
	return (c.current + 1) % c.count
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

func (c *Cycler) Reset(start int) {
	c.current = start % c.count
}
