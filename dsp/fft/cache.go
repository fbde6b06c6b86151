package fft

// Cache keeps one Executor per transform size so planning cost is paid once
// per distinct size. It is not safe for concurrent use.
type Cache struct {
	backend   Backend
	executors map[int]*Executor
}

// NewCache creates an empty cache using the configured backend.
func NewCache(opts ...Option) *Cache {
	cfg := applyOptions(opts)

	return &Cache{
		backend:   cfg.backend,
		executors: make(map[int]*Executor),
	}
}

// Executor returns the executor for size, planning it on first use.
func (c *Cache) Executor(size int) (*Executor, error) {
	if e, ok := c.executors[size]; ok {
		return e, nil
	}

	if err := validateSize(size); err != nil {
		return nil, err
	}

	plan, err := c.backend.NewPlan(size)
	if err != nil {
		return nil, err
	}

	e := newExecutor(size, plan, c.backend.Name())
	c.executors[size] = e

	return e, nil
}

// Len returns the number of planned sizes.
func (c *Cache) Len() int { return len(c.executors) }
