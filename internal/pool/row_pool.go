package pool

import "sync"

// RowPool implements a pool of int slices used as dynamic-programming rows
type RowPool struct {
	pool sync.Pool
	size int
}

// NewRowPool creates a new row pool whose fresh rows have the given capacity
func NewRowPool(size int) *RowPool {
	return &RowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]int, 0, size)
				return &row
			},
		},
		size: size,
	}
}

// Get retrieves a row of exactly n cells. Cell values are unspecified.
func (rp *RowPool) Get(n int) *[]int {
	row := rp.pool.Get().(*[]int)
	if cap(*row) < n {
		*row = make([]int, n)
		return row
	}
	*row = (*row)[:n]
	return row
}

// Put returns a row to the pool for reuse
func (rp *RowPool) Put(row *[]int) {
	// Reset length but keep capacity
	*row = (*row)[:0]
	rp.pool.Put(row)
}

// RuneBufferPool implements a pool of rune slices
type RuneBufferPool struct {
	pool sync.Pool
	size int
}

// NewRuneBufferPool creates a new pool of rune slices with the specified size
func NewRuneBufferPool(size int) *RuneBufferPool {
	return &RuneBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]rune, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a rune buffer from the pool
func (rbp *RuneBufferPool) Get() *[]rune {
	return rbp.pool.Get().(*[]rune)
}

// Put returns a rune buffer to the pool
func (rbp *RuneBufferPool) Put(buffer *[]rune) {
	*buffer = (*buffer)[:0]
	rbp.pool.Put(buffer)
}

// AppendString decodes s into the buffer, replacing its contents.
func AppendString(buffer *[]rune, s string) []rune {
	*buffer = (*buffer)[:0]
	for _, r := range s {
		*buffer = append(*buffer, r)
	}
	return *buffer
}
