package field

import "sync"

// Pool provides sync.Pool-based Grid reuse for scratch grids in
// per-frame processing loops.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get returns a zeroed grid with the requested dimensions.
// Callers must return it via Put when done.
func (p *Pool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.resize(width, height)
	g.Fill(0)
	return g
}

// Put returns a grid to the pool for reuse.
// The caller must not use the grid after calling Put.
func (p *Pool) Put(g *Grid) {
	if g == nil {
		return
	}
	p.pool.Put(g)
}

var defaultPool = NewPool()

// GetGrid returns a zeroed scratch grid from the package pool.
func GetGrid(width, height int) *Grid { return defaultPool.Get(width, height) }

// PutGrid returns a grid obtained from GetGrid.
func PutGrid(g *Grid) { defaultPool.Put(g) }

// resize sets the dimensions, reusing existing capacity when possible.
func (g *Grid) resize(width, height int) {
	if width <= 0 || height <= 0 {
		g.width, g.height, g.data = 0, 0, g.data[:0]
		return
	}
	n := width * height
	if n <= cap(g.data) {
		g.data = g.data[:n]
	} else {
		g.data = make([]float64, n)
	}
	g.width, g.height = width, height
}
