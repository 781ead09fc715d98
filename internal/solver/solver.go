// Package solver runs the full pipeline over a grid buffer: load, trace the
// loop, classify interior cells. Results are memoised by input digest.
package solver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/thruflo/pipemaze/internal/grid"
	"github.com/thruflo/pipemaze/internal/interior"
	"github.com/thruflo/pipemaze/internal/logging"
	"github.com/thruflo/pipemaze/internal/trace"
)

// Result is the outcome of solving one grid. The fields are only meaningful
// together; a failed solve never yields a partial Result.
type Result struct {
	LoopLength int `json:"loop_length"`
	Farthest   int `json:"farthest"`
	Interior   int `json:"interior"`
	Exterior   int `json:"exterior"`
	Cells      int `json:"cells"`
}

// Options configures a Solver.
type Options struct {
	// CacheSize is the number of results retained. Zero disables caching.
	CacheSize int
	Logger    *logging.Logger
}

// Solver solves grids and remembers recent answers.
type Solver struct {
	cache *lru.Cache[string, Result]
	log   *logging.Logger
}

// New creates a Solver.
func New(opts Options) (*Solver, error) {
	if opts.CacheSize < 0 {
		return nil, fmt.Errorf("cache size must not be negative: %d", opts.CacheSize)
	}
	s := &Solver{log: opts.Logger}
	if s.log == nil {
		s.log = logging.Default()
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New[string, Result](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create result cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// Solve loads buf as a grid and solves it.
func (s *Solver) Solve(buf []byte) (Result, error) {
	buf = grid.Normalize(buf)
	key := digest(buf)
	log := s.log.With("grid", key[:12])

	if s.cache != nil {
		if res, ok := s.cache.Get(key); ok {
			log.Debug("result cache hit")
			return res, nil
		}
	}

	g, err := grid.New(buf)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load grid: %w", err)
	}

	res, err := s.SolveGrid(g)
	if err != nil {
		return Result{}, err
	}

	if s.cache != nil {
		s.cache.Add(key, res)
	}
	log.Debug("solved grid", "width", g.Width(), "rows", g.Rows(),
		"farthest", res.Farthest, "interior", res.Interior)
	return res, nil
}

// SolveGrid solves an already loaded grid without consulting the cache.
func (s *Solver) SolveGrid(g *grid.Grid) (Result, error) {
	loop, err := s.trace(g)
	if err != nil {
		return Result{}, err
	}
	inside := interior.Count(g, loop)
	return Result{
		LoopLength: loop.Length,
		Farthest:   loop.Farthest(),
		Interior:   inside,
		Exterior:   g.Cells() - loop.Length - inside,
		Cells:      g.Cells(),
	}, nil
}

// Analyze traces g and classifies every cell.
func (s *Solver) Analyze(g *grid.Grid) (*trace.Loop, interior.Map, error) {
	loop, err := s.trace(g)
	if err != nil {
		return nil, nil, err
	}
	return loop, interior.Classify(g, loop), nil
}

func (s *Solver) trace(g *grid.Grid) (*trace.Loop, error) {
	loop, err := trace.Trace(g)
	if err != nil {
		return nil, fmt.Errorf("failed to trace loop: %w", err)
	}
	s.log.Debug("traced loop", "length", loop.Length, "start", loop.Start,
		"start_shape", loop.StartShape.Tile().String())
	return loop, nil
}

// CacheLen returns the number of cached results.
func (s *Solver) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

func digest(buf []byte) string {
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
