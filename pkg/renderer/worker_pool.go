package renderer

import (
	"context"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile Tile
	Seed int64
}

// TileResult contains the rendered pixels of one tile
type TileResult struct {
	Tile   Tile
	Pixels []core.Vec3 // Row-major over Tile.Bounds
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	renderer    *TileRenderer
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, numWorkers),
		resultQueue: make(chan TileResult, numWorkers),
		numWorkers:  numWorkers,
		renderer:    renderer,
	}
}

// Start launches the workers. Once ctx is cancelled, queued tasks are dropped unrendered.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(ctx)
	}
}

// Submit queues a task, returning false if ctx is cancelled first
func (wp *WorkerPool) Submit(ctx context.Context, task TileTask) bool {
	select {
	case wp.taskQueue <- task:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop signals that no more tasks will be submitted, waits for the workers
// to finish and closes the result channel
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results returns the channel of completed tiles; it is closed by Stop
func (wp *WorkerPool) Results() <-chan TileResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if ctx.Err() != nil {
			continue
		}

		pixels, stats := wp.renderer.RenderTile(task.Tile, task.Tile.Sampler(task.Seed))
		wp.resultQueue <- TileResult{
			Tile:   task.Tile,
			Pixels: pixels,
			Stats:  stats,
		}
	}
}
