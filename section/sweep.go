package section

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Sweep computes the cube cross-section at every coordinate in zs, fanning
// the queries out over the given number of workers. Every query is
// independent, so results line up index for index with zs regardless of
// scheduling. A worker count below one runs everything on a single worker.
func Sweep(zs []float64, rotation mgl64.Vec3, workers int) []Result {
	results := make([]Result, len(zs))
	if len(zs) == 0 {
		return results
	}

	workers = max(workers, 1)
	chunkSize := (len(zs) + workers - 1) / workers

	var wg sync.WaitGroup
	for workerID := 0; workerID < workers; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = Cube(zs[i], rotation)
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, len(zs)))
	}
	wg.Wait()

	return results
}
