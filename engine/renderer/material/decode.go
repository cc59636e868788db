package material

import (
	"errors"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/lumen/common"
)

// DecodeTextures decodes textures concurrently on a worker pool and returns their pixel data
// in input order. Every texture is attempted; the returned error joins all failures.
//
// Parameters:
//   - workers: maximum number of concurrent decoders, at least 1 is used
//   - textures: the textures to decode
//
// Returns:
//   - []common.TextureStagingData: decoded pixels, one entry per texture
//   - error: joined decode errors, or nil
func DecodeTextures(workers int, textures ...*common.ImportedTexture) ([]common.TextureStagingData, error) {
	results := make([]common.TextureStagingData, len(textures))
	if len(textures) == 0 {
		return results, nil
	}
	errs := make([]error, len(textures))

	pool := worker.NewDynamicWorkerPool(max(workers, 1), len(textures), time.Second)
	defer pool.Stop()

	var wg sync.WaitGroup
	for i, tex := range textures {
		wg.Add(1)
		idx, t := i, tex
		pool.SubmitTask(worker.Task{
			ID:      idx,
			Payload: t,
			Do: func() (any, error) {
				defer wg.Done()

				pixels, w, h, err := t.Decode()
				if err != nil {
					errs[idx] = err
					return nil, err
				}
				results[idx] = common.TextureStagingData{Pixels: pixels, Width: w, Height: h}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return results, errors.Join(errs...)
}
