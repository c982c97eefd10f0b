// Package digestpool hashes many independent inputs in parallel. Each input
// is still hashed by a single sequential engine call; only distinct inputs
// run concurrently.
package digestpool

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"

	"massnet.org/shasum/crypto/sha256"
	"massnet.org/shasum/logging"
	"massnet.org/shasum/massutil/ccache"
	"massnet.org/shasum/massutil/service"
)

// Result is the digest of the input at Index.
type Result struct {
	Index  int
	Digest sha256.Digest
	Err    error
}

type Pool struct {
	*service.BaseService
	l       sync.RWMutex
	workers int
	pool    *ants.Pool
	cache   *ccache.DigestCache
}

// NewPool creates a pool of workers goroutines. A positive cacheSize
// memoises digests of recently seen inputs.
func NewPool(workers, cacheSize int) *Pool {
	p := &Pool{workers: workers}
	if cacheSize > 0 {
		p.cache = ccache.NewDigestCache(cacheSize)
	}
	p.BaseService = service.NewBaseService(p, "digestpool")
	return p
}

func (p *Pool) OnStart() error {
	pool, err := ants.NewPool(p.workers)
	if err != nil {
		return errors.Wrap(err, "failed to create worker pool")
	}
	p.l.Lock()
	p.pool = pool
	p.l.Unlock()
	return nil
}

func (p *Pool) OnStop() error {
	p.l.Lock()
	defer p.l.Unlock()
	p.pool.Release()
	p.pool = nil
	if p.cache != nil {
		hits, misses := p.cache.Stats()
		logging.VPrint(logging.DEBUG, "digest cache stats", logging.LogFormat{"hits": hits, "misses": misses})
	}
	return nil
}

func (p *Pool) sum(input []byte) (sha256.Digest, error) {
	if p.cache == nil {
		return sha256.Sum256(input)
	}
	key := string(input)
	if d, ok := p.cache.Get(key); ok {
		return d, nil
	}
	d, err := sha256.Sum256(input)
	if err != nil {
		return d, err
	}
	p.cache.Add(key, d)
	return d, nil
}

// HashAll hashes every input and returns the results in input order.
// It stops submitting work once ctx is done and returns ctx.Err().
func (p *Pool) HashAll(ctx context.Context, inputs [][]byte) ([]Result, error) {
	p.l.RLock()
	defer p.l.RUnlock()
	if p.pool == nil {
		return nil, service.ErrStopped
	}

	results := make([]Result, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		i := i
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			results[i].Index = i
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Digest, results[i].Err = p.sum(inputs[i])
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, errors.Wrap(err, "failed to submit hash task")
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logging.VPrint(logging.TRACE, "hashed inputs", logging.LogFormat{"count": len(inputs)})
	return results, nil
}
