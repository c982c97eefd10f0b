package digestpool

import (
	"context"
	gosha256 "crypto/sha256"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"massnet.org/shasum/crypto/sha256"
	"massnet.org/shasum/massutil/service"
)

func newStartedPool(t *testing.T, workers, cacheSize int) *Pool {
	p := NewPool(workers, cacheSize)
	require.NoError(t, p.Start())
	t.Cleanup(func() { p.Stop() })
	return p
}

func makeInputs(n int) [][]byte {
	inputs := make([][]byte, n)
	for i := range inputs {
		inputs[i] = []byte(fmt.Sprintf("input-%d-%s", i, string(make([]byte, i%130))))
	}
	return inputs
}

func TestHashAll(t *testing.T) {
	p := newStartedPool(t, 4, 0)
	inputs := makeInputs(200)

	results, err := p.HashAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.NoError(t, r.Err)
		assert.Equal(t, gosha256.Sum256(inputs[i]), [sha256.Size]byte(r.Digest), "input %d", i)
	}
}

func TestHashAll_Cache(t *testing.T) {
	p := newStartedPool(t, 2, 16)
	inputs := [][]byte{[]byte("abcd"), []byte("abcd"), []byte(""), []byte("abcd")}

	for round := 0; round < 2; round++ {
		results, err := p.HashAll(context.Background(), inputs)
		require.NoError(t, err)
		assert.Equal(t, "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589", results[0].Digest.String())
		assert.Equal(t, results[0].Digest, results[3].Digest)
		assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", results[2].Digest.String())
	}

	assert.Equal(t, 2, p.cache.Len())
	hits, misses := p.cache.Stats()
	assert.Equal(t, uint64(8), hits+misses)
	assert.True(t, hits >= 4, "hits %d", hits)
}

func TestHashAll_Empty(t *testing.T) {
	p := newStartedPool(t, 1, 0)
	results, err := p.HashAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestHashAll_Cancelled(t *testing.T) {
	p := newStartedPool(t, 2, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.HashAll(ctx, makeInputs(10))
	assert.Equal(t, context.Canceled, err)
}

func TestHashAll_NotStarted(t *testing.T) {
	p := NewPool(2, 0)
	_, err := p.HashAll(context.Background(), makeInputs(1))
	assert.Equal(t, service.ErrStopped, err)

	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
	_, err = p.HashAll(context.Background(), makeInputs(1))
	assert.Equal(t, service.ErrStopped, err)
}

func BenchmarkHashAll(b *testing.B) {
	p := NewPool(8, 0)
	if err := p.Start(); err != nil {
		b.Fatal(err)
	}
	defer p.Stop()
	inputs := makeInputs(256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.HashAll(context.Background(), inputs)
	}
}
