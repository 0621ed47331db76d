package services

import (
	"math/rand/v2"
	"regexp"
	"sync"
	"testing"

	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9]{8}$`)

func TestGenerateID(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2)) //nolint:gosec
	seen := make(map[string]struct{})
	for range 1000 {
		id := GenerateID(rnd, models.SmartlinkIDLength)
		require.Regexp(t, idPattern, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}

func TestGenerateID_Deterministic(t *testing.T) {
	a := GenerateID(rand.New(rand.NewPCG(42, 42)), models.SmartlinkIDLength) //nolint:gosec
	b := GenerateID(rand.New(rand.NewPCG(42, 42)), models.SmartlinkIDLength) //nolint:gosec
	assert.Equal(t, a, b)
}

func TestIDGenerator_Concurrent(t *testing.T) {
	g := NewIDGenerator(NewSecureSource(), models.SmartlinkIDLength)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]struct{})
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				id := g.Next()
				mu.Lock()
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, 800)
	for id := range ids {
		assert.Regexp(t, idPattern, id)
	}
}
