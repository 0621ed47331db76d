package services

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID возвращает строку длины length из символов [A-Za-z0-9], взятых из rnd.
func GenerateID(rnd *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = idAlphabet[rnd.IntN(len(idAlphabet))]
	}
	return string(b)
}

// IDGenerator потокобезопасная обертка над GenerateID. *rand.Rand сам по себе не потокобезопасен.
type IDGenerator struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	length int
}

func NewIDGenerator(src rand.Source, length int) *IDGenerator {
	return &IDGenerator{
		rnd:    rand.New(src), //nolint:gosec
		length: length,
	}
}

// Next возвращает очередной идентификатор.
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return GenerateID(g.rnd, g.length)
}

// NewSecureSource источник ChaCha8 с сидом из crypto/rand.
func NewSecureSource() rand.Source {
	var seed [32]byte
	_, _ = crand.Read(seed[:]) // crypto/rand.Read не возвращает ошибок начиная с go 1.24
	return rand.NewChaCha8(seed)
}
