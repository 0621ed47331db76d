package db

import (
	"github.com/fsdevblog/smartlinks/internal/db/memory"
)

// MemoryStorage обертка над хранилищем в памяти, чтобы фабрика и репозитории не зависели от пакета memory напрямую.
type MemoryStorage struct {
	*memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		MStorage: memory.NewMemStorage(),
	}
}
