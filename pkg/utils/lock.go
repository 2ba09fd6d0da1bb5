package utils

import (
	"context"
	"sync"
)

// KeyedLocker serializa chamadas com a mesma chave dentro de um único processo
type KeyedLocker struct {
	locks sync.Map
}

func (l *KeyedLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	value, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	mu := value.(*sync.Mutex)

	mu.Lock()
	defer mu.Unlock()

	return fn(ctx)
}
