package insighting

import (
	"math/rand"
	"sync"
	"time"
)

// ViewsSource fornece o número de visualizações, que a plataforma ainda não mede
type ViewsSource interface {
	// Views devolve um valor no intervalo [min, max)
	Views(min, max int) int
}

// RandomViewsSource simula visualizações com um gerador pseudoaleatório
type RandomViewsSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomViewsSource() *RandomViewsSource {
	return &RandomViewsSource{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *RandomViewsSource) Views(min, max int) int {
	if max <= min {
		return min
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return min + s.rnd.Intn(max-min)
}

// FixedViewsSource devolve sempre o mesmo valor
type FixedViewsSource int

func (f FixedViewsSource) Views(int, int) int {
	return int(f)
}
