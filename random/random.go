// Package random отделяет шум генератора погоды и рыночного прогноза от
// глобального источника, чтобы в тестах его можно было зафиксировать.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source равномерное число из [0, 1)
type Source interface {
	Float64() float64
}

// Global использует общий источник math/rand/v2, безопасный для горутин
type Global struct{}

func (Global) Float64() float64 { return rand.Float64() }

// Fixed всегда возвращает V; Fixed{V: 0.5} обнуляет любой симметричный шум
type Fixed struct {
	V float64
}

func (f Fixed) Float64() float64 { return f.V }

// Seeded детерминированный источник для воспроизводимых прогонов.
// Один источник делят все запросы сервера, поэтому доступ под мьютексом.
func Seeded(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
