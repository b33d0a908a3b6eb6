package report

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGenerator struct {
	mu    sync.Mutex
	calls int
}

func (g *countingGenerator) Generate(context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return nil
}

func (g *countingGenerator) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// fakeClock reemplaza now/after del scheduler: los disparos se inyectan por
// canal y cada espera registrada queda disponible para inspección.
type fakeClock struct {
	now    time.Time
	fires  chan time.Time
	delays chan time.Duration
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{
		now:    now,
		fires:  make(chan time.Time),
		delays: make(chan time.Duration, 16),
	}
}

func (c *fakeClock) install(s *Scheduler) {
	s.now = func() time.Time { return c.now }
	s.after = func(d time.Duration) <-chan time.Time {
		c.delays <- d
		return c.fires
	}
}

func (c *fakeClock) nextDelay(t *testing.T) time.Duration {
	t.Helper()
	select {
	case d := <-c.delays:
		return d
	case <-time.After(time.Second):
		t.Fatal("el scheduler no armó ninguna espera")
		return 0
	}
}

func TestNextAnchor_PorDiaDeSemana(t *testing.T) {
	// 2026-08-31 es lunes.
	monday := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"lunes a medianoche envuelve a 7 días", monday, monday.AddDate(0, 0, 7)},
		{"lunes por la tarde envuelve a 7 días", monday.Add(15 * time.Hour), monday.AddDate(0, 0, 7)},
		{"martes apunta al lunes siguiente", monday.AddDate(0, 0, 1), monday.AddDate(0, 0, 7)},
		{"jueves apunta al lunes siguiente", monday.AddDate(0, 0, 3).Add(9 * time.Hour), monday.AddDate(0, 0, 7)},
		{"sábado apunta al lunes siguiente", monday.AddDate(0, 0, 5), monday.AddDate(0, 0, 7)},
		{"domingo 23:59 apunta al lunes inmediato", monday.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute), monday.AddDate(0, 0, 7)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextAnchor(tc.now)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, time.Monday, got.Weekday())
			assert.Zero(t, got.Hour())
			assert.Zero(t, got.Minute())
		})
	}
}

func TestScheduler_PrimeraEsperaHastaElAncla(t *testing.T) {
	gen := &countingGenerator{}
	s := NewScheduler(gen, zerolog.Nop())

	// Miércoles 10:30: el ancla es el lunes siguiente a medianoche.
	now := time.Date(2026, time.September, 2, 10, 30, 0, 0, time.UTC)
	clock := newFakeClock(now)
	clock.install(s)

	s.Start(context.Background())
	defer s.Stop()

	assert.Equal(t, NextAnchor(now).Sub(now), clock.nextDelay(t))
	assert.Zero(t, gen.count(), "no hay disparo antes del ancla")
}

// Tres ciclos simulados: un disparo por vencimiento, re-armado con período
// fijo de 7 días tras cada uno.
func TestScheduler_DisparaExactamenteUnaVezPorCiclo(t *testing.T) {
	gen := &countingGenerator{}
	s := NewScheduler(gen, zerolog.Nop())

	now := time.Date(2026, time.September, 2, 10, 30, 0, 0, time.UTC)
	clock := newFakeClock(now)
	clock.install(s)

	s.Start(context.Background())
	defer s.Stop()
	clock.nextDelay(t) // espera inicial hasta el ancla

	for cycle := 1; cycle <= 3; cycle++ {
		clock.fires <- time.Time{}
		// La siguiente espera solo se arma después de completar el disparo.
		d := clock.nextDelay(t)
		assert.Equal(t, 7*24*time.Hour, d, "re-armado con período fijo")
		assert.Equal(t, cycle, gen.count())
	}
}

func TestScheduler_StartEsIdempotente(t *testing.T) {
	gen := &countingGenerator{}
	s := NewScheduler(gen, zerolog.Nop())

	now := time.Date(2026, time.September, 2, 10, 30, 0, 0, time.UTC)
	clock := newFakeClock(now)
	clock.install(s)

	s.Start(context.Background())
	defer s.Stop()
	s.Start(context.Background())
	s.Start(context.Background())

	clock.nextDelay(t)
	select {
	case d := <-clock.delays:
		t.Fatalf("un segundo Start no debe armar otro timer (espera extra de %v)", d)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestScheduler_StopCancelaSinDisparosPosteriores(t *testing.T) {
	gen := &countingGenerator{}
	s := NewScheduler(gen, zerolog.Nop())

	now := time.Date(2026, time.September, 2, 10, 30, 0, 0, time.UTC)
	clock := newFakeClock(now)
	clock.install(s)

	s.Start(context.Background())
	clock.nextDelay(t)

	clock.fires <- time.Time{}
	clock.nextDelay(t)
	require.Equal(t, 1, gen.count())

	s.Stop()

	// Tras Stop el ciclo terminó: nadie escucha el canal de disparos.
	select {
	case clock.fires <- time.Time{}:
		t.Fatal("el ciclo sigue escuchando disparos después de Stop")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 1, gen.count())
}

func TestScheduler_StopSinStartEsInofensivo(t *testing.T) {
	s := NewScheduler(&countingGenerator{}, zerolog.Nop())
	s.Stop()
}

func TestGeneratorFunc(t *testing.T) {
	called := false
	g := GeneratorFunc(func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, g.Generate(context.Background()))
	assert.True(t, called)
}
