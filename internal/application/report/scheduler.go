package report

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// fireTimeout tiempo máximo para compilar y persistir un snapshot disparado.
const fireTimeout = 30 * time.Second

// Generator lo implementa WeeklyReportUseCase; el scheduler solo necesita
// poder disparar una generación.
type Generator interface {
	Generate(ctx context.Context) error
}

// GeneratorFunc adapta una función al puerto Generator.
type GeneratorFunc func(ctx context.Context) error

// Generate implementa Generator.
func (f GeneratorFunc) Generate(ctx context.Context) error { return f(ctx) }

// Scheduler dispara la generación del reporte semanal en cada ancla
// (lunes 00:00:00 hora local) y luego con período fijo de 7 días.
//
// El período fijo significa que el instante de disparo deriva respecto del
// calendario durante la vida del proceso; es una decisión explícita, no se
// recalcula contra el ancla. Un proceso nuevo recalcula desde el reloj de
// pared: no hay estado de agenda persistido.
//
// Invariante de timer único: Start arma el ciclo una sola vez por proceso;
// llamadas repetidas no crean un segundo timer para la misma fecha límite.
type Scheduler struct {
	generator Generator
	log       zerolog.Logger

	// inyectables en tests
	now    func() time.Time
	after  func(time.Duration) <-chan time.Time
	period time.Duration

	mu     sync.Mutex
	armed  bool
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler construye el scheduler con reloj real y período de 7 días.
func NewScheduler(generator Generator, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		generator: generator,
		log:       log,
		now:       time.Now,
		after:     time.After,
		period:    7 * 24 * time.Hour,
	}
}

// NextAnchor calcula la próxima ocurrencia del ancla semanal: el lunes
// siguiente a las 00:00:00 locales. Si hoy ya es lunes se envuelve a 7 días
// (la medianoche de hoy quedó en el pasado).
func NextAnchor(now time.Time) time.Time {
	days := (int(time.Monday) + 7 - int(now.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return time.Date(now.Year(), now.Month(), now.Day()+days, 0, 0, 0, 0, now.Location())
}

// Start arma el ciclo Waiting → Firing → Waiting. Idempotente: una segunda
// llamada durante la vida del proceso no arma otro timer.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.armed {
		s.log.Debug().Msg("scheduler ya armado, se ignora el segundo Start")
		return
	}
	s.armed = true

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	now := s.now()
	next := NextAnchor(now)
	delay := next.Sub(now)
	s.log.Info().
		Time("next_fire", next).
		Dur("delay", delay).
		Msg("scheduler semanal armado")

	go s.run(runCtx, delay)
}

// Stop cancela el timer pendiente y espera a que el ciclo termine.
// Tras Stop no ocurre ningún disparo adicional.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scheduler) run(ctx context.Context, delay time.Duration) {
	defer close(s.done)

	wait := s.after(delay)
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("scheduler semanal detenido")
			return
		case <-wait:
			s.fire(ctx)
			// Re-armado con período fijo, no contra el calendario.
			wait = s.after(s.period)
		}
	}
}

// fire ejecuta una generación. Los errores se registran y se descartan: el
// ciclo nunca tumba el proceso y sigue esperando el próximo período.
func (s *Scheduler) fire(ctx context.Context) {
	fireCtx, cancel := context.WithTimeout(ctx, fireTimeout)
	defer cancel()

	if err := s.generator.Generate(fireCtx); err != nil {
		s.log.Error().Err(err).Msg("generación del reporte semanal")
		return
	}
	s.log.Info().Msg("reporte semanal disparado por scheduler")
}
