// Package portfolio drives the persona selection, loading and content phases
// of the portfolio page.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/codr1/personafolio/internal/models"
	"github.com/codr1/personafolio/internal/theme"
)

// GenerationErrorNotice is shown to the visitor when a generation fails.
const GenerationErrorNotice = "Sorry, there was an error generating your portfolio. Please try selecting a persona again."

var (
	ErrStaleGeneration   = errors.New("generation superseded")
	ErrGenerationTimeout = errors.New("generation timed out")
)

// Phase is the controller's position in the selection/loading/content cycle.
type Phase string

const (
	PhaseSelection Phase = "selection"
	PhaseLoading   Phase = "loading"
	PhaseContent   Phase = "content"
)

// Generator produces stylesheets; *theme.Engine satisfies it.
type Generator interface {
	ResolveConfig(id models.PersonaID) (models.PersonaConfig, error)
	Generate(id models.PersonaID) (theme.Stylesheet, error)
}

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Config holds controller timing configuration.
type Config struct {
	// Simulated generation latency is drawn uniformly from [MinDelay, MaxDelay].
	MinDelay time.Duration
	MaxDelay time.Duration

	// Test hooks (nil uses real time)
	Sleep SleepFunc
	Clock Clock
}

// DefaultConfig returns the 2-4s latency range.
func DefaultConfig() *Config {
	return &Config{
		MinDelay: 2 * time.Second,
		MaxDelay: 4 * time.Second,
	}
}

// State is a snapshot of the controller.
type State struct {
	Phase          Phase            `json:"phase"`
	CurrentPersona models.PersonaID `json:"currentPersona,omitempty"`
	IsGenerating   bool             `json:"isGenerating"`
	GenerationID   string           `json:"generationId,omitempty"`
	StartedAt      time.Time        `json:"startedAt,omitzero"`
}

// PhaseChange is delivered to subscribers after every transition.
type PhaseChange struct {
	From    Phase
	To      Phase
	Persona models.PersonaID
	Err     error
}

type generation struct {
	id      string
	persona models.PersonaID
}

// Controller owns the page state and the single generated stylesheet slot.
type Controller struct {
	engine Generator
	doc    Document
	logger zerolog.Logger

	minDelay time.Duration
	maxDelay time.Duration
	sleep    SleepFunc
	clock    Clock

	mu    sync.Mutex
	state State

	subsMu  sync.Mutex
	subs    []subscription
	nextSub uint64
}

type subscription struct {
	id uint64
	fn func(PhaseChange)
}

func NewController(engine Generator, doc Document, config *Config, logger zerolog.Logger) *Controller {
	if config == nil {
		config = DefaultConfig()
	}
	c := &Controller{
		engine:   engine,
		doc:      doc,
		logger:   logger.With().Str("component", "portfolio_controller").Logger(),
		minDelay: config.MinDelay,
		maxDelay: config.MaxDelay,
		sleep:    config.Sleep,
		clock:    config.Clock,
		state:    State{Phase: PhaseSelection},
	}
	if c.maxDelay < c.minDelay {
		c.maxDelay = c.minDelay
	}
	if c.sleep == nil {
		c.sleep = sleepContext
	}
	if c.clock == nil {
		c.clock = realClock{}
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Inspect calls fn with the current state while holding the controller lock.
// Document reads inside fn see the page as of that state. fn must not call
// back into the controller.
func (c *Controller) Inspect(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.state)
}

// SelectPersona runs a full generation and blocks until it finishes. A call
// made while another generation is in flight is ignored and returns nil.
// Failures are handled (logged, notice shown, page reset) before the error
// is returned.
func (c *Controller) SelectPersona(ctx context.Context, id models.PersonaID) error {
	gen, ok := c.begin(id)
	if !ok {
		return nil
	}
	return c.run(ctx, gen)
}

// Begin starts a generation and completes it in the background. It reports
// false when the call was ignored because a generation is in flight.
func (c *Controller) Begin(ctx context.Context, id models.PersonaID) bool {
	gen, ok := c.begin(id)
	if !ok {
		return false
	}
	go func() {
		_ = c.run(ctx, gen)
	}()
	return true
}

// ResetToPersonaSelection returns to the selection phase and removes the
// generated stylesheet. It is safe to call in any phase.
func (c *Controller) ResetToPersonaSelection() {
	c.mu.Lock()
	from := c.state.Phase
	persona := c.state.CurrentPersona
	c.resetLocked()
	c.mu.Unlock()

	c.logger.Debug().Str("from", string(from)).Str("persona", string(persona)).Msg("Reset to persona selection")
	if from != PhaseSelection {
		c.emit(PhaseChange{From: from, To: PhaseSelection, Persona: persona})
	}
}

// ExpireStalled unwinds a generation running longer than maxAge. It reports
// whether a generation was expired.
func (c *Controller) ExpireStalled(maxAge time.Duration) bool {
	c.mu.Lock()
	if !c.state.IsGenerating || c.clock.Now().Sub(c.state.StartedAt) <= maxAge {
		c.mu.Unlock()
		return false
	}
	gen := generation{id: c.state.GenerationID, persona: c.state.CurrentPersona}
	c.mu.Unlock()

	return c.handleGenerationError(gen, fmt.Errorf("%w after %s", ErrGenerationTimeout, maxAge))
}

func (c *Controller) begin(id models.PersonaID) (generation, bool) {
	label := string(id)
	if config, err := c.engine.ResolveConfig(id); err == nil {
		label = config.Name
	}

	c.mu.Lock()
	if c.state.IsGenerating {
		c.mu.Unlock()
		c.logger.Debug().Str("persona", string(id)).Msg("Generation already in progress, ignoring selection")
		return generation{}, false
	}

	gen := generation{id: uuid.New().String(), persona: id}
	from := c.state.Phase
	c.state = State{
		Phase:          PhaseLoading,
		CurrentPersona: id,
		IsGenerating:   true,
		GenerationID:   gen.id,
		StartedAt:      c.clock.Now(),
	}

	c.doc.SetVisible(ElementPersonaSelection, false)
	c.doc.SetVisible(ElementPortfolioSection, true)
	c.doc.SetVisible(ElementContent, false)
	c.doc.SetVisible(ElementLoading, true)
	c.doc.SetText(ElementSelectedPersonaName, label)
	c.mu.Unlock()

	c.logger.Info().Str("persona", string(id)).Str("generation_id", gen.id).Msg("Persona generation started")
	c.emit(PhaseChange{From: from, To: PhaseLoading, Persona: id})
	return gen, true
}

func (c *Controller) run(ctx context.Context, gen generation) error {
	if err := c.sleep(ctx, c.nextDelay()); err != nil {
		err = fmt.Errorf("%w: %v", theme.ErrGenerationFailure, err)
		c.handleGenerationError(gen, err)
		return err
	}

	sheet, err := c.generate(gen.persona)
	if err != nil {
		c.handleGenerationError(gen, err)
		return err
	}

	c.mu.Lock()
	if !c.isCurrentLocked(gen) {
		c.mu.Unlock()
		c.logger.Warn().Str("generation_id", gen.id).Msg("Discarding superseded generation result")
		return ErrStaleGeneration
	}

	c.doc.InjectStylesheet(StyleNode{
		ID:           theme.StylesheetID,
		CSS:          sheet.CSS,
		Persona:      sheet.Persona,
		GenerationID: gen.id,
	})
	c.doc.SetBodyClass(sheet.BodyClass)
	c.doc.SetVisible(ElementLoading, false)
	c.doc.SetVisible(ElementContent, true)
	c.state.Phase = PhaseContent
	c.state.IsGenerating = false
	c.mu.Unlock()

	c.logger.Info().
		Str("persona", string(gen.persona)).
		Str("generation_id", gen.id).
		Int("css_bytes", len(sheet.CSS)).
		Msg("Applied persona stylesheet")
	c.emit(PhaseChange{From: PhaseLoading, To: PhaseContent, Persona: gen.persona})
	return nil
}

// generate converts engine panics into generation failures.
func (c *Controller) generate(id models.PersonaID) (sheet theme.Stylesheet, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: panic: %v", theme.ErrGenerationFailure, recovered)
		}
	}()
	return c.engine.Generate(id)
}

// handleGenerationError unwinds gen to a clean selection phase. It reports
// false when gen was already superseded.
func (c *Controller) handleGenerationError(gen generation, cause error) bool {
	c.mu.Lock()
	if !c.isCurrentLocked(gen) {
		c.mu.Unlock()
		c.logger.Debug().Err(cause).Str("generation_id", gen.id).Msg("Ignoring failure of superseded generation")
		return false
	}
	from := c.state.Phase
	c.doc.SetVisible(ElementLoading, false)
	c.doc.Notify(GenerationErrorNotice)
	c.resetLocked()
	c.mu.Unlock()

	c.logger.Error().
		Err(cause).
		Str("persona", string(gen.persona)).
		Str("generation_id", gen.id).
		Msg("Portfolio generation failed")
	c.emit(PhaseChange{From: from, To: PhaseSelection, Persona: gen.persona, Err: cause})
	return true
}

func (c *Controller) resetLocked() {
	c.doc.RemoveStylesheet(theme.StylesheetID)
	c.doc.SetBodyClass("")
	c.doc.SetVisible(ElementLoading, false)
	c.doc.SetVisible(ElementContent, false)
	c.doc.SetVisible(ElementPortfolioSection, false)
	c.doc.SetVisible(ElementPersonaSelection, true)
	c.state = State{Phase: PhaseSelection}
}

func (c *Controller) isCurrentLocked(gen generation) bool {
	return c.state.IsGenerating && c.state.GenerationID == gen.id
}

func (c *Controller) nextDelay() time.Duration {
	spread := c.maxDelay - c.minDelay
	if spread <= 0 {
		return c.minDelay
	}
	return c.minDelay + time.Duration(rand.Int64N(int64(spread)+1))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
