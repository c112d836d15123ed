package playback

import (
	"fmt"

	"github.com/san-kum/matcube/internal/accum"
	"github.com/san-kum/matcube/internal/matrix"
	"github.com/san-kum/matcube/internal/space"
	"github.com/san-kum/matcube/internal/traversal"
)

// State of the playback machine.
type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Observer receives every consumed step, in generator order.
type Observer interface {
	OnStep(step space.MacStep, delta accum.Delta)
}

// Controller sequences one simulation run. Not safe for concurrent
// use; the caller serializes access.
type Controller struct {
	state      State
	configured bool

	dims space.Dims
	alg  traversal.Algorithm
	a, b *matrix.Dense

	gen traversal.Generator
	acc *accum.Accumulator
	t   int

	observers []Observer
}

func New() *Controller {
	return &Controller{state: Idle}
}

func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }

// Configure validates and installs a new run: fresh generator, zeroed
// accumulator, cursor at zero, state Idle. On failure the previous
// configuration is left untouched.
func (c *Controller) Configure(d space.Dims, alg traversal.Algorithm, a, b *matrix.Dense) error {
	if err := d.Validate(); err != nil {
		return err
	}
	gen, err := alg.Generator(d)
	if err != nil {
		return err
	}
	if a.Rows != d.M || a.Cols != d.K {
		return fmt.Errorf("%w: A is %dx%d, want %dx%d", space.ErrInvalidDimension, a.Rows, a.Cols, d.M, d.K)
	}
	if b.Rows != d.K || b.Cols != d.N {
		return fmt.Errorf("%w: B is %dx%d, want %dx%d", space.ErrInvalidDimension, b.Rows, b.Cols, d.K, d.N)
	}

	c.dims, c.alg, c.a, c.b = d, alg, a, b
	c.gen = gen
	c.acc = accum.New(d, a, b)
	c.t = 0
	c.state = Idle
	c.configured = true
	return nil
}

func (c *Controller) Start() error {
	if c.state != Idle || !c.configured {
		return transitionErr("start", c.state)
	}
	c.state = Running
	return nil
}

func (c *Controller) Pause() error {
	if c.state != Running {
		return transitionErr("pause", c.state)
	}
	c.state = Paused
	return nil
}

func (c *Controller) Resume() error {
	if c.state != Paused {
		return transitionErr("resume", c.state)
	}
	c.state = Running
	return nil
}

// SingleStep consumes exactly one step. Legal from Idle or Paused;
// the state is kept unless the run finishes. Disallowed while
// Running so it cannot race the continuous advance.
func (c *Controller) SingleStep() error {
	if (c.state != Idle && c.state != Paused) || !c.configured {
		return transitionErr("single-step", c.state)
	}
	c.consume(1)
	return nil
}

// Tick consumes up to elapsedSteps steps; larger values mean faster
// playback. Clamps at the end of the run and transitions to Finished.
func (c *Controller) Tick(elapsedSteps int) error {
	if c.state != Running {
		return transitionErr("tick", c.state)
	}
	c.consume(elapsedSteps)
	return nil
}

// Reset abandons the current run: cursor to zero, accumulation
// zeroed, generator rebuilt from the unchanged configuration. Legal
// from any state.
func (c *Controller) Reset() error {
	c.t = 0
	c.state = Idle
	if !c.configured {
		return nil
	}
	gen, err := c.alg.Generator(c.dims) // configuration already validated
	if err != nil {
		return err
	}
	c.gen = gen
	c.acc.Reset()
	return nil
}

func (c *Controller) consume(n int) {
	total := c.gen.Len()
	for ; n > 0 && c.t < total; n-- {
		step := c.gen.At(c.t)
		delta := c.acc.Apply(step)
		c.t++
		for _, o := range c.observers {
			o.OnStep(step, delta)
		}
	}
	if c.t == total {
		c.state = Finished
	}
}

func transitionErr(op string, s State) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, s)
}

func (c *Controller) State() State { return c.state }

// Progress returns the cursor and the total step count.
func (c *Controller) Progress() (t, total int) {
	if !c.configured {
		return 0, 0
	}
	return c.t, c.gen.Len()
}

// Peek returns the next step to be consumed, if any.
func (c *Controller) Peek() (space.MacStep, bool) {
	if !c.configured || c.t >= c.gen.Len() {
		return space.MacStep{}, false
	}
	return c.gen.At(c.t), true
}

func (c *Controller) Dims() space.Dims { return c.dims }

func (c *Controller) AlgorithmName() string {
	if c.alg == nil {
		return ""
	}
	return c.alg.Name()
}

// Accum exposes the live accumulation state for rendering. Callers
// must treat it as read-only.
func (c *Controller) Accum() *accum.Accumulator { return c.acc }
