package ovr

import (
	"sync"
	"sync/atomic"
)

var initialized atomic.Bool

// Context is a live runtime session. The runtime allows one per process.
type Context struct {
	rt   Runtime
	once sync.Once
}

// Init starts a session on rt. It fails with ErrAlreadyInitialized while
// another Context is live, or with the runtime's InitError.
func Init(rt Runtime, app ApplicationType) (*Context, error) {
	if !initialized.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}
	if err := result(rt.Init(app)); err != nil {
		initialized.Store(false)
		return nil, err
	}
	return &Context{rt: rt}, nil
}

// Shutdown ends the session. Managers obtained from c must not be used
// afterwards. Calling Shutdown more than once is a no-op.
func (c *Context) Shutdown() {
	c.once.Do(func() {
		c.rt.Shutdown()
		initialized.Store(false)
	})
}

func (c *Context) System() *System { return &System{rt: c.rt.System()} }

func (c *Context) Compositor() *Compositor { return &Compositor{rt: c.rt.Compositor()} }

func (c *Context) Settings() *Settings { return &Settings{rt: c.rt.Settings()} }

func (c *Context) ChaperoneSetup() *ChaperoneSetup {
	return &ChaperoneSetup{rt: c.rt.ChaperoneSetup()}
}

func (c *Context) Input() *Input { return &Input{rt: c.rt.Input()} }
