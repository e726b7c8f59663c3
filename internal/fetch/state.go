package fetch

// Status enumerates the lifecycle of one screen's remote data.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

// String returns a short label for logging.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Controller drives the idle → loading → (ready | error) state machine for
// one screen's data. Data is held only while the status is ready; an error
// commit replaces any previously ready data wholesale.
//
// Each Begin call bumps a generation counter and returns the new value.
// Commit applies a result only when its generation is still current, so a
// response from a superseded load (rapid retries, a date change while a
// fetch is in flight) is dropped instead of overwriting fresher state.
//
// Controller is not safe for concurrent use; in this application all
// commits happen on the Bubble Tea update loop.
type Controller[T any] struct {
	gen    uint64
	status Status
	data   *T
	err    error
}

// Begin transitions to loading, clears any prior error, and returns the
// generation the caller must present when committing.
func (c *Controller[T]) Begin() uint64 {
	c.gen++
	c.status = StatusLoading
	c.err = nil
	return c.gen
}

// Commit applies the outcome of the load started with gen. It reports
// whether the result was accepted; stale generations leave the controller
// untouched.
func (c *Controller[T]) Commit(gen uint64, data *T, err error) bool {
	if gen != c.gen {
		return false
	}
	if err != nil {
		c.status = StatusError
		c.data = nil
		c.err = err
		return true
	}
	c.status = StatusReady
	c.data = data
	c.err = nil
	return true
}

// Seed installs provisional data (a persisted snapshot) and marks the
// controller ready without touching the generation, so an in-flight or
// subsequent load still supersedes it.
func (c *Controller[T]) Seed(data *T) {
	if data == nil {
		return
	}
	if c.status == StatusReady || c.status == StatusError {
		return
	}
	c.status = StatusReady
	c.data = data
}

// Invalidate returns the controller to idle and discards data and error.
// Used when the active profile changes and cached state no longer applies.
func (c *Controller[T]) Invalidate() {
	c.gen++
	c.status = StatusIdle
	c.data = nil
	c.err = nil
}

// Status returns the current lifecycle status.
func (c *Controller[T]) Status() Status { return c.status }

// Data returns the ready view-model, or nil in any other status.
func (c *Controller[T]) Data() *T {
	if c.status != StatusReady {
		return nil
	}
	return c.data
}

// Latest returns the most recent data regardless of status: the previous
// ready value (or a seeded snapshot) while a revalidation is in flight, nil
// after an error or invalidation. Data is the canonical accessor; Latest
// exists for optimistic repaints.
func (c *Controller[T]) Latest() *T { return c.data }

// Err returns the load failure, or nil outside the error status.
func (c *Controller[T]) Err() error {
	if c.status != StatusError {
		return nil
	}
	return c.err
}

// NeedsLoad reports whether the screen should issue a load when it becomes
// visible: it has never loaded, or was invalidated.
func (c *Controller[T]) NeedsLoad() bool {
	return c.status == StatusIdle
}
