// Package callbackgroup provides the grouping handle that owns callback
// sources. An executor takes ready work from a group, and a dispatched
// work item holds its group alive until the callback has been invoked.
//
// The package stores membership and the mutually-exclusive take flag;
// it does not schedule. Which group is taken from next is the
// executor's decision.
package callbackgroup

import (
	"sync"
	"sync/atomic"

	"github.com/jhdcs/rclcpp"
	"github.com/jhdcs/rclcpp/id"
)

// Type determines how an executor may dispatch callbacks from a group.
type Type uint8

const (
	// MutuallyExclusive means at most one callback from the group runs
	// at a time. This is the default.
	MutuallyExclusive Type = iota
	// Reentrant means callbacks from the group may run concurrently.
	Reentrant
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case MutuallyExclusive:
		return "mutually_exclusive"
	case Reentrant:
		return "reentrant"
	default:
		return "unknown"
	}
}

// Group owns a set of callback sources and carries the flag a
// mutually-exclusive executor toggles around dispatch. It is safe for
// concurrent use.
type Group struct {
	id         id.EntityID
	typ        Type
	autoAdd    bool
	canBeTaken atomic.Bool
	associated atomic.Bool

	mu            sync.Mutex
	subscriptions []rclcpp.Subscription
	timers        []rclcpp.Timer
	services      []rclcpp.Service
	clients       []rclcpp.Client
	waitables     []rclcpp.Waitable
}

// Option configures a Group at construction time.
type Option func(*Group)

// WithAutoAddToExecutor controls whether an executor should collect
// this group automatically when its owning node is added. Defaults to
// true.
func WithAutoAddToExecutor(auto bool) Option {
	return func(g *Group) {
		g.autoAdd = auto
	}
}

// New creates a Group of the given type. A fresh group can be taken
// from immediately.
func New(typ Type, opts ...Option) *Group {
	g := &Group{
		id:      id.NewGroupID(),
		typ:     typ,
		autoAdd: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.canBeTaken.Store(true)
	return g
}

// ID returns the group's identity.
func (g *Group) ID() id.EntityID { return g.id }

// Type returns the dispatch type of the group.
func (g *Group) Type() Type { return g.typ }

// AutoAddToExecutor reports whether an executor should collect this
// group automatically with its node.
func (g *Group) AutoAddToExecutor() bool { return g.autoAdd }

// CanBeTakenFrom reports whether an executor may currently take work
// from this group. A mutually-exclusive executor clears the flag while
// one of the group's callbacks is in flight.
func (g *Group) CanBeTakenFrom() bool { return g.canBeTaken.Load() }

// SetCanBeTakenFrom sets the take flag.
func (g *Group) SetCanBeTakenFrom(v bool) { g.canBeTaken.Store(v) }

// AssociatedWithExecutor reports whether an executor has claimed this
// group.
func (g *Group) AssociatedWithExecutor() bool { return g.associated.Load() }

// SetAssociatedWithExecutor marks the group as claimed (or released)
// by an executor.
func (g *Group) SetAssociatedWithExecutor(v bool) { g.associated.Store(v) }

// AddSubscription adds a subscription handle to the group.
func (g *Group) AddSubscription(s rclcpp.Subscription) error {
	if s == nil {
		return rclcpp.ErrNilEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if indexOf(g.subscriptions, s.ID()) >= 0 {
		return rclcpp.ErrAlreadyInGroup
	}
	g.subscriptions = append(g.subscriptions, s)
	return nil
}

// RemoveSubscription removes a subscription handle from the group.
func (g *Group) RemoveSubscription(s rclcpp.Subscription) error {
	if s == nil {
		return rclcpp.ErrNilEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	i := indexOf(g.subscriptions, s.ID())
	if i < 0 {
		return rclcpp.ErrNotInGroup
	}
	g.subscriptions = remove(g.subscriptions, i)
	return nil
}

// AddTimer adds a timer handle to the group.
func (g *Group) AddTimer(t rclcpp.Timer) error {
	if t == nil {
		return rclcpp.ErrNilEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if indexOf(g.timers, t.ID()) >= 0 {
		return rclcpp.ErrAlreadyInGroup
	}
	g.timers = append(g.timers, t)
	return nil
}

// RemoveTimer removes a timer handle from the group.
func (g *Group) RemoveTimer(t rclcpp.Timer) error {
	if t == nil {
		return rclcpp.ErrNilEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	i := indexOf(g.timers, t.ID())
	if i < 0 {
		return rclcpp.ErrNotInGroup
	}
	g.timers = remove(g.timers, i)
	return nil
}

// AddService adds a service handle to the group.
func (g *Group) AddService(s rclcpp.Service) error {
	if s == nil {
		return rclcpp.ErrNilEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if indexOf(g.services, s.ID()) >= 0 {
		return rclcpp.ErrAlreadyInGroup
	}
	g.services = append(g.services, s)
	return nil
}

// RemoveService removes a service handle from the group.
func (g *Group) RemoveService(s rclcpp.Service) error {
	if s == nil {
		return rclcpp.ErrNilEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	i := indexOf(g.services, s.ID())
	if i < 0 {
		return rclcpp.ErrNotInGroup
	}
	g.services = remove(g.services, i)
	return nil
}

// AddClient adds a client handle to the group.
func (g *Group) AddClient(c rclcpp.Client) error {
	if c == nil {
		return rclcpp.ErrNilEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if indexOf(g.clients, c.ID()) >= 0 {
		return rclcpp.ErrAlreadyInGroup
	}
	g.clients = append(g.clients, c)
	return nil
}

// RemoveClient removes a client handle from the group.
func (g *Group) RemoveClient(c rclcpp.Client) error {
	if c == nil {
		return rclcpp.ErrNilEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	i := indexOf(g.clients, c.ID())
	if i < 0 {
		return rclcpp.ErrNotInGroup
	}
	g.clients = remove(g.clients, i)
	return nil
}

// AddWaitable adds a waitable handle to the group.
func (g *Group) AddWaitable(w rclcpp.Waitable) error {
	if w == nil {
		return rclcpp.ErrNilEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if indexOf(g.waitables, w.ID()) >= 0 {
		return rclcpp.ErrAlreadyInGroup
	}
	g.waitables = append(g.waitables, w)
	return nil
}

// RemoveWaitable removes a waitable handle from the group.
func (g *Group) RemoveWaitable(w rclcpp.Waitable) error {
	if w == nil {
		return rclcpp.ErrNilEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	i := indexOf(g.waitables, w.ID())
	if i < 0 {
		return rclcpp.ErrNotInGroup
	}
	g.waitables = remove(g.waitables, i)
	return nil
}

// Subscriptions returns a snapshot of the group's subscription handles.
func (g *Group) Subscriptions() []rclcpp.Subscription {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]rclcpp.Subscription(nil), g.subscriptions...)
}

// Timers returns a snapshot of the group's timer handles.
func (g *Group) Timers() []rclcpp.Timer {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]rclcpp.Timer(nil), g.timers...)
}

// Services returns a snapshot of the group's service handles.
func (g *Group) Services() []rclcpp.Service {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]rclcpp.Service(nil), g.services...)
}

// Clients returns a snapshot of the group's client handles.
func (g *Group) Clients() []rclcpp.Client {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]rclcpp.Client(nil), g.clients...)
}

// Waitables returns a snapshot of the group's waitable handles.
func (g *Group) Waitables() []rclcpp.Waitable {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]rclcpp.Waitable(nil), g.waitables...)
}

// Count returns the total number of handles across all kinds.
func (g *Group) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subscriptions) + len(g.timers) + len(g.services) +
		len(g.clients) + len(g.waitables)
}

// indexOf finds the handle with the given ID in a slice of entities.
func indexOf[E rclcpp.Entity](entities []E, target id.EntityID) int {
	for i, e := range entities {
		if e.ID().String() == target.String() {
			return i
		}
	}
	return -1
}

// remove drops index i preserving order.
func remove[E rclcpp.Entity](entities []E, i int) []E {
	return append(entities[:i], entities[i+1:]...)
}
