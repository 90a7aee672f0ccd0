package rclcpp

import (
	"time"

	"github.com/jhdcs/rclcpp/id"
)

// Entity is the base contract for every dispatchable callback source.
// An Entity value is a shared-ownership handle: copying it shares the
// referent, and the referent stays alive as long as any holder keeps
// the handle reachable.
type Entity interface {
	// ID returns the stable, prefix-qualified identity of the entity.
	ID() id.EntityID
}

// Subscription is the handle to a topic subscription whose callback the
// executor invokes when a message has been taken.
type Subscription interface {
	Entity

	// Topic returns the fully expanded topic name this subscription
	// listens on.
	Topic() string
}

// Timer is the handle to a periodic timer whose callback the executor
// invokes when the timer has elapsed.
type Timer interface {
	Entity

	// Period returns the configured firing interval.
	Period() time.Duration
}

// Service is the handle to a service server with a pending request.
type Service interface {
	Entity

	// ServiceName returns the fully expanded service name.
	ServiceName() string
}

// Client is the handle to a service client with a pending response.
type Client interface {
	Entity

	// ServiceName returns the fully expanded name of the service the
	// client calls.
	ServiceName() string
}

// Waitable is the handle to a generic wait-set participant — anything
// that contributes its own conditions to the wait set rather than being
// one of the four built-in kinds.
type Waitable interface {
	Entity

	// NumEntities returns how many wait-set slots this waitable
	// occupies. The wait-set scanner uses it for sizing; this module
	// only carries it.
	NumEntities() int
}

// NodeBase is the handle to the node that owns a callback source. The
// dispatcher holds one per work item purely to keep the node alive
// until the item has been invoked.
type NodeBase interface {
	// Name returns the node name without namespace.
	Name() string

	// Namespace returns the node namespace, "/" for the root.
	Namespace() string

	// FullyQualifiedName returns namespace and name joined.
	FullyQualifiedName() string
}
