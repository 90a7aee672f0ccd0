package work

import "github.com/jhdcs/rclcpp"

// payload is the sealed sum over the five non-empty kinds. Exactly one
// implementation exists per kind, each holding only its own handle, so
// an Item can never carry a handle that disagrees with its Kind. The
// discriminant is the dynamic type itself; there is no separate tag to
// fall out of sync.
type payload interface {
	kind() Kind
}

type subscriptionPayload struct{ sub rclcpp.Subscription }

func (subscriptionPayload) kind() Kind { return Subscription }

type timerPayload struct{ timer rclcpp.Timer }

func (timerPayload) kind() Kind { return Timer }

type servicePayload struct{ service rclcpp.Service }

func (servicePayload) kind() Kind { return Service }

type clientPayload struct{ client rclcpp.Client }

func (clientPayload) kind() Kind { return Client }

type waitablePayload struct{ waitable rclcpp.Waitable }

func (waitablePayload) kind() Kind { return Waitable }

// Item is one unit of dispatchable work: a handle to exactly one ready
// callback source, tagged with its kind. The zero Item is Empty.
//
// Items are immutable values. Copying an Item copies the interface
// value inside it, which shares — never duplicates — the underlying
// handle; the referent stays alive while any copy is reachable.
// Changing kind means constructing a new Item.
type Item struct {
	p payload
}

// NewSubscriptionItem returns an Item carrying a subscription handle.
func NewSubscriptionItem(s rclcpp.Subscription) Item {
	return Item{p: subscriptionPayload{sub: s}}
}

// NewTimerItem returns an Item carrying a timer handle.
func NewTimerItem(t rclcpp.Timer) Item {
	return Item{p: timerPayload{timer: t}}
}

// NewServiceItem returns an Item carrying a service handle.
func NewServiceItem(s rclcpp.Service) Item {
	return Item{p: servicePayload{service: s}}
}

// NewClientItem returns an Item carrying a client handle.
func NewClientItem(c rclcpp.Client) Item {
	return Item{p: clientPayload{client: c}}
}

// NewWaitableItem returns an Item carrying a waitable handle.
func NewWaitableItem(w rclcpp.Waitable) Item {
	return Item{p: waitablePayload{waitable: w}}
}

// Kind returns which callback source the Item carries, or Empty for
// the zero Item.
func (it Item) Kind() Kind {
	if it.p == nil {
		return Empty
	}
	return it.p.kind()
}
