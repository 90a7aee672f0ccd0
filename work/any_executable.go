package work

import (
	"github.com/jhdcs/rclcpp"
	"github.com/jhdcs/rclcpp/callbackgroup"
)

// AnyExecutable is the handle a dispatch loop carries for one unit of
// work: the variant Item plus the keep-alive fields that pin the
// item's owners until the callback has been invoked.
//
// The zero AnyExecutable is empty with all keep-alives unset. A
// handle is populated once, read any number of times within a single
// dispatch cycle, and then discarded or overwritten; it is not meant
// to be shared between goroutines.
type AnyExecutable struct {
	item Item

	// CallbackGroup pins the group that owns the ready source, so the
	// group cannot be torn down mid-dispatch.
	CallbackGroup *callbackgroup.Group

	// NodeBase pins the node that owns the ready source.
	NodeBase rclcpp.NodeBase

	// Data carries opaque per-dispatch context alongside the item,
	// e.g. a message already taken from a subscription. Held only so
	// its referent outlives the gap between take and invoke.
	Data any
}

// Item returns the variant wholesale.
func (a *AnyExecutable) Item() Item { return a.item }

// Kind returns the kind of the carried work.
func (a *AnyExecutable) Kind() Kind { return a.item.Kind() }

// IsEmpty reports whether no work has been assigned.
func (a *AnyExecutable) IsEmpty() bool { return a.item.Kind() == Empty }

// IsSubscription reports whether the handle carries a subscription.
func (a *AnyExecutable) IsSubscription() bool { return a.item.Kind() == Subscription }

// IsTimer reports whether the handle carries a timer.
func (a *AnyExecutable) IsTimer() bool { return a.item.Kind() == Timer }

// IsService reports whether the handle carries a service.
func (a *AnyExecutable) IsService() bool { return a.item.Kind() == Service }

// IsClient reports whether the handle carries a client.
func (a *AnyExecutable) IsClient() bool { return a.item.Kind() == Client }

// IsWaitable reports whether the handle carries a waitable.
func (a *AnyExecutable) IsWaitable() bool { return a.item.Kind() == Waitable }

// Subscription returns the carried subscription handle.
// Precondition: IsSubscription() is true; any other kind panics.
func (a *AnyExecutable) Subscription() rclcpp.Subscription {
	return a.item.p.(subscriptionPayload).sub
}

// Timer returns the carried timer handle.
// Precondition: IsTimer() is true; any other kind panics.
func (a *AnyExecutable) Timer() rclcpp.Timer {
	return a.item.p.(timerPayload).timer
}

// Service returns the carried service handle.
// Precondition: IsService() is true; any other kind panics.
func (a *AnyExecutable) Service() rclcpp.Service {
	return a.item.p.(servicePayload).service
}

// Client returns the carried client handle.
// Precondition: IsClient() is true; any other kind panics.
func (a *AnyExecutable) Client() rclcpp.Client {
	return a.item.p.(clientPayload).client
}

// Waitable returns the carried waitable handle.
// Precondition: IsWaitable() is true; any other kind panics.
func (a *AnyExecutable) Waitable() rclcpp.Waitable {
	return a.item.p.(waitablePayload).waitable
}

// SetItem overwrites the variant with a pre-built Item.
func (a *AnyExecutable) SetItem(it Item) { a.item = it }

// SetSubscription populates the handle with a subscription-kind item.
func (a *AnyExecutable) SetSubscription(s rclcpp.Subscription) {
	a.item = NewSubscriptionItem(s)
}

// SetTimer populates the handle with a timer-kind item.
func (a *AnyExecutable) SetTimer(t rclcpp.Timer) {
	a.item = NewTimerItem(t)
}

// SetService populates the handle with a service-kind item.
func (a *AnyExecutable) SetService(s rclcpp.Service) {
	a.item = NewServiceItem(s)
}

// SetClient populates the handle with a client-kind item.
func (a *AnyExecutable) SetClient(c rclcpp.Client) {
	a.item = NewClientItem(c)
}

// SetWaitable populates the handle with a waitable-kind item.
func (a *AnyExecutable) SetWaitable(w rclcpp.Waitable) {
	a.item = NewWaitableItem(w)
}
