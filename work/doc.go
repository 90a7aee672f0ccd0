// Package work models one unit of dispatchable work as a tagged variant
// over the five callback-source kinds, plus the AnyExecutable facade an
// executor carries between wait-set scan and callback invocation.
//
// # The variant
//
// [Item] holds exactly one of: nothing ([Empty]), a subscription, a
// timer, a service, a client, or a waitable. The discriminant lives in
// the dynamic type of an internal sealed interface, so an Item of kind
// K cannot hold — or leak — any other kind's handle. The zero Item is
// Empty. An Item never changes kind in place; producing a different
// kind means constructing a new Item.
//
// # The facade
//
// [AnyExecutable] wraps an Item with predicate-then-accessor branching:
//
//	switch {
//	case ae.IsSubscription():
//	    dispatchSubscription(ae.Subscription(), ae.Data)
//	case ae.IsTimer():
//	    dispatchTimer(ae.Timer())
//	}
//
// Calling an accessor whose predicate is false is a contract violation
// and panics with a failed type assertion; it is a programmer error,
// not a modeled runtime condition.
//
// # Lifetime extension
//
// Between "observed ready" and "invoked", the source entity and its
// owners could be torn down concurrently. AnyExecutable's handle plus
// its CallbackGroup, NodeBase, and Data fields keep their referents
// reachable — and therefore alive — until the facade itself is
// discarded at the end of the dispatch cycle.
package work
