// Package rclcpp provides the work-item handle core of a robotics
// middleware client stack: the value an executor passes between "found
// ready in the wait set" and "invoked the callback".
//
// A single dispatch loop deals with five heterogeneous callback sources —
// subscriptions, timers, services, clients, and generic waitables. The
// work package models one unit of dispatchable work as a tagged variant
// over those five kinds, and wraps it in an AnyExecutable facade that
// also pins the owning callback group and node alive for the duration of
// one dispatch cycle.
//
// # Quick Start
//
//	var ae work.AnyExecutable
//	ae.SetSubscription(sub)
//	ae.CallbackGroup = group
//	ae.NodeBase = node
//
//	if ae.IsSubscription() {
//	    invoke(ae.Subscription(), ae.Data)
//	}
//
// # Architecture
//
// This package defines the typed handle interfaces (Subscription, Timer,
// Service, Client, Waitable, NodeBase) that the wait-set scanner produces
// and the dispatcher consumes. Package work holds the variant and its
// facade; package callbackgroup holds the group handle the facade keeps
// alive. Deciding readiness, invoking callbacks, and managing the wait
// set itself are the executor's job, not this module's.
//
// All entity IDs use TypeID — type-prefixed, K-sortable, UUID-based,
// compile-time safe identifiers.
package rclcpp
