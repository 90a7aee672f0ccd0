package work

// Kind identifies which callback source a work item carries.
type Kind uint8

const (
	// Empty means no work has been assigned. The zero value.
	Empty Kind = iota
	// Subscription is a topic subscription with a taken message.
	Subscription
	// Timer is an elapsed timer.
	Timer
	// Service is a service server with a pending request.
	Service
	// Client is a service client with a pending response.
	Client
	// Waitable is a generic wait-set participant that became ready.
	Waitable
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Subscription:
		return "subscription"
	case Timer:
		return "timer"
	case Service:
		return "service"
	case Client:
		return "client"
	case Waitable:
		return "waitable"
	default:
		return "unknown"
	}
}
