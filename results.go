package nftmkt

// CheckResult captures any non-error response from the pre-execution
// validation of a transaction.
type CheckResult struct {
	// GasAllocated is the maximum units of work we allow this tx to perform
	GasAllocated int64
}

// DeliverResult captures any non-error response from the execution of a
// transaction.
type DeliverResult struct {
	// Data is a machine-parseable return value, like an id of the entity
	// that was created by this command.
	Data []byte

	// Log is a human readable note on the execution.
	Log string

	// Events describe the state transitions this command performed. They
	// are handed to the event sink only after the command was committed.
	Events []Event
}

// Event is an observable notification about a successfully executed command.
// Each successful command fires its events exactly once.
type Event struct {
	Type       string
	Attributes []EventAttribute
}

// EventAttribute is a single key/value detail of an Event.
type EventAttribute struct {
	Key   string
	Value string
}

// NewEvent builds an event from a type and a flat list of key/value pairs.
// Panics on an odd number of pairs, as that is always a programming error.
func NewEvent(eventType string, pairs ...string) Event {
	if len(pairs)%2 != 0 {
		panic("event attributes must come in key/value pairs")
	}
	attrs := make([]EventAttribute, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		attrs = append(attrs, EventAttribute{Key: pairs[i], Value: pairs[i+1]})
	}
	return Event{Type: eventType, Attributes: attrs}
}
