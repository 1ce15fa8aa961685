package domain

// Decision is the outcome of the relay pipeline for one inbound message.
type Decision struct {
	Accepted bool
	Reason   DropReason
}

// Accept marks the message as eligible for relay.
func Accept() Decision {
	return Decision{Accepted: true}
}

// Drop rejects the message with the given reason.
func Drop(reason DropReason) Decision {
	return Decision{Reason: reason}
}
