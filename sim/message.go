package sim

import "github.com/google/uuid"

// PayloadType tags the union of message payloads a Message can carry
// (spec §3 "Message"). Kept as a closed string enum rather than a type
// switch over structs, so network/observer log lines can print it
// directly.
type PayloadType string

const (
	PayloadRead         PayloadType = "READ"
	PayloadReadResponse PayloadType = "READ_RESPONSE"
	PayloadReadDB       PayloadType = "READ_DB"
	PayloadWrite        PayloadType = "WRITE"
	PayloadInvalidate   PayloadType = "INVALIDATE"
)

// Payload is the immutable union carried by a Message. Type selects which
// of the fields below are meaningful.
type Payload struct {
	Type PayloadType

	// every payload type
	Key string

	// READ_RESPONSE / WRITE
	Value string

	// READ_RESPONSE / INVALIDATE: database version at time of write.
	Version int64
}

// Message is the immutable envelope exchanged between agents (spec §3,
// §4.3). Dst carries a direct agent handle: there is no name resolution.
// ID is a transport-level correlation id, analogous to what a real
// message bus would attach; the simulation never inspects it for
// semantics, only for log correlation.
type Message struct {
	ID      string
	Src     AgentHandle
	Dst     AgentHandle
	Payload Payload
}

// NewMessage builds a Message with a fresh correlation id.
func NewMessage(src, dst AgentHandle, payload Payload) Message {
	return Message{ID: uuid.NewString(), Src: src, Dst: dst, Payload: payload}
}
