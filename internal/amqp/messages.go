package amqp

import (
	"encoding/json"
	"time"
)

// TransactionEventMessage is the lightweight message published for each
// ledger mutation. It carries only the operation, transaction id, and
// ledger version; the worker reads the full snapshot from its own store.
type TransactionEventMessage struct {
	Op        string    `json:"op"`
	ID        string    `json:"id"`
	Version   uint64    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTransactionEventMessage creates a message for a ledger mutation
func NewTransactionEventMessage(op, id string, version uint64) *TransactionEventMessage {
	return &TransactionEventMessage{
		Op:        op,
		ID:        id,
		Version:   version,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionEventMessageFromJSON creates a message from JSON bytes
func TransactionEventMessageFromJSON(data []byte) (*TransactionEventMessage, error) {
	var msg TransactionEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
