package amqp

import (
	"testing"
	"time"
)

func TestTransactionEventMessageRoundTrip(t *testing.T) {
	msg := NewTransactionEventMessage("add", "tx-1", 7)
	if msg.Timestamp.IsZero() {
		t.Fatalf("timestamp not set")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	back, err := TransactionEventMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Op != "add" || back.ID != "tx-1" || back.Version != 7 {
		t.Fatalf("round trip mismatch: %+v", back)
	}
	if back.Timestamp.Sub(msg.Timestamp) > time.Second {
		t.Fatalf("timestamp drifted: %v vs %v", back.Timestamp, msg.Timestamp)
	}
}

func TestTransactionEventMessageFromJSONInvalid(t *testing.T) {
	if _, err := TransactionEventMessageFromJSON([]byte("not json")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
