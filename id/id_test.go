package id_test

import (
	"strings"
	"testing"

	"github.com/jhdcs/rclcpp/id"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		newFn  func() id.EntityID
		prefix string
	}{
		{"SubscriptionID", id.NewSubscriptionID, "sub_"},
		{"TimerID", id.NewTimerID, "tmr_"},
		{"ServiceID", id.NewServiceID, "srv_"},
		{"ClientID", id.NewClientID, "clt_"},
		{"WaitableID", id.NewWaitableID, "wtb_"},
		{"GroupID", id.NewGroupID, "cbg_"},
		{"NodeID", id.NewNodeID, "node_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.newFn().String()
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	i := id.New(id.PrefixSubscription)
	if i.IsNil() {
		t.Fatal("expected non-nil ID")
	}
	if i.Prefix() != id.PrefixSubscription {
		t.Errorf("expected prefix %q, got %q", id.PrefixSubscription, i.Prefix())
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		newFn   func() id.EntityID
		parseFn func(string) (id.EntityID, error)
	}{
		{"SubscriptionID", id.NewSubscriptionID, id.ParseSubscriptionID},
		{"TimerID", id.NewTimerID, id.ParseTimerID},
		{"ServiceID", id.NewServiceID, id.ParseServiceID},
		{"ClientID", id.NewClientID, id.ParseClientID},
		{"WaitableID", id.NewWaitableID, id.ParseWaitableID},
		{"GroupID", id.NewGroupID, id.ParseGroupID},
		{"NodeID", id.NewNodeID, id.ParseNodeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.newFn()
			parsed, err := tt.parseFn(original.String())
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if parsed.String() != original.String() {
				t.Errorf("round-trip mismatch: %q != %q", parsed.String(), original.String())
			}
		})
	}
}

func TestCrossTypeRejection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		parseFn func(string) (id.EntityID, error)
	}{
		{"ParseSubscriptionID rejects tmr_", id.NewTimerID().String(), id.ParseSubscriptionID},
		{"ParseTimerID rejects srv_", id.NewServiceID().String(), id.ParseTimerID},
		{"ParseServiceID rejects clt_", id.NewClientID().String(), id.ParseServiceID},
		{"ParseClientID rejects wtb_", id.NewWaitableID().String(), id.ParseClientID},
		{"ParseWaitableID rejects cbg_", id.NewGroupID().String(), id.ParseWaitableID},
		{"ParseGroupID rejects node_", id.NewNodeID().String(), id.ParseGroupID},
		{"ParseNodeID rejects sub_", id.NewSubscriptionID().String(), id.ParseNodeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parseFn(tt.input)
			if err == nil {
				t.Errorf("expected error for cross-type parse of %q, got nil", tt.input)
			}
		})
	}
}

func TestParseWithPrefix(t *testing.T) {
	i := id.NewSubscriptionID()
	parsed, err := id.ParseWithPrefix(i.String(), id.PrefixSubscription)
	if err != nil {
		t.Fatalf("ParseWithPrefix failed: %v", err)
	}
	if parsed.String() != i.String() {
		t.Errorf("mismatch: %q != %q", parsed.String(), i.String())
	}

	_, err = id.ParseWithPrefix(i.String(), id.PrefixTimer)
	if err == nil {
		t.Error("expected error for wrong prefix")
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := id.Parse("")
	if err == nil {
		t.Error("expected error for empty string")
	}
}

func TestNilID(t *testing.T) {
	var i id.EntityID
	if !i.IsNil() {
		t.Error("zero-value EntityID should be nil")
	}
	if i.String() != "" {
		t.Errorf("expected empty string, got %q", i.String())
	}
	if i.Prefix() != "" {
		t.Errorf("expected empty prefix, got %q", i.Prefix())
	}
}

func TestMarshalUnmarshalText(t *testing.T) {
	original := id.NewClientID()
	data, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	var restored id.EntityID
	if unmarshalErr := restored.UnmarshalText(data); unmarshalErr != nil {
		t.Fatalf("UnmarshalText failed: %v", unmarshalErr)
	}
	if restored.String() != original.String() {
		t.Errorf("mismatch: %q != %q", restored.String(), original.String())
	}

	// Nil round-trip.
	var nilID id.EntityID
	data, err = nilID.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText(nil) failed: %v", err)
	}
	var restored2 id.EntityID
	if err := restored2.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText(nil) failed: %v", err)
	}
	if !restored2.IsNil() {
		t.Error("expected nil after round-trip of nil ID")
	}
}

func TestUniqueness(t *testing.T) {
	a := id.NewTimerID()
	b := id.NewTimerID()
	if a.String() == b.String() {
		t.Errorf("two consecutive NewTimerID() calls returned the same ID: %q", a.String())
	}
}
