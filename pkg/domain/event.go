package domain

import (
	"slices"
	"time"
)

// EventKind identifies an observable event.
type EventKind string

const (
	EventTransfer              EventKind = "Transfer"
	EventApproval              EventKind = "Approval"
	EventTaxCollected          EventKind = "TaxCollected"
	EventDistributionCompleted EventKind = "DistributionCompleted"
	EventThresholdUpdated      EventKind = "ThresholdUpdated"
	EventBeneficiaryUpdated    EventKind = "BeneficiaryUpdated"
	EventExemptionUpdated      EventKind = "ExemptionUpdated"
	EventPairUpdated           EventKind = "PairUpdated"
	EventOwnershipTransferred  EventKind = "OwnershipTransferred"
	EventRecovered             EventKind = "Recovered"
)

// Event is emitted by a committed call. Attributes hold addresses in hex and
// amounts in base units so they can be audited without the token's decimals.
type Event struct {
	ID         int64             `json:"id"`
	Kind       EventKind         `json:"kind"`
	Attributes map[string]string `json:"attributes"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// NewEvent builds an event from key/value pairs. A trailing key without a
// value is ignored.
func NewEvent(kind EventKind, kv ...string) Event {
	attrs := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs[kv[i]] = kv[i+1]
	}

	return Event{Kind: kind, Attributes: attrs}
}

// Keys returns the attribute names in sorted order.
func (e Event) Keys() []string {
	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
