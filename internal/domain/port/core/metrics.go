package core

// Metrics records business-level counters. Transport and storage metrics are
// collected by the adapters themselves.
type Metrics interface {
	// RecordWalletDelta counts an ApplyDelta call by transaction type and outcome
	RecordWalletDelta(txType string, outcome string)
	// RecordGroupEvent counts group lifecycle events (created, joined, closed, cart_item_added)
	RecordGroupEvent(event string)
	// RecordPaymentIntent counts generated intents by outcome
	RecordPaymentIntent(outcome string)
	// RecordNotification counts order emails by target status and outcome
	RecordNotification(status string, outcome string)
}

// Metric outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)
