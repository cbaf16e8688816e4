package metrics

// Noop discards every business metric
type Noop struct{}

// NewNoop creates a metrics sink used when metrics are disabled
func NewNoop() Noop { return Noop{} }

func (Noop) RecordWalletDelta(string, string)  {}
func (Noop) RecordGroupEvent(string)           {}
func (Noop) RecordPaymentIntent(string)        {}
func (Noop) RecordNotification(string, string) {}
