package entity

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	errs "github.com/vyronamart/group-ledger/internal/domain/error"
)

// DefaultIntentTTL is how long a generated payment intent is advertised as valid
const DefaultIntentTTL = 24 * time.Hour

// PaymentInstructions are shown next to every generated QR code
var PaymentInstructions = []string{
	"Open any UPI app and scan the QR code.",
	"Check that the payee name and amount match before paying.",
	"Keep the reference ID; the organizer verifies payments against it.",
	"The code is advertised as valid for 24 hours.",
}

// PaymentIntent is an ephemeral, unpersisted request for an out-of-band UPI payment
type PaymentIntent struct {
	ReferenceID  string
	GroupID      uint64
	ItemID       uint64
	UserID       uint64
	Amount       int64
	Payee        string
	PayeeName    string
	Currency     string
	Note         string
	URI          string
	Artifact     string // data:image/png;base64,...
	ExpiresAt    time.Time
	Instructions []string
	CreatedAt    time.Time
}

// UPIPayee identifies who receives intent payments
type UPIPayee struct {
	VPA      string
	Name     string
	Currency string
}

// NewPaymentIntent validates input and derives the reference, note and URI.
// The artifact is filled in by the caller once rendered.
func NewPaymentIntent(
	groupID, itemID, userID uint64,
	amount int64,
	payee UPIPayee,
	now time.Time,
	ttl time.Duration,
) (*PaymentIntent, error) {
	if groupID == 0 {
		return nil, errs.ErrInvalidGroupID
	}
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	if ttl <= 0 {
		ttl = DefaultIntentTTL
	}
	currency := payee.Currency
	if currency == "" {
		currency = CurrencyINR
	}

	ref := BuildReferenceID(groupID, itemID, userID, now)
	note := fmt.Sprintf("VyronaMart group %d item %d", groupID, itemID)

	return &PaymentIntent{
		ReferenceID:  ref,
		GroupID:      groupID,
		ItemID:       itemID,
		UserID:       userID,
		Amount:       amount,
		Payee:        payee.VPA,
		PayeeName:    payee.Name,
		Currency:     currency,
		Note:         note,
		URI:          BuildUPIURI(payee.VPA, payee.Name, amount, currency, note, ref),
		ExpiresAt:    now.Add(ttl),
		Instructions: append([]string(nil), PaymentInstructions...),
		CreatedAt:    now,
	}, nil
}

// BuildReferenceID concatenates the identifiers with a millisecond timestamp.
// Uniqueness is advisory: two calls in the same millisecond collide.
func BuildReferenceID(groupID, itemID, userID uint64, at time.Time) string {
	return fmt.Sprintf("VM%d-%d-%d-%d", groupID, itemID, userID, at.UnixMilli())
}

// BuildUPIURI renders a upi://pay deep link. Parameter order is fixed and the
// amount is written exactly as given.
func BuildUPIURI(vpa, name string, amount int64, currency, note, ref string) string {
	params := [][2]string{
		{"pa", vpa},
		{"pn", name},
		{"am", strconv.FormatInt(amount, 10)},
		{"cu", currency},
		{"tn", note},
		{"tr", ref},
	}

	var sb strings.Builder
	sb.WriteString("upi://pay?")
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p[0])
		sb.WriteByte('=')
		sb.WriteString(queryEscape(p[1]))
	}
	return sb.String()
}

// queryEscape escapes spaces as %20, which UPI apps decode more reliably than '+'
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
