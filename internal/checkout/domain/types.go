package domain

import "strings"

// State of one checkout attempt. A submission that reached a payment
// handler ends in StateSubmitted; everything else stays StateIdle.
type State int

const (
	StateIdle State = iota
	StateSubmitted
)

func (s State) String() string {
	if s == StateSubmitted {
		return "submitted"
	}
	return "idle"
}

// PaymentOption is one radio button of the payment-method group.
type PaymentOption struct {
	Value   string
	Checked bool
}

const (
	UPIPrefix = "upi-"
	UPIOther  = "upi-other"
)

var UPIMethods = map[string]string{
	"upi-gpay":    "Google Pay UPI",
	"upi-phonepe": "PhonePe UPI",
	"upi-paytm":   "Paytm UPI",
	UPIOther:      "Other UPI ID",
}

var InternationalMethods = map[string]string{
	"card-visa":       "Visa Card",
	"card-mastercard": "Mastercard",
	"card-amex":       "American Express",
	"paypal":          "PayPal",
}

func IsUPI(value string) bool {
	return strings.HasPrefix(value, UPIPrefix)
}

// Options lists every known payment method, UPI first, with value checked
// if it is one of them.
func Options(checked string) []PaymentOption {
	values := []string{
		"upi-gpay", "upi-phonepe", "upi-paytm", UPIOther,
		"card-visa", "card-mastercard", "card-amex", "paypal",
	}
	out := make([]PaymentOption, 0, len(values))
	for _, v := range values {
		out = append(out, PaymentOption{Value: v, Checked: v == checked})
	}
	return out
}

func Label(value string) string {
	if l, ok := UPIMethods[value]; ok {
		return l
	}
	if l, ok := InternationalMethods[value]; ok {
		return l
	}
	return value
}
