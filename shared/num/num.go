// Package num holds the numeric sanitizers applied at request
// boundaries. Malformed or missing amounts are coerced to zero
// instead of being rejected; the booking arithmetic downstream
// never raises on bad line items.
package num

// OrZero returns the pointed-to value, or 0 when the field was
// absent from the request payload.
func OrZero(f *float64) float64 {
	if f == nil {
		return 0
	}

	return *f
}

// IntOrZero is OrZero for integer quantities.
func IntOrZero(i *int) int {
	if i == nil {
		return 0
	}

	return *i
}
