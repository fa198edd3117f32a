package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"kitchen/internal/pkg/errs"
)

// orderReferencePrefix starts every customer-facing order reference.
const orderReferencePrefix = "ORD-"

// ErrOrderReferenceIsNotConstructed is returned when validating a zero-value
// OrderReference.
var ErrOrderReferenceIsNotConstructed = errs.NewValueIsRequiredError("order reference must be created via NewOrderReference or OrderReferenceFromString")

// OrderReference is the human-referenceable order number handed to staff and
// customers, e.g. "ORD-1756451230417-382". It is derived from the creation
// time plus a random suffix and is distinct from the storage key of the
// order row.
type OrderReference struct {
	value string
}

// NewOrderReference generates a reference from the current time and a random
// three-digit suffix.
func NewOrderReference() OrderReference {
	return OrderReference{
		value: fmt.Sprintf("%s%d-%d", orderReferencePrefix, time.Now().UnixMilli(), rand.IntN(1000)),
	}
}

// OrderReferenceFromString restores a reference from its textual form,
// rejecting values that do not carry the expected prefix.
func OrderReferenceFromString(s string) (OrderReference, error) {
	if !strings.HasPrefix(s, orderReferencePrefix) || len(s) == len(orderReferencePrefix) {
		return OrderReference{}, errs.NewValueIsInvalidErrorWithCause(
			"order reference",
			fmt.Errorf("%q does not look like an order reference", s),
		)
	}
	return OrderReference{value: s}, nil
}

// String returns the textual form of the reference.
func (r OrderReference) String() string {
	return r.value
}

// IsEqual reports whether both references hold the same value.
func (r OrderReference) IsEqual(other OrderReference) bool {
	return r.value == other.value
}

// Validate rejects the zero-value reference.
func (r OrderReference) Validate() error {
	if r.value == "" {
		return ErrOrderReferenceIsNotConstructed
	}
	return nil
}
