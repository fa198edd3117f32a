package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Type distinguishes dine-in orders (which reserve a table) from takeaway
// orders (which require a delivery address).
type Type int

const (
	// TypeUnknown is the invalid zero value.
	TypeUnknown Type = iota

	// TypeDineIn marks an order served at a reserved table.
	TypeDineIn

	// TypeTakeaway marks an order delivered to the customer's address.
	TypeTakeaway
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeDineIn:   "dineIn",
		TypeTakeaway: "takeaway",
	}
}

// ParseType converts the wire form ("dineIn", "takeaway") into a Type.
func ParseType(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%q is not a valid order type", s))
}

// Validate rejects TypeUnknown and any value outside the defined set.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire form of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
