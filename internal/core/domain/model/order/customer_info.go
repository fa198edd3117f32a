package order

import (
	"errors"

	"kitchen/internal/pkg/errs"
)

// ErrCustomerInfoIsNotConstructed is returned when a CustomerInfo was not
// created through NewCustomerInfo.
var ErrCustomerInfoIsNotConstructed = errors.New("CustomerInfo must be created via NewCustomerInfo constructor")

// CustomerInfo holds the ordering customer's contact details.
// Name and phone number are always required; the address requirement for
// takeaway orders is enforced by the Order aggregate because it depends on
// the order type.
type CustomerInfo struct {
	name        string
	phoneNumber string
	address     string
	partySize   int

	isConstructed bool
}

// NewCustomerInfo creates customer details. Address and party size are
// optional at this level; partySize must not be negative.
func NewCustomerInfo(name, phoneNumber, address string, partySize int) (CustomerInfo, error) {
	if name == "" {
		return CustomerInfo{}, errs.NewValueIsRequiredError("customer name")
	}
	if phoneNumber == "" {
		return CustomerInfo{}, errs.NewValueIsRequiredError("customer phone number")
	}
	if partySize < 0 {
		return CustomerInfo{}, errs.NewValueIsInvalidError("party size")
	}

	return CustomerInfo{
		name:          name,
		phoneNumber:   phoneNumber,
		address:       address,
		partySize:     partySize,
		isConstructed: true,
	}, nil
}

// Validate ensures the value was created via NewCustomerInfo.
func (c CustomerInfo) Validate() error {
	if !c.isConstructed {
		return ErrCustomerInfoIsNotConstructed
	}
	return nil
}

// Name returns the customer's name.
func (c CustomerInfo) Name() string {
	return c.name
}

// PhoneNumber returns the customer's phone number.
func (c CustomerInfo) PhoneNumber() string {
	return c.phoneNumber
}

// Address returns the delivery address; empty for dine-in customers.
func (c CustomerInfo) Address() string {
	return c.address
}

// PartySize returns the number of guests; zero when not supplied.
func (c CustomerInfo) PartySize() int {
	return c.partySize
}
