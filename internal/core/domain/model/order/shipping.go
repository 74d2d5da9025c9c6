package order

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrShippingIsNotConstructed is returned when a Shipping snapshot was not
// created through the NewShipping constructor.
var ErrShippingIsNotConstructed = errors.New("Shipping must be created via NewShipping constructor")

// Shipping is the delivery snapshot copied from the customer's address book
// at submission time. Later edits to the address book do not affect an order
// that already carries a snapshot.
type Shipping struct { //nolint:recvcheck //using for validation
	consignee string
	phone     string
	address   string

	guard guard.ConstructorGuard
}

// NewShipping creates a validated shipping snapshot.
// All three fields are required.
func NewShipping(consignee, phone, address string) (Shipping, error) {
	s := Shipping{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setConsignee(consignee),
		s.setPhone(phone),
		s.setAddress(address),
	); err != nil {
		return Shipping{}, err
	}

	return s, nil
}

// Validate ensures the snapshot was created through NewShipping.
func (s Shipping) Validate() error {
	return s.guard.Validate(ErrShippingIsNotConstructed)
}

// Consignee returns the recipient name.
func (s Shipping) Consignee() string {
	return s.consignee
}

// Phone returns the recipient phone number.
func (s Shipping) Phone() string {
	return s.phone
}

// Address returns the full delivery address text.
func (s Shipping) Address() string {
	return s.address
}

func (s *Shipping) setConsignee(consignee string) error {
	if consignee == "" {
		return errs.NewValueIsRequiredError("consignee")
	}
	s.consignee = consignee
	return nil
}

func (s *Shipping) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	s.phone = phone
	return nil
}

func (s *Shipping) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = address
	return nil
}
