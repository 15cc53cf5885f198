package domain

import (
	"strings"
	"time"
)

// CheckoutStep names the two explicit steps of the checkout flow.
type CheckoutStep string

const (
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
)

// ShippingInfo is the validated shipping form.
type ShippingInfo struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Street   string `json:"street" validate:"required,min=5"`
	City     string `json:"city" validate:"required,min=2"`
	State    string `json:"state" validate:"required,min=2"`
	Zip      string `json:"zip" validate:"required,min=5"`
}

// Address converts the form into the order's shipping address.
func (s ShippingInfo) Address() Address {
	return Address{
		FullName: s.FullName,
		Email:    s.Email,
		Phone:    s.Phone,
		Street:   s.Street,
		City:     s.City,
		State:    s.State,
		Zip:      s.Zip,
	}
}

// PaymentInfo is the validated payment form. No charge is ever made; only a
// display descriptor derived from it is retained.
type PaymentInfo struct {
	CardNumber string `json:"card_number" validate:"required,min=16"`
	CardHolder string `json:"card_holder" validate:"required"`
	Expiry     string `json:"expiry" validate:"required,expiry"`
	CVV        string `json:"cvv" validate:"required,min=3"`
}

// CardBrand derives a display-only brand label from the card number's
// leading digit.
func CardBrand(cardNumber string) string {
	n := strings.TrimSpace(cardNumber)
	if n == "" {
		return "Card"
	}
	switch n[0] {
	case '4':
		return "Visa"
	case '5':
		return "Mastercard"
	case '3':
		return "Amex"
	default:
		return "Card"
	}
}

// PaymentDescriptor renders the order's payment-method field, e.g.
// "Visa ending in 4242". Raw card data is never stored.
func PaymentDescriptor(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cardNumber)

	last4 := digits
	if len(digits) > 4 {
		last4 = digits[len(digits)-4:]
	}
	return CardBrand(cardNumber) + " ending in " + last4
}

// CheckoutSession is the per-session checkout state persisted between steps.
type CheckoutSession struct {
	SessionID string        `json:"session_id"`
	Step      CheckoutStep  `json:"step"`
	Shipping  *ShippingInfo `json:"shipping,omitempty"`
	StartedAt time.Time     `json:"started_at"`
}
