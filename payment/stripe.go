// stripe.go - Payment provider client for creating payment intents

package payment // Declares the package name

import ( // Import required packages
	"github.com/stripe/stripe-go/v79"               // Stripe SDK types and params
	"github.com/stripe/stripe-go/v79/paymentintent" // Payment intent API
)

// IntentCreator creates a payment intent for an amount in minor units
// (cents) and returns the client secret the frontend confirms the charge
// with. The handler depends on this interface so tests can stub the
// provider out.
type IntentCreator interface {
	CreateIntent(amount int64) (string, error)
}

// Stripe is the production IntentCreator backed by the Stripe API.
// Currency is fixed to USD.
type Stripe struct {
	key string // Stripe secret key
}

func NewStripe(key string) *Stripe { // Constructor
	stripe.Key = key // Stripe SDK uses a package-level key
	return &Stripe{key: key}
}

// CreateIntent creates a card payment intent and returns its client secret.
func (s *Stripe) CreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),                       // Amount in cents
		Currency:           stripe.String(string(stripe.CurrencyUSD)),  // Fixed ISO currency
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),       // Card payments only
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
