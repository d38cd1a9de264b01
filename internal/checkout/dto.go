package checkout

// PlaceOrderRequest is the payload submitted at the end of the checkout wizard.
// District is stored as the order's city, matching the storefront's address form.
type PlaceOrderRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=100"`
	LastName      string `json:"last_name" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Phone         string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address       string `json:"address" validate:"required,max=500"`
	State         string `json:"state" validate:"required,max=100"`
	District      string `json:"district" validate:"required,max=100"`
	Pincode       string `json:"pincode" validate:"required,max=20"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}
