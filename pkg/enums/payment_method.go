package enums

// PaymentMethod enumerates accepted payment options. Cash on delivery is the
// only method the storefront offers today.
type PaymentMethod string

const (
	PaymentMethodCOD PaymentMethod = "cod"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCOD
}
