package enums

// ProductGender is the catalog's top-level browse split.
type ProductGender string

const (
	ProductGenderMen    ProductGender = "men"
	ProductGenderWomen  ProductGender = "women"
	ProductGenderUnisex ProductGender = "unisex"
)

func (g ProductGender) IsValid() bool {
	switch g {
	case ProductGenderMen, ProductGenderWomen, ProductGenderUnisex:
		return true
	}
	return false
}

// ProductType is the garment category within a gender split.
type ProductType string

const (
	ProductTypeTShirt    ProductType = "tshirt"
	ProductTypePolo      ProductType = "polo"
	ProductTypeHoodie    ProductType = "hoodie"
	ProductTypeInnerwear ProductType = "innerwear"
)

func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeTShirt, ProductTypePolo, ProductTypeHoodie, ProductTypeInnerwear:
		return true
	}
	return false
}
