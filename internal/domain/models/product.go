package models

// Product enumerates the non-subscription goods sold alongside the daily
// milk subscription.
type Product string

const (
	ProductExtraMilk   Product = "ExtraMilk"
	ProductEgg         Product = "Egg"
	ProductCurd        Product = "Curd"
	ProductChanakapodi Product = "Chanakapodi"
)

// Products lists every sellable category in display order.
var Products = []Product{ProductExtraMilk, ProductEgg, ProductCurd, ProductChanakapodi}

// ParseProduct resolves free-form product names to the canonical enumeration.
// The legacy "Extra Milk" spelling written by an older report surface is
// still accepted so historical transactions keep counting.
func ParseProduct(s string) (Product, bool) {
	switch s {
	case string(ProductExtraMilk), "Extra Milk":
		return ProductExtraMilk, true
	case string(ProductEgg):
		return ProductEgg, true
	case string(ProductCurd):
		return ProductCurd, true
	case string(ProductChanakapodi):
		return ProductChanakapodi, true
	}
	return "", false
}
