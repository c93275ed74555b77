package domain

// Category is a catalog category as returned by the remote API.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Image is a single product image.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Attribute is the flat (name, value) pair shape the API returns.
// A product carries one Attribute per declared value, so the same
// name appears multiple times and must be grouped client-side.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AttributeSet is a grouped attribute definition: a name with its
// ordered list of distinct allowed values.
type AttributeSet struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// SelectedOption is a chosen value for one attribute name. A product
// selection holds at most one SelectedOption per name.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product represents a catalog product. The product(productId) query
// omits Category and Brand, so both are optional.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	InStock     bool        `json:"inStock"`
	Description string      `json:"description,omitempty"`
	Brand       string      `json:"brand,omitempty"`
	Price       float64     `json:"price"`
	Category    *Category   `json:"category,omitempty"`
	Images      []Image     `json:"images,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

// AttributeSets returns the product's attributes grouped by name.
func (p *Product) AttributeSets() []AttributeSet {
	return GroupAttributes(p.Attributes)
}
