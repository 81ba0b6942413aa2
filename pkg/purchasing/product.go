package purchasing

// ProductSet is an ordered sequence of products as read from one product
// document.
type ProductSet []Product

// Product is a purchasable part with its variations, category tree and
// flat parameter list.
type Product struct {
	Variations    []Variation    `json:"productVariations"`
	Category      *Category      `json:"category"`
	Parameters    []Parameter    `json:"parameters"`
	Series        *Series        `json:"series"`
	ProductStatus *ProductStatus `json:"productStatus"`
}

// Variation is one orderable packaging of a product, identified by its
// vendor part number.
type Variation struct {
	DigiKeyProductNumber string       `json:"digiKeyProductNumber"`
	PackageType          *PackageType `json:"packageType"`
}

// PackageType names the packaging of a variation (e.g. "Tape & Reel").
type PackageType struct {
	Name string `json:"name"`
}

// Category is a node in the product's category tree. Depth is unbounded
// but typically at most two levels.
type Category struct {
	Name            string     `json:"name"`
	ChildCategories []Category `json:"childCategories"`
}

// Parameter is a single name/value product attribute.
type Parameter struct {
	ParameterText string `json:"parameterText"`
	ValueText     string `json:"valueText"`
}

// Series names the product family.
type Series struct {
	Name string `json:"name"`
}

// ProductStatus carries the vendor's lifecycle status for the product.
type ProductStatus struct {
	Status string `json:"status"`
}

// CategoryName returns the display category for a product: the first child
// category's name when children exist, else the top-level category name.
// Only the first child is consulted; deeper levels never name the row.
func (p *Product) CategoryName() string {
	if p == nil || p.Category == nil {
		return ""
	}
	if len(p.Category.ChildCategories) > 0 {
		if name := p.Category.ChildCategories[0].Name; name != "" {
			return name
		}
	}
	return p.Category.Name
}

// CategoryNames returns every category name in the product's tree,
// depth-first, starting at the root.
func (p *Product) CategoryNames() []string {
	if p == nil || p.Category == nil {
		return nil
	}
	var names []string
	var walk func(c *Category)
	walk = func(c *Category) {
		names = append(names, c.Name)
		for i := range c.ChildCategories {
			walk(&c.ChildCategories[i])
		}
	}
	walk(p.Category)
	return names
}

// ParameterMap flattens the parameter list into a name-to-value map.
// Later duplicates of a parameter name overwrite earlier ones.
func (p *Product) ParameterMap() map[string]string {
	if p == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(p.Parameters))
	for _, prm := range p.Parameters {
		out[prm.ParameterText] = prm.ValueText
	}
	return out
}

// PackageTypeFor returns the package type name of the variation whose
// vendor part number equals pn, scanning in variation list order. Empty
// when no variation matches or the match carries no package type.
func (p *Product) PackageTypeFor(pn string) string {
	if p == nil {
		return ""
	}
	for _, v := range p.Variations {
		if v.DigiKeyProductNumber == pn {
			if v.PackageType != nil {
				return v.PackageType.Name
			}
			return ""
		}
	}
	return ""
}

// SeriesName returns the series name, or empty when unset.
func (p *Product) SeriesName() string {
	if p == nil || p.Series == nil {
		return ""
	}
	return p.Series.Name
}

// Status returns the product status, or empty when unset.
func (p *Product) Status() string {
	if p == nil || p.ProductStatus == nil {
		return ""
	}
	return p.ProductStatus.Status
}
