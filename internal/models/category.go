package models

type CategoryField struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

type Category struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Icon   string          `json:"icon"`
	Fields []CategoryField `json:"fields"`
}

// Categories is the static catalog served to clients. Category-specific
// listing attributes are validated against these field definitions on the
// client side only; the backend stores them as an opaque bag.
var Categories = []Category{
	{
		ID: "cars", Name: "Cars", Icon: "car",
		Fields: []CategoryField{
			{Name: "brand", Label: "Brand", Type: "text"},
			{Name: "model", Label: "Model", Type: "text"},
			{Name: "year", Label: "Year", Type: "number"},
			{Name: "mileage", Label: "Mileage", Type: "number"},
			{Name: "fuel_type", Label: "Fuel type", Type: "select", Options: []string{"Petrol", "Diesel", "Electric", "Hybrid"}},
			{Name: "transmission", Label: "Transmission", Type: "select", Options: []string{"Automatic", "Manual"}},
			{Name: "condition", Label: "Condition", Type: "select", Options: []string{"New", "Used", "Damaged"}},
		},
	},
	{
		ID: "electronics", Name: "Electronics", Icon: "laptop",
		Fields: []CategoryField{
			{Name: "brand", Label: "Brand", Type: "text"},
			{Name: "model", Label: "Model", Type: "text"},
			{Name: "condition", Label: "Condition", Type: "select", Options: []string{"New", "Like new", "Good", "Acceptable", "Defective"}},
			{Name: "warranty", Label: "Warranty", Type: "select", Options: []string{"With warranty", "Without warranty"}},
		},
	},
	{
		ID: "real_estate", Name: "Real estate", Icon: "home",
		Fields: []CategoryField{
			{Name: "property_type", Label: "Property type", Type: "select", Options: []string{"Apartment", "House", "Land", "Commercial"}},
			{Name: "listing_type", Label: "Offer type", Type: "select", Options: []string{"For sale", "For rent"}},
			{Name: "area", Label: "Area (m2)", Type: "number"},
			{Name: "bedrooms", Label: "Bedrooms", Type: "number"},
		},
	},
	{
		ID: "furniture", Name: "Furniture", Icon: "bed",
		Fields: []CategoryField{
			{Name: "type", Label: "Type", Type: "text"},
			{Name: "material", Label: "Material", Type: "text"},
			{Name: "condition", Label: "Condition", Type: "select", Options: []string{"New", "Like new", "Good", "Used"}},
		},
	},
	{
		ID: "fashion", Name: "Fashion", Icon: "shirt",
		Fields: []CategoryField{
			{Name: "brand", Label: "Brand", Type: "text"},
			{Name: "size", Label: "Size", Type: "select", Options: []string{"XS", "S", "M", "L", "XL", "XXL"}},
			{Name: "condition", Label: "Condition", Type: "select", Options: []string{"New with tags", "New", "Like new", "Good"}},
		},
	},
	{
		ID: "sports", Name: "Sports & leisure", Icon: "football",
		Fields: []CategoryField{
			{Name: "brand", Label: "Brand", Type: "text"},
			{Name: "condition", Label: "Condition", Type: "select", Options: []string{"New", "Like new", "Good", "Used"}},
		},
	},
	{
		ID: "other", Name: "Other", Icon: "apps",
		Fields: []CategoryField{
			{Name: "type", Label: "Type", Type: "text"},
			{Name: "condition", Label: "Condition", Type: "select", Options: []string{"New", "Used"}},
		},
	},
}
