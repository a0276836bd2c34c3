package catalog

import contractx "github.com/teerapat/estate-call-agent/agent/contract"

// Fixtures returns the demo listings. A production deployment would load
// these from a listings service.
func Fixtures() []contractx.Property {
	return []contractx.Property{
		{
			ID:          "prop001",
			Name:        "Lakeside Villa",
			Type:        contractx.PropertyResidential,
			Price:       1250000,
			Address:     "123 Lake Dr, Waterfront, CA",
			Features:    "4 bed, 3 bath, 3,200 sq ft",
			Description: "Luxurious lakefront property with panoramic water views",
		},
		{
			ID:          "prop002",
			Name:        "Downtown Condo",
			Type:        contractx.PropertyResidential,
			Price:       650000,
			Address:     "456 Main St #302, Downtown, CA",
			Features:    "2 bed, 2 bath, 1,100 sq ft",
			Description: "Modern condo in the heart of downtown with city views",
		},
		{
			ID:          "prop003",
			Name:        "Commercial Office",
			Type:        contractx.PropertyCommercial,
			Price:       2800000,
			Address:     "789 Business Ave, Commerce, CA",
			Features:    "12,000 sq ft, 3 floors",
			Description: "Prime commercial space in the business district",
		},
		{
			ID:          "prop004",
			Name:        "Suburban House",
			Type:        contractx.PropertyResidential,
			Price:       875000,
			Address:     "321 Oak St, Suburbia, CA",
			Features:    "3 bed, 2.5 bath, 2,400 sq ft",
			Description: "Family home in a quiet suburban neighborhood",
		},
	}
}
