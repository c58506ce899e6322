package query

import (
	"strings"

	"spi-eshop-be/internal/repository/specification"
	"spi-eshop-be/pkg/assistant/response"
	"spi-eshop-be/pkg/department"
)

// MaxResults bounds every AI search product list.
const MaxResults = 10

// Filter is the storage-agnostic product lookup derived from an interpreted reply.
type Filter struct {
	Department  string
	SubCategory string
	Text        string
	ActiveOnly  bool
	Limit       int
}

// BuildFilter maps the department code to the full name stored on products.
// Without a known department it falls back to a text match on the raw query, so a
// plain product name still finds something. Unknown codes are dropped.
func BuildFilter(catalog *department.Catalog, interpreted response.Response, rawQuery string) Filter {
	f := Filter{ActiveOnly: true, Limit: MaxResults}

	if interpreted.Department != nil && strings.TrimSpace(*interpreted.Department) != "" {
		code := strings.TrimSpace(*interpreted.Department)
		if name, ok := catalog.FullName(code); ok {
			f.Department = name
		}
	}

	if interpreted.SubCategory != nil {
		f.SubCategory = strings.TrimSpace(*interpreted.SubCategory)
	}

	if f.Department == "" {
		f.Text = strings.TrimSpace(rawQuery)
	}

	return f
}

// Specifications translates the filter into repository specifications, best rated first.
func (f Filter) Specifications() []specification.Specification {
	specs := make([]specification.Specification, 0, 6)

	if f.ActiveOnly {
		specs = append(specs, specification.ActiveProducts{})
	}
	if f.Department != "" {
		specs = append(specs, specification.ByDepartment{Department: f.Department})
	}
	if f.SubCategory != "" {
		specs = append(specs, specification.BySubCategory{SubCategory: f.SubCategory})
	}
	if f.Text != "" {
		specs = append(specs, specification.ProductTextSearch{Query: f.Text})
	}

	limit := f.Limit
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}
	specs = append(specs,
		specification.OrderBy{Field: "rating", Desc: true},
		specification.Pagination{Limit: limit},
	)

	return specs
}
