package cart

import (
	"sort"
	"strings"

	"github.com/velstore/storefront/internal/domain"
)

// IdentityKey derives the merge key for a product plus its selected
// options. Option pairs are sorted before joining, so two selections
// that differ only in ordering produce the same key; any changed value
// produces a distinct key.
func IdentityKey(productID string, opts []domain.SelectedOption) string {
	pairs := make([]string, 0, len(opts))
	for _, o := range opts {
		pairs = append(pairs, o.Name+":"+o.Value)
	}
	sort.Strings(pairs)
	return productID + "-" + strings.Join(pairs, ",")
}
