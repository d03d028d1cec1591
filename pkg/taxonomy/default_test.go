package taxonomy_test

import (
	"marketplace/pkg/taxonomy"
	"testing"

	"github.com/stretchr/testify/require"
)

// Each case pins a false positive or ordering problem fixed in an earlier
// revision of the rule table. Add a case here before changing defaultRules.
func TestDefault_RegressionCases(t *testing.T) {
	tx := taxonomy.Default()

	tests := []struct {
		in      string
		want    string
		keyword string
	}{
		// rule order
		{in: "wireless smartphone with leather case", want: "Phones", keyword: "smartphone"},
		{in: "Gaming laptop 16GB", want: "Laptops", keyword: "laptop"},
		{in: "notebook computer accessories", want: "Laptops", keyword: "notebook computer"},
		{in: "Wireless gaming headset", want: "Gaming", keyword: "gaming"},
		{in: "Smartwatch with heart rate", want: "Electronics", keyword: "smartwatch"},
		{in: "Running Sneakers", want: "Shoes", keyword: "sneaker"},
		{in: "Leather hiking boots", want: "Shoes", keyword: "boots"},
		{in: "Rubber boot", want: "Shoes", keyword: "boot"},
		{in: "Running trainers", want: "Shoes", keyword: "trainers"},
		{in: "27 inch 4K monitor", want: "Computers", keyword: "4k monitor"},
		{in: "Canvas tote bag", want: "Bags", keyword: "tote"},
		{in: "Gold hoop earrings", want: "Jewelry", keyword: "earring"},
		{in: "Baseball cap", want: "Fashion", keyword: "cap"},
		{in: "Leather Jacket", want: "Fashion", keyword: "jacket"},

		// whole-word guards
		{in: "recipe notebook and pens", want: "Books", keyword: "notebook"},
		{in: "potato masher", want: "Other"},
		{in: "cooking pot set", want: "Kitchen", keyword: "pot"},
		{in: "Cargo pants", want: "Fashion", keyword: "pants"},
		{in: "Non-stick frying pan", want: "Kitchen", keyword: "pan"},
		{in: "Noise cancelling headphones", want: "Electronics", keyword: "headphone"},
		{in: "Fantasy novel paperback", want: "Books", keyword: "novel"},
		{in: "Ceiling fan with light", want: "Home", keyword: "fan"},
		{in: "Mailing address book", want: "Books", keyword: "book"},
		{in: "Vegetable peeler", want: "Other"},
		{in: "Coffee table", want: "Home", keyword: "table"},
		{in: "Android tablet 10 inch", want: "Electronics", keyword: "tablet"},
		{in: "Basketball", want: "Sports", keyword: "basketball"},
		{in: "Soft plush toy", want: "Toys", keyword: "toy"},
		{in: "Toyota keychain", want: "Other"},
		{in: "Coated frying pan", want: "Kitchen", keyword: "pan"},
		{in: "Wool coat", want: "Fashion", keyword: "coat"},
		{in: "Clamp for desk", want: "Other"},
		{in: "Desk lamp", want: "Home", keyword: "lamp"},
		{in: "Dog trainer treats", want: "Other"},
		{in: "Bootcamp fitness DVD", want: "Sports", keyword: "fitness"},
		{in: "Vitamin C tablets", want: "Health", keyword: "vitamin"},
		{in: "Baby monitor camera", want: "Electronics", keyword: "camera"},

		// direct lookups
		{in: "home", want: "Home"},
		{in: "Gaming", want: "Gaming"},
		{in: "other", want: "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m := tx.Explain(tt.in)
			require.Equal(t, tt.want, m.Category)
			require.Equal(t, tt.keyword, m.Keyword)
		})
	}
}

func TestDefault_Enumeration(t *testing.T) {
	tx := taxonomy.Default()

	require.Equal(t, taxonomy.DefaultVersion, tx.Version())
	require.Equal(t, "Other", tx.Fallback())
	require.ElementsMatch(t, []string{
		"Electronics", "Phones", "Computers", "Laptops", "Fashion", "Shoes", "Bags", "Jewelry",
		"Beauty", "Health", "Sports", "Kitchen", "Home", "Toys", "Books", "Gaming", "Other",
	}, tx.Categories())
}

func TestDefault_RelativeOrder(t *testing.T) {
	index := map[string]int{}
	for i, c := range taxonomy.Default().Categories() {
		index[c] = i
	}

	for _, pair := range [][2]string{
		{"Phones", "Electronics"},
		{"Laptops", "Computers"},
		{"Shoes", "Fashion"},
		{"Bags", "Fashion"},
		{"Kitchen", "Home"},
	} {
		require.Less(t, index[pair[0]], index[pair[1]], "%s must be checked before %s", pair[0], pair[1])
	}
}

func TestDefault_EveryCategoryReachable(t *testing.T) {
	tx := taxonomy.Default()

	for _, r := range tx.Rules() {
		m := tx.Explain(r.Name)
		require.Equal(t, r.Name, m.Category)
		require.Equal(t, taxonomy.ReasonDirect, m.Reason)
	}
}
