package taxonomy

// DefaultVersion identifies the built-in rule table. Bump it whenever
// defaultRules changes so stored products get recategorized.
const DefaultVersion = "2024.06.2"

// DefaultWholeWord lists keywords that are too short or too ambiguous for a
// substring match ("pot" in "potato", "pan" in "pants", "book" in "notebook").
var DefaultWholeWord = []string{ //nolint: gochecknoglobals
	"home", "pan", "pot", "pen", "top", "bag", "fan", "cap", "book", "ring", "wear", "ball",
	"phone", "pc", "ram", "tv", "tote", "hat", "tee", "dress", "tent", "mug", "table", "toy",
	"coat", "lamp", "boot", "tablet",
}

// DefaultSentinels are legacy placeholder values that never denote a category.
var DefaultSentinels = []string{"", "general", "uncategorized", "none", "null", "n/a"} //nolint: gochecknoglobals

// defaultRules are ordered from most specific to most generic: Phones before
// Electronics, Laptops before Computers, Shoes and Bags before Fashion.
func defaultRules() []Rule {
	return []Rule{
		{Name: "Phones", Keywords: []string{
			"smartphone", "iphone", "cellphone", "cell phone", "mobile phone", "android phone",
			"google pixel", "galaxy s", "phone",
		}},
		{Name: "Laptops", Keywords: []string{
			"laptop", "macbook", "chromebook", "ultrabook", "notebook computer", "thinkpad",
		}},
		{Name: "Computers", Keywords: []string{
			"desktop computer", "computer", "pc", "imac", "computer monitor", "gaming monitor",
			"4k monitor", "ultrawide monitor", "keyboard", "motherboard", "graphics card", "ram",
			"ssd", "processor",
		}},
		{Name: "Gaming", Keywords: []string{
			"playstation", "ps5", "ps4", "xbox", "nintendo", "video game", "gaming", "console",
		}},
		{Name: "Electronics", Keywords: []string{
			"tv", "television", "headphone", "earbud", "speaker", "camera", "charger",
			"bluetooth", "wireless", "smartwatch", "tablet", "ipad", "drone", "electronic",
		}},
		{Name: "Shoes", Keywords: []string{
			"sneaker", "trainers", "boot", "boots", "sandal", "loafer", "heels", "slipper", "footwear", "shoe",
		}},
		{Name: "Bags", Keywords: []string{
			"backpack", "handbag", "purse", "tote", "luggage", "suitcase", "wallet", "duffel", "bag",
		}},
		{Name: "Jewelry", Keywords: []string{
			"necklace", "bracelet", "earring", "ring", "pendant", "jewel", "watch",
		}},
		{Name: "Fashion", Keywords: []string{
			"t-shirt", "shirt", "jacket", "dress", "dresses", "jeans", "hoodie", "sweater", "coat", "coats",
			"raincoat",
			"skirt", "pants", "scarf", "apparel", "clothing", "wear", "top", "cap", "hat", "tee",
		}},
		{Name: "Beauty", Keywords: []string{
			"makeup", "lipstick", "mascara", "perfume", "fragrance", "skincare", "skin care",
			"moisturizer", "serum", "nail polish", "shampoo", "cosmetic", "beauty",
		}},
		{Name: "Health", Keywords: []string{
			"vitamin", "supplement", "protein powder", "first aid", "thermometer",
			"blood pressure", "massage", "medical", "health",
		}},
		{Name: "Sports", Keywords: []string{
			"yoga", "dumbbell", "fitness", "treadmill", "bicycle", "tennis", "football",
			"basketball", "soccer", "golf", "camping", "tent", "ball", "sport",
		}},
		{Name: "Kitchen", Keywords: []string{
			"cookware", "pot", "pan", "skillet", "blender", "kettle", "knife set", "cutlery",
			"toaster", "microwave", "coffee maker", "bakeware", "utensil", "mug", "cooking", "kitchen",
		}},
		{Name: "Home", Keywords: []string{
			"furniture", "sofa", "lamp", "lamps", "decor", "pillow", "blanket", "curtain", "rug", "candle",
			"bedding", "mattress", "vase", "chair", "table", "fan", "garden", "home",
		}},
		{Name: "Toys", Keywords: []string{
			"toy", "toys", "lego", "puzzle", "doll", "plush", "action figure", "board game",
			"stuffed animal",
		}},
		{Name: "Books", Keywords: []string{
			"book", "novel", "paperback", "hardcover", "notebook", "journal", "planner",
			"textbook", "cookbook", "magazine", "comic", "pen",
		}},
	}
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	t, err := New(Config{
		Version:  DefaultVersion,
		Fallback: DefaultFallback,
		Rules:    defaultRules(),
	})
	if err != nil {
		// the built-in table is covered by tests; failing here is a programming error.
		panic(err)
	}

	return t
}
