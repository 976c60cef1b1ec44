package category

// Category is one entry of the fixed editorial taxonomy. The set is
// defined in code, not in the database: the frontend styling tokens
// (gradient, badge background, text color) ship with each entry and
// changing the taxonomy is a product decision, not a data operation.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Bg    string `json:"bg"`
	Text  string `json:"text"`
}

var categories = []Category{
	{ID: "tech", Label: "Technology", Icon: "💻", Color: "from-blue-500 to-cyan-400", Bg: "bg-blue-500/20", Text: "text-blue-400"},
	{ID: "mobile", Label: "Mobile", Icon: "📱", Color: "from-purple-500 to-pink-400", Bg: "bg-purple-500/20", Text: "text-purple-400"},
	{ID: "news", Label: "News", Icon: "📰", Color: "from-red-500 to-orange-400", Bg: "bg-red-500/20", Text: "text-red-400"},
	{ID: "events", Label: "Events", Icon: "🎪", Color: "from-green-500 to-emerald-400", Bg: "bg-green-500/20", Text: "text-green-400"},
	{ID: "lifestyle", Label: "Lifestyle", Icon: "✨", Color: "from-amber-500 to-yellow-400", Bg: "bg-amber-500/20", Text: "text-amber-400"},
	{ID: "gaming", Label: "Gaming", Icon: "🎮", Color: "from-indigo-500 to-violet-400", Bg: "bg-indigo-500/20", Text: "text-indigo-400"},
	{ID: "finance", Label: "Finance", Icon: "💰", Color: "from-yellow-500 to-amber-400", Bg: "bg-yellow-500/20", Text: "text-yellow-400"},
	{ID: "sports", Label: "Sports", Icon: "⚽", Color: "from-emerald-500 to-teal-400", Bg: "bg-emerald-500/20", Text: "text-emerald-400"},
	{ID: "entertainment", Label: "Entertainment", Icon: "🎬", Color: "from-rose-500 to-pink-400", Bg: "bg-rose-500/20", Text: "text-rose-400"},
	{ID: "health", Label: "Health", Icon: "🏥", Color: "from-teal-500 to-cyan-400", Bg: "bg-teal-500/20", Text: "text-teal-400"},
	{ID: "science", Label: "Science", Icon: "🔬", Color: "from-cyan-500 to-blue-400", Bg: "bg-cyan-500/20", Text: "text-cyan-400"},
	{ID: "politics", Label: "Politics", Icon: "🏛️", Color: "from-slate-500 to-gray-400", Bg: "bg-slate-500/20", Text: "text-slate-400"},
}

var categoryIndex = buildIndex()

func buildIndex() map[string]Category {
	idx := make(map[string]Category, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}
	return idx
}

// List returns all categories in display order
func List() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ByID looks up a category by its identifier
func ByID(id string) (Category, bool) {
	c, ok := categoryIndex[id]
	return c, ok
}

// IsValid reports whether id names a known category
func IsValid(id string) bool {
	_, ok := categoryIndex[id]
	return ok
}

// IDs returns all category identifiers in display order
func IDs() []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}
