package domain

// POI category constants
const (
	CategoryReligious     = "religious"
	CategoryAttraction    = "attraction"
	CategoryHistorical    = "historical"
	CategoryViewpoint     = "viewpoint"
	CategoryFood          = "food"
	CategoryParking       = "parking"
	CategoryCable         = "cable"
	CategoryAccommodation = "accommodation"
)

// CategoryDescriptor maps a category key to its presentation attributes.
// The table is fixed at build time and not user-editable.
type CategoryDescriptor struct {
	Key     string `json:"key"`
	NameKey string `json:"name_key"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
}

var categoryDescriptors = []CategoryDescriptor{
	{Key: CategoryReligious, NameKey: "categories.religious", Icon: "⛩", Color: "#8e44ad"},
	{Key: CategoryAttraction, NameKey: "categories.attraction", Icon: "🎡", Color: "#e67e22"},
	{Key: CategoryHistorical, NameKey: "categories.historical", Icon: "🏛", Color: "#7f6000"},
	{Key: CategoryViewpoint, NameKey: "categories.viewpoint", Icon: "🏔", Color: "#16a085"},
	{Key: CategoryFood, NameKey: "categories.food", Icon: "🍜", Color: "#c0392b"},
	{Key: CategoryParking, NameKey: "categories.parking", Icon: "🅿", Color: "#2980b9"},
	{Key: CategoryCable, NameKey: "categories.cable", Icon: "🚠", Color: "#d35400"},
	{Key: CategoryAccommodation, NameKey: "categories.accommodation", Icon: "🏨", Color: "#27ae60"},
}

// Categories returns the fixed category descriptor table in display order.
func Categories() []CategoryDescriptor {
	out := make([]CategoryDescriptor, len(categoryDescriptors))
	copy(out, categoryDescriptors)
	return out
}

// CategoryByKey looks up a descriptor; ok is false for unknown keys.
func CategoryByKey(key string) (CategoryDescriptor, bool) {
	for _, d := range categoryDescriptors {
		if d.Key == key {
			return d, true
		}
	}
	return CategoryDescriptor{}, false
}

// KnownCategory reports whether key belongs to the fixed category set.
// A POI with an unknown category is not an error: it simply never matches
// a specific filter.
func KnownCategory(key string) bool {
	_, ok := CategoryByKey(key)
	return ok
}
