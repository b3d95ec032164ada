package model

type Category string

const (
	CategoryCamera    Category = "camera"
	CategoryLens      Category = "lens"
	CategoryAccessory Category = "accessory"
	CategoryEditing   Category = "editing"
	CategoryLighting  Category = "lighting"
	CategoryDrone     Category = "drone"
	CategoryAll       Category = "all"
)

// UnlimitedStock marks non-rental software items that never run out.
const UnlimitedStock = 999

type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Category        Category `json:"category"`
	Image           string   `json:"image"`
	RentalAvailable bool     `json:"rentalAvailable"`
	Features        []string `json:"features"`
	Stock           int      `json:"stock"`
}

// ParseCategory maps a raw query value onto the taxonomy. Unrecognized
// values report false so callers fall back to CategoryAll.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryCamera, CategoryLens, CategoryAccessory, CategoryEditing, CategoryLighting, CategoryDrone, CategoryAll:
		return Category(s), true
	}
	return CategoryAll, false
}
