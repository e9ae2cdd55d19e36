package domain

import "slices"

// Attribute names as they appear in requests.
const (
	AttrClothingAccessory = "clothingAccessory"
	AttrHairColor         = "hairColor"
	AttrGender            = "gender"
	AttrBackground        = "background"
	AttrArtStyle          = "artStyle"
	AttrWebsiteStyle      = "websiteStyle"
)

// Catalog lists the values the MAIke form offers for each attribute.
var Catalog = map[string][]string{ //nolint: gochecknoglobals
	AttrClothingAccessory: {
		"T-shirt", "Tuxedo", "Hoodie", "Business-Suit", "Blazer",
		"Beanie", "Scarf", "Mage Robe", "Maid-Uniform", "Sailor-Uniform",
	},
	AttrHairColor: {
		"Red", "Silver", "White", "Pink", "Blue", "Black", "Brown", "Green", "Blonde", "Grey",
	},
	AttrGender: {"boy", "girl"},
	AttrBackground: {
		"Forest", "Night", "City", "Arcade", "Mall", "Park", "Mountain",
		"Beach", "Ocean", "Desert", "Prairie", "Lakes", "Volcano",
	},
	AttrArtStyle: {
		"Anime Key Visuals", "Game Key Visuals", "Digital Art",
		"Visual Novel Key Visuals", "Kids Drawing", "Baroque Art",
	},
	AttrWebsiteStyle: {"Pixiv", "Twitter"},
}

// InCatalog reports whether value is one of the allowed values for attribute.
// Unknown attributes never match.
func InCatalog(attribute, value string) bool {
	values, ok := Catalog[attribute]
	if !ok {
		return false
	}

	return slices.Contains(values, value)
}

// Validate returns a field → message map for every attribute that is missing or
// not part of the catalog. A nil map means the attributes are valid.
func (a Attributes) Validate() map[string]string {
	var out map[string]string
	check := func(name, value string) {
		if value != "" && InCatalog(name, value) {
			return
		}
		if out == nil {
			out = map[string]string{}
		}
		if value == "" {
			out[name] = name + " is required"

			return
		}
		out[name] = name + " is not a valid option"
	}

	check(AttrClothingAccessory, a.ClothingAccessory)
	check(AttrHairColor, a.HairColor)
	check(AttrGender, a.Gender)
	check(AttrBackground, a.Background)
	check(AttrArtStyle, a.ArtStyle)
	check(AttrWebsiteStyle, a.WebsiteStyle)

	return out
}
