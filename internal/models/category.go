package models

// Category is the section a video is listed under.
type Category string

const (
	CategoryMusic     Category = "Música"
	CategoryEducation Category = "Educação"
	CategoryMentoring Category = "Mentoria"
	CategoryOther     Category = "Outros"
)

// Categories lists the selectable categories in form order.
var Categories = []Category{
	CategoryMusic,
	CategoryEducation,
	CategoryMentoring,
	CategoryOther,
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

func categoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return names
}
