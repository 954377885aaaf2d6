package course

type Category string

const (
	CategoryProgramming Category = "PROGRAMMING"
	CategoryMathematics Category = "MATHEMATICS"
	CategoryScience     Category = "SCIENCE"
	CategoryLanguage    Category = "LANGUAGE"
	CategoryHumanities  Category = "HUMANITIES"
	CategoryOther       Category = "OTHER"
)

var AllCategories = []Category{
	CategoryProgramming,
	CategoryMathematics,
	CategoryScience,
	CategoryLanguage,
	CategoryHumanities,
	CategoryOther,
}

func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}
