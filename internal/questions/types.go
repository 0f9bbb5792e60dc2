package questions

// Category groups questions by topic.
type Category string

const (
	CategoryCharacters Category = "characters"
	CategoryMovies     Category = "movies"
	CategoryGeneral    Category = "general"
	CategoryScience    Category = "science"
	CategoryNature     Category = "nature"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{CategoryCharacters, CategoryMovies, CategoryGeneral, CategoryScience, CategoryNature}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryCharacters:
		return "Characters"
	case CategoryMovies:
		return "Movies"
	case CategoryGeneral:
		return "General"
	case CategoryScience:
		return "Science"
	case CategoryNature:
		return "Nature"
	default:
		return string(c)
	}
}

// ParseCategory converts s into a Category. The empty string is valid and
// means "any".
func ParseCategory(s string) (Category, bool) {
	if s == "" {
		return "", true
	}
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Difficulty is the difficulty tag of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts s into a Difficulty. The empty string is valid
// and means "any".
func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(s); d {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, true
	default:
		return "", false
	}
}

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is one immutable multiple-choice trivia question.
type Question struct {
	ID          string
	Prompt      string
	Options     [OptionCount]string
	Correct     int
	Category    Category
	Difficulty  Difficulty
	CharacterID string
}

// IsCorrect reports whether index is the correct option.
func (q Question) IsCorrect(index int) bool {
	return index == q.Correct
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	return q.Options[q.Correct]
}
