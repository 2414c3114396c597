package domain

// Value sets carried over from the legacy ceramics schema. They back both the
// CHECK constraints in the migrations and the record validation in the
// services. Empty string is a member wherever the legacy data allows it.

var LayerTypeValues = []string{"механичен", "контекст", ""}

var ColorValues = []string{
	"бял", "жълт", "охра", "червен", "сив", "тъмносив",
	"кафяв", "светлокафяв", "тъмнокафяв", "черен", "",
}

var (
	FragmentTypeValues  = []string{"1", "2", ""}
	TechnologyValues    = []string{"1", "2", "2А", "2Б", ""}
	BakingValues        = []string{"Р", "Н", ""}
	FractValues         = []string{"1", "2", "3", ""}
	CoveringValues      = []string{"да", "не", "Ф1", "Ф2", "", "Б", "Г"}
	IncludesConcValues  = []string{"+", "-", ""}
	IncludesSizeValues  = []string{"М", "С", "Г", ""}
	SurfaceValues       = []string{"А", "Б", "В", "В1", "В2", "Г", ""}
	OnePotValues        = []string{"да", "не", ""}
	WallThicknessValues = []string{"М", "С", "Г", ""}
	HandleSizeValues    = []string{"М", "С", "Г", ""}
	DishSizeValues      = []string{"М", "С", "Г", ""}
	BottomTypeValues    = []string{"А", "Б", "В", "А1", "А2", "Б1", "Б2", "В1", "В2", ""}
	OutlineValues       = []string{"1", "2", "3", ""}
)

var PieceTypeValues = []string{
	"устие", "стена", "дръжка", "дъно", "профил", "чучур",
	"дъно+дръжка", "профил+дръжка", "устие+дръжка", "стена+дръжка",
	"псевдочучур", "плавен прелом", "биконичност", "двоен съд", "цял съд",
}

var (
	PrimaryOrnValues = []string{"А", "В", "Д", "И", "К", "Н", "П", "Р", "Ф", "Ц", "Щ", ""}

	SecondaryOrnValues = []string{
		"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX",
		"X", "XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "",
	}

	TertiaryOrnValues = []string{
		"А", "Б", "В", "Г", "Д", "Е", "Ж", "З", "И", "К", "Л", "М", "П",
		"А1", "А2", "Б1", "Б2", "",
	}
)

// InValueSet reports whether v is a member of the allowed set. A nil pointer
// counts as allowed: the legacy schema permits NULL alongside the value set.
func InValueSet(v *string, set []string) bool {
	if v == nil {
		return true
	}
	for _, s := range set {
		if *v == s {
			return true
		}
	}
	return false
}
