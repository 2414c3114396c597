package domain

import "time"

// Fragment is a ceramic fragment record (tblfragments). A fragment belongs to
// at most one layer; the foreign key survives layer deletion as NULL.
type Fragment struct {
	FragmentID int64
	LocationID *int64 // owning layer

	FragmentType   *string
	Technology     *string
	Baking         *string
	Fract          *string
	PrimaryColor   *string
	SecondaryColor *string
	Covering       *string
	IncludesConc   *string
	IncludesSize   *string
	Surface        *string

	Count     int64
	OnePot    *string
	PieceType string

	WallThickness *string
	HandleSize    *string
	HandleType    *string
	DishSize      *string
	BottomType    *string
	Outline       *string

	Category *string
	Form     *string
	Type     *int64
	Subtype  *string
	Variant  *int64

	Speed        *string
	IncludesType *string

	TopSize    *float64
	NeckSize   *float64
	BodySize   *float64
	BottomSize *float64
	DishHeight *float64

	Decoration  *string
	Composition *string
	Parallels   *string

	Note      *string
	Inventory *string
	ImageURL  *string

	RecordEnteredBy *string
	RecordEnteredOn time.Time
}
