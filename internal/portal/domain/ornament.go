package domain

import "time"

// Ornament is a decoration record tied to a fragment (tblornaments).
type Ornament struct {
	OrnamentID int64
	FragmentID *int64

	Location     *string
	Relationship *string
	OnOrnament   *int64

	Color1 *string
	Color2 *string

	EncrustColor1 *string
	EncrustColor2 *string

	Primary     *string
	Secondary   *string
	Tertiary    *string
	Quarternary *int64

	RecordEnteredOn time.Time
}
