package domain

import "time"

// Layer is a stratigraphic layer record (tbllayers).
type Layer struct {
	LayerID int64

	LayerType *string
	LayerName *string

	Site    *string
	Sector  *string
	Square  *string
	Context *string
	Layer   *string
	Stratum *string

	ParentID  *int64
	Level     *string
	Structure *string
	Includes  *string

	Color1 *string
	Color2 *string

	HandFragments *int64
	WheelFragment *int64

	RecordEnteredBy *string
	RecordEnteredOn time.Time
	RecordCreatedBy *string
	RecordCreatedOn time.Time

	Description *string
	AkbNum      *int64
}
