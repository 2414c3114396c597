package domain

import "time"

// Find is a non-ceramic find record (tblfinds). It always belongs to a layer
// and may optionally reference the fragment or ornament it was found with.
type Find struct {
	FindID     int64
	LayerID    int64
	FragmentID *int64
	OrnamentID *int64

	FindType    *string
	Description *string
	Inventory   *string
	ImageURL    *string

	RecordEnteredBy *string
	RecordEnteredOn time.Time
}
