package portalsdk

import "time"

/* Auth */

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        User   `json:"user"`
}

/* Users and invites */

type User struct {
	ID              int64      `json:"id"`
	Username        *string    `json:"username"`
	Email           *string    `json:"email"`
	Role            string     `json:"role"`
	IsActive        bool       `json:"is_active"`
	InvitedAt       *time.Time `json:"invited_at,omitempty"`
	InviteExpiresAt *time.Time `json:"invite_expires_at,omitempty"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	InvitePending   bool       `json:"invite_pending"`
}

type InviteMintRequest struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	TTLHours int    `json:"ttl_hours,omitempty"`
}

type InviteMintResponse struct {
	InviteToken string    `json:"invite_token"`
	InviteURL   string    `json:"invite_url"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}

type InviteRedeemRequest struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

/* Records */

type Layer struct {
	LayerID         int64     `json:"layerid"`
	LayerType       *string   `json:"layertype"`
	LayerName       *string   `json:"layername"`
	Site            *string   `json:"site"`
	Sector          *string   `json:"sector"`
	Square          *string   `json:"square"`
	Context         *string   `json:"context"`
	Layer           *string   `json:"layer"`
	Stratum         *string   `json:"stratum"`
	ParentID        *int64    `json:"parentid"`
	Level           *string   `json:"level"`
	Structure       *string   `json:"structure"`
	Includes        *string   `json:"includes"`
	Color1          *string   `json:"color1"`
	Color2          *string   `json:"color2"`
	HandFragments   *int64    `json:"handfragments"`
	WheelFragment   *int64    `json:"wheelfragment"`
	RecordEnteredBy *string   `json:"recordenteredby"`
	RecordEnteredOn time.Time `json:"recordenteredon"`
	RecordCreatedBy *string   `json:"recordcreatedby"`
	RecordCreatedOn time.Time `json:"recordcreatedon"`
	Description     *string   `json:"description"`
	AkbNum          *int64    `json:"akb_num"`
}

type Fragment struct {
	FragmentID int64  `json:"fragmentid"`
	LocationID *int64 `json:"locationid"`

	FragmentType   *string `json:"fragmenttype"`
	Technology     *string `json:"technology"`
	Baking         *string `json:"baking"`
	Fract          *string `json:"fract"`
	PrimaryColor   *string `json:"primarycolor"`
	SecondaryColor *string `json:"secondarycolor"`
	Covering       *string `json:"covering"`
	IncludesConc   *string `json:"includesconc"`
	IncludesSize   *string `json:"includessize"`
	Surface        *string `json:"surface"`

	Count     int64   `json:"count"`
	OnePot    *string `json:"onepot"`
	PieceType string  `json:"piecetype"`

	WallThickness *string `json:"wallthickness"`
	HandleSize    *string `json:"handlesize"`
	HandleType    *string `json:"handletype"`
	DishSize      *string `json:"dishsize"`
	BottomType    *string `json:"bottomtype"`
	Outline       *string `json:"outline"`

	Category *string `json:"category"`
	Form     *string `json:"form"`
	Type     *int64  `json:"type"`
	Subtype  *string `json:"subtype"`
	Variant  *int64  `json:"variant"`

	Speed        *string `json:"speed"`
	IncludesType *string `json:"includestype"`

	TopSize    *float64 `json:"topsize"`
	NeckSize   *float64 `json:"necksize"`
	BodySize   *float64 `json:"bodysize"`
	BottomSize *float64 `json:"bottomsize"`
	DishHeight *float64 `json:"dishheight"`

	Decoration  *string `json:"decoration"`
	Composition *string `json:"composition"`
	Parallels   *string `json:"parallels"`

	Note      *string `json:"note"`
	Inventory *string `json:"inventory"`
	ImageURL  *string `json:"image_url"`

	RecordEnteredBy *string   `json:"recordenteredby"`
	RecordEnteredOn time.Time `json:"recordenteredon"`
}

type Ornament struct {
	OrnamentID int64  `json:"ornamentid"`
	FragmentID *int64 `json:"fragmentid"`

	Location     *string `json:"location"`
	Relationship *string `json:"relationship"`
	OnOrnament   *int64  `json:"onornament"`

	Color1 *string `json:"color1"`
	Color2 *string `json:"color2"`

	EncrustColor1 *string `json:"encrustcolor1"`
	EncrustColor2 *string `json:"encrustcolor2"`

	Primary     *string `json:"primary"`
	Secondary   *string `json:"secondary"`
	Tertiary    *string `json:"tertiary"`
	Quarternary *int64  `json:"quarternary"`

	RecordEnteredOn time.Time `json:"recordenteredon"`
}

type Find struct {
	FindID     int64  `json:"findid"`
	LayerID    int64  `json:"layerid"`
	FragmentID *int64 `json:"fragmentid"`
	OrnamentID *int64 `json:"ornamentid"`

	FindType    *string `json:"findtype"`
	Description *string `json:"description"`
	Inventory   *string `json:"inventory"`
	ImageURL    *string `json:"image_url"`

	RecordEnteredBy *string   `json:"recordenteredby"`
	RecordEnteredOn time.Time `json:"recordenteredon"`
}

/* Analytics */

// Row is one flattened analytics row keyed by prefixed column name.
type Row map[string]any

type AnalyticsResponse struct {
	Items   []Row    `json:"items"`
	Total   int      `json:"total"`
	Columns []string `json:"columns"`
}

type ReportResponse struct {
	Items   []Row    `json:"items"`
	Total   int      `json:"total"`
	Columns []string `json:"columns"`

	ChartLabels []string `json:"chart_labels"`
	ChartCounts []int    `json:"chart_counts"`

	ImageURLs []string `json:"image_urls"`
}

type ChartFigure struct {
	Data []struct {
		Type string   `json:"type"`
		X    []string `json:"x"`
		Y    []int    `json:"y"`
	} `json:"data"`
	Layout struct {
		Title string `json:"title"`
	} `json:"layout"`
}

/* Health */

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
