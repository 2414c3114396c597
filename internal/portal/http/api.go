package http

import (
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

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

func userFromDomain(u domain.User) User {
	return User{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Role:            u.Role,
		IsActive:        u.IsActive,
		InvitedAt:       u.InvitedAt,
		InviteExpiresAt: u.InviteExpiresAt,
		LastLoginAt:     u.LastLoginAt,
		InvitePending:   u.HasPendingInvite(),
	}
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

func layerFromDomain(l domain.Layer) Layer {
	return Layer{
		LayerID: l.LayerID, LayerType: l.LayerType, LayerName: l.LayerName,
		Site: l.Site, Sector: l.Sector, Square: l.Square, Context: l.Context,
		Layer: l.Layer, Stratum: l.Stratum, ParentID: l.ParentID,
		Level: l.Level, Structure: l.Structure, Includes: l.Includes,
		Color1: l.Color1, Color2: l.Color2,
		HandFragments: l.HandFragments, WheelFragment: l.WheelFragment,
		RecordEnteredBy: l.RecordEnteredBy, RecordEnteredOn: l.RecordEnteredOn,
		RecordCreatedBy: l.RecordCreatedBy, RecordCreatedOn: l.RecordCreatedOn,
		Description: l.Description, AkbNum: l.AkbNum,
	}
}

func (l Layer) toDomain() domain.Layer {
	return domain.Layer{
		LayerID: l.LayerID, LayerType: l.LayerType, LayerName: l.LayerName,
		Site: l.Site, Sector: l.Sector, Square: l.Square, Context: l.Context,
		Layer: l.Layer, Stratum: l.Stratum, ParentID: l.ParentID,
		Level: l.Level, Structure: l.Structure, Includes: l.Includes,
		Color1: l.Color1, Color2: l.Color2,
		HandFragments: l.HandFragments, WheelFragment: l.WheelFragment,
		RecordEnteredBy: l.RecordEnteredBy, RecordEnteredOn: l.RecordEnteredOn,
		RecordCreatedBy: l.RecordCreatedBy, RecordCreatedOn: l.RecordCreatedOn,
		Description: l.Description, AkbNum: l.AkbNum,
	}
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

func fragmentFromDomain(f domain.Fragment) Fragment {
	return Fragment{
		FragmentID: f.FragmentID, LocationID: f.LocationID,
		FragmentType: f.FragmentType, Technology: f.Technology, Baking: f.Baking,
		Fract: f.Fract, PrimaryColor: f.PrimaryColor, SecondaryColor: f.SecondaryColor,
		Covering: f.Covering, IncludesConc: f.IncludesConc, IncludesSize: f.IncludesSize,
		Surface: f.Surface, Count: f.Count, OnePot: f.OnePot, PieceType: f.PieceType,
		WallThickness: f.WallThickness, HandleSize: f.HandleSize, HandleType: f.HandleType,
		DishSize: f.DishSize, BottomType: f.BottomType, Outline: f.Outline,
		Category: f.Category, Form: f.Form, Type: f.Type, Subtype: f.Subtype,
		Variant: f.Variant, Speed: f.Speed, IncludesType: f.IncludesType,
		TopSize: f.TopSize, NeckSize: f.NeckSize, BodySize: f.BodySize,
		BottomSize: f.BottomSize, DishHeight: f.DishHeight,
		Decoration: f.Decoration, Composition: f.Composition, Parallels: f.Parallels,
		Note: f.Note, Inventory: f.Inventory, ImageURL: f.ImageURL,
		RecordEnteredBy: f.RecordEnteredBy, RecordEnteredOn: f.RecordEnteredOn,
	}
}

func (f Fragment) toDomain() domain.Fragment {
	return domain.Fragment{
		FragmentID: f.FragmentID, LocationID: f.LocationID,
		FragmentType: f.FragmentType, Technology: f.Technology, Baking: f.Baking,
		Fract: f.Fract, PrimaryColor: f.PrimaryColor, SecondaryColor: f.SecondaryColor,
		Covering: f.Covering, IncludesConc: f.IncludesConc, IncludesSize: f.IncludesSize,
		Surface: f.Surface, Count: f.Count, OnePot: f.OnePot, PieceType: f.PieceType,
		WallThickness: f.WallThickness, HandleSize: f.HandleSize, HandleType: f.HandleType,
		DishSize: f.DishSize, BottomType: f.BottomType, Outline: f.Outline,
		Category: f.Category, Form: f.Form, Type: f.Type, Subtype: f.Subtype,
		Variant: f.Variant, Speed: f.Speed, IncludesType: f.IncludesType,
		TopSize: f.TopSize, NeckSize: f.NeckSize, BodySize: f.BodySize,
		BottomSize: f.BottomSize, DishHeight: f.DishHeight,
		Decoration: f.Decoration, Composition: f.Composition, Parallels: f.Parallels,
		Note: f.Note, Inventory: f.Inventory, ImageURL: f.ImageURL,
		RecordEnteredBy: f.RecordEnteredBy, RecordEnteredOn: f.RecordEnteredOn,
	}
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

func ornamentFromDomain(o domain.Ornament) Ornament {
	return Ornament{
		OrnamentID: o.OrnamentID, FragmentID: o.FragmentID,
		Location: o.Location, Relationship: o.Relationship, OnOrnament: o.OnOrnament,
		Color1: o.Color1, Color2: o.Color2,
		EncrustColor1: o.EncrustColor1, EncrustColor2: o.EncrustColor2,
		Primary: o.Primary, Secondary: o.Secondary, Tertiary: o.Tertiary,
		Quarternary: o.Quarternary, RecordEnteredOn: o.RecordEnteredOn,
	}
}

func (o Ornament) toDomain() domain.Ornament {
	return domain.Ornament{
		OrnamentID: o.OrnamentID, FragmentID: o.FragmentID,
		Location: o.Location, Relationship: o.Relationship, OnOrnament: o.OnOrnament,
		Color1: o.Color1, Color2: o.Color2,
		EncrustColor1: o.EncrustColor1, EncrustColor2: o.EncrustColor2,
		Primary: o.Primary, Secondary: o.Secondary, Tertiary: o.Tertiary,
		Quarternary: o.Quarternary, RecordEnteredOn: o.RecordEnteredOn,
	}
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

func findFromDomain(f domain.Find) Find {
	return Find{
		FindID: f.FindID, LayerID: f.LayerID,
		FragmentID: f.FragmentID, OrnamentID: f.OrnamentID,
		FindType: f.FindType, Description: f.Description,
		Inventory: f.Inventory, ImageURL: f.ImageURL,
		RecordEnteredBy: f.RecordEnteredBy, RecordEnteredOn: f.RecordEnteredOn,
	}
}

func (f Find) toDomain() domain.Find {
	return domain.Find{
		FindID: f.FindID, LayerID: f.LayerID,
		FragmentID: f.FragmentID, OrnamentID: f.OrnamentID,
		FindType: f.FindType, Description: f.Description,
		Inventory: f.Inventory, ImageURL: f.ImageURL,
		RecordEnteredBy: f.RecordEnteredBy, RecordEnteredOn: f.RecordEnteredOn,
	}
}

/* Analytics */

type AnalyticsResponse struct {
	Items   []domain.Row `json:"items"`
	Total   int          `json:"total"`
	Columns []string     `json:"columns"`
}

type ReportResponse struct {
	Items   []domain.Row `json:"items"`
	Total   int          `json:"total"`
	Columns []string     `json:"columns"`

	ChartLabels []string `json:"chart_labels"`
	ChartCounts []int    `json:"chart_counts"`

	ImageURLs []string `json:"image_urls"`
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
