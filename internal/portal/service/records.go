package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/gkrp/dataportal/internal/portal/store"
	"github.com/gkrp/dataportal/pkg/slogx"
)

var ErrRecordNotFound = errors.New("record not found")

// ValidationError names the field that carried a value outside its allowed
// set.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}

func checkValue(field string, v *string, set []string) error {
	if !domain.InValueSet(v, set) {
		return &ValidationError{Field: field, Value: *v}
	}
	return nil
}

// DefaultListLimit caps record listings when the caller does not ask for a
// specific page size.
const DefaultListLimit = 200

// RecordService is the CRUD surface over the excavation entities. Writes
// stamp recordenteredon server-side and validate coded fields against the
// legacy value sets.
type RecordService struct {
	Store store.Store

	Now func() time.Time
}

func (s *RecordService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}

/* Layers */

func validateLayer(l domain.Layer) error {
	if err := checkValue("layertype", l.LayerType, domain.LayerTypeValues); err != nil {
		return err
	}
	if err := checkValue("color1", l.Color1, domain.ColorValues); err != nil {
		return err
	}
	return checkValue("color2", l.Color2, domain.ColorValues)
}

func (s *RecordService) CreateLayer(ctx context.Context, l domain.Layer) (domain.Layer, error) {
	if err := validateLayer(l); err != nil {
		return domain.Layer{}, err
	}
	now := s.now().UTC()
	l.RecordEnteredOn = now
	if l.RecordCreatedOn.IsZero() {
		l.RecordCreatedOn = now
	}

	id, err := s.Store.Layers().CreateLayer(ctx, l)
	if err != nil {
		return domain.Layer{}, err
	}
	slogx.FromContext(ctx).Info("layer created", slog.Int64("layer_id", id))
	return s.Store.Layers().GetLayer(ctx, id)
}

func (s *RecordService) GetLayer(ctx context.Context, id int64) (domain.Layer, error) {
	l, err := s.Store.Layers().GetLayer(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Layer{}, ErrRecordNotFound
	}
	return l, err
}

func (s *RecordService) UpdateLayer(ctx context.Context, l domain.Layer) (domain.Layer, error) {
	if err := validateLayer(l); err != nil {
		return domain.Layer{}, err
	}
	if err := s.Store.Layers().UpdateLayer(ctx, l); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Layer{}, ErrRecordNotFound
		}
		return domain.Layer{}, err
	}
	return s.Store.Layers().GetLayer(ctx, l.LayerID)
}

func (s *RecordService) DeleteLayer(ctx context.Context, id int64) error {
	err := s.Store.Layers().DeleteLayer(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRecordNotFound
	}
	if err == nil {
		slogx.FromContext(ctx).Info("layer deleted", slog.Int64("layer_id", id))
	}
	return err
}

func (s *RecordService) ListLayers(ctx context.Context, q string, limit int) ([]domain.Layer, error) {
	return s.Store.Layers().ListLayers(ctx, q, clampLimit(limit))
}

/* Fragments */

func validateFragment(f domain.Fragment) error {
	pt := f.PieceType
	if err := checkValue("piecetype", &pt, domain.PieceTypeValues); err != nil {
		return err
	}
	checks := []struct {
		field string
		value *string
		set   []string
	}{
		{"fragmenttype", f.FragmentType, domain.FragmentTypeValues},
		{"technology", f.Technology, domain.TechnologyValues},
		{"baking", f.Baking, domain.BakingValues},
		{"fract", f.Fract, domain.FractValues},
		{"primarycolor", f.PrimaryColor, domain.ColorValues},
		{"secondarycolor", f.SecondaryColor, domain.ColorValues},
		{"covering", f.Covering, domain.CoveringValues},
		{"includesconc", f.IncludesConc, domain.IncludesConcValues},
		{"includessize", f.IncludesSize, domain.IncludesSizeValues},
		{"surface", f.Surface, domain.SurfaceValues},
		{"onepot", f.OnePot, domain.OnePotValues},
		{"wallthickness", f.WallThickness, domain.WallThicknessValues},
		{"handlesize", f.HandleSize, domain.HandleSizeValues},
		{"dishsize", f.DishSize, domain.DishSizeValues},
		{"bottomtype", f.BottomType, domain.BottomTypeValues},
		{"outline", f.Outline, domain.OutlineValues},
	}
	for _, c := range checks {
		if err := checkValue(c.field, c.value, c.set); err != nil {
			return err
		}
	}
	return nil
}

func (s *RecordService) CreateFragment(ctx context.Context, f domain.Fragment) (domain.Fragment, error) {
	if err := validateFragment(f); err != nil {
		return domain.Fragment{}, err
	}
	if f.Count <= 0 {
		f.Count = 1
	}
	f.RecordEnteredOn = s.now().UTC()

	id, err := s.Store.Fragments().CreateFragment(ctx, f)
	if err != nil {
		return domain.Fragment{}, err
	}
	slogx.FromContext(ctx).Info("fragment created", slog.Int64("fragment_id", id))
	return s.Store.Fragments().GetFragment(ctx, id)
}

func (s *RecordService) GetFragment(ctx context.Context, id int64) (domain.Fragment, error) {
	f, err := s.Store.Fragments().GetFragment(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Fragment{}, ErrRecordNotFound
	}
	return f, err
}

func (s *RecordService) UpdateFragment(ctx context.Context, f domain.Fragment) (domain.Fragment, error) {
	if err := validateFragment(f); err != nil {
		return domain.Fragment{}, err
	}
	existing, err := s.Store.Fragments().GetFragment(ctx, f.FragmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Fragment{}, ErrRecordNotFound
		}
		return domain.Fragment{}, err
	}
	f.RecordEnteredOn = existing.RecordEnteredOn

	if err := s.Store.Fragments().UpdateFragment(ctx, f); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Fragment{}, ErrRecordNotFound
		}
		return domain.Fragment{}, err
	}
	return s.Store.Fragments().GetFragment(ctx, f.FragmentID)
}

func (s *RecordService) DeleteFragment(ctx context.Context, id int64) error {
	err := s.Store.Fragments().DeleteFragment(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRecordNotFound
	}
	if err == nil {
		slogx.FromContext(ctx).Info("fragment deleted", slog.Int64("fragment_id", id))
	}
	return err
}

func (s *RecordService) ListFragments(ctx context.Context, q string, limit int) ([]domain.Fragment, error) {
	return s.Store.Fragments().ListFragments(ctx, q, clampLimit(limit))
}

/* Ornaments */

func validateOrnament(o domain.Ornament) error {
	checks := []struct {
		field string
		value *string
		set   []string
	}{
		{"color1", o.Color1, domain.ColorValues},
		{"color2", o.Color2, domain.ColorValues},
		{"encrustcolor1", o.EncrustColor1, domain.ColorValues},
		{"encrustcolor2", o.EncrustColor2, domain.ColorValues},
		{"primary", o.Primary, domain.PrimaryOrnValues},
		{"secondary", o.Secondary, domain.SecondaryOrnValues},
		{"tertiary", o.Tertiary, domain.TertiaryOrnValues},
	}
	for _, c := range checks {
		if err := checkValue(c.field, c.value, c.set); err != nil {
			return err
		}
	}
	return nil
}

func (s *RecordService) CreateOrnament(ctx context.Context, o domain.Ornament) (domain.Ornament, error) {
	if err := validateOrnament(o); err != nil {
		return domain.Ornament{}, err
	}
	o.RecordEnteredOn = s.now().UTC()

	id, err := s.Store.Ornaments().CreateOrnament(ctx, o)
	if err != nil {
		return domain.Ornament{}, err
	}
	slogx.FromContext(ctx).Info("ornament created", slog.Int64("ornament_id", id))
	return s.Store.Ornaments().GetOrnament(ctx, id)
}

func (s *RecordService) GetOrnament(ctx context.Context, id int64) (domain.Ornament, error) {
	o, err := s.Store.Ornaments().GetOrnament(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Ornament{}, ErrRecordNotFound
	}
	return o, err
}

func (s *RecordService) UpdateOrnament(ctx context.Context, o domain.Ornament) (domain.Ornament, error) {
	if err := validateOrnament(o); err != nil {
		return domain.Ornament{}, err
	}
	if err := s.Store.Ornaments().UpdateOrnament(ctx, o); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Ornament{}, ErrRecordNotFound
		}
		return domain.Ornament{}, err
	}
	return s.Store.Ornaments().GetOrnament(ctx, o.OrnamentID)
}

func (s *RecordService) DeleteOrnament(ctx context.Context, id int64) error {
	err := s.Store.Ornaments().DeleteOrnament(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRecordNotFound
	}
	if err == nil {
		slogx.FromContext(ctx).Info("ornament deleted", slog.Int64("ornament_id", id))
	}
	return err
}

func (s *RecordService) ListOrnaments(ctx context.Context, q string, limit int) ([]domain.Ornament, error) {
	return s.Store.Ornaments().ListOrnaments(ctx, q, clampLimit(limit))
}

/* Finds */

func (s *RecordService) CreateFind(ctx context.Context, f domain.Find) (domain.Find, error) {
	f.RecordEnteredOn = s.now().UTC()

	id, err := s.Store.Finds().CreateFind(ctx, f)
	if err != nil {
		return domain.Find{}, err
	}
	slogx.FromContext(ctx).Info("find created", slog.Int64("find_id", id))
	return s.Store.Finds().GetFind(ctx, id)
}

func (s *RecordService) GetFind(ctx context.Context, id int64) (domain.Find, error) {
	f, err := s.Store.Finds().GetFind(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Find{}, ErrRecordNotFound
	}
	return f, err
}

func (s *RecordService) UpdateFind(ctx context.Context, f domain.Find) (domain.Find, error) {
	if err := s.Store.Finds().UpdateFind(ctx, f); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Find{}, ErrRecordNotFound
		}
		return domain.Find{}, err
	}
	return s.Store.Finds().GetFind(ctx, f.FindID)
}

func (s *RecordService) DeleteFind(ctx context.Context, id int64) error {
	err := s.Store.Finds().DeleteFind(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRecordNotFound
	}
	if err == nil {
		slogx.FromContext(ctx).Info("find deleted", slog.Int64("find_id", id))
	}
	return err
}

func (s *RecordService) ListFinds(ctx context.Context, q string, limit int) ([]domain.Find, error) {
	return s.Store.Finds().ListFinds(ctx, q, clampLimit(limit))
}
