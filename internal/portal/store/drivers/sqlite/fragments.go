package sqlite

import (
	"context"
	"database/sql"

	"github.com/gkrp/dataportal/internal/portal/domain"
)

type fragmentsRepo struct {
	q dbtx
}

const fragmentColumns = `fragmentid, locationid, fragmenttype, technology, baking, fract,
	primarycolor, secondarycolor, covering, includesconc, includessize, surface,
	count, onepot, piecetype, wallthickness, handlesize, handletype, dishsize,
	bottomtype, outline, category, form, type, subtype, variant, speed,
	includestype, topsize, necksize, bodysize, bottomsize, dishheight,
	decoration, composition, parallels, note, inventory, image_url,
	recordenteredby, recordenteredon`

func scanFragment(row interface{ Scan(...any) error }) (domain.Fragment, error) {
	var (
		f                                          domain.Fragment
		locationID                                 sql.NullInt64
		fragmentType, technology, baking, fract    sql.NullString
		primaryColor, secondaryColor, covering     sql.NullString
		includesConc, includesSize, surface        sql.NullString
		onePot                                     sql.NullString
		wallThickness, handleSize, handleType      sql.NullString
		dishSize, bottomType, outline              sql.NullString
		category, form, subtype                    sql.NullString
		typ, variant                               sql.NullInt64
		speed, includesType                        sql.NullString
		topSize, neckSize, bodySize                sql.NullFloat64
		bottomSize, dishHeight                     sql.NullFloat64
		decoration, composition, parallels         sql.NullString
		note, inventory, imageURL, recordEnteredBy sql.NullString
	)
	err := row.Scan(
		&f.FragmentID, &locationID, &fragmentType, &technology, &baking, &fract,
		&primaryColor, &secondaryColor, &covering, &includesConc, &includesSize, &surface,
		&f.Count, &onePot, &f.PieceType, &wallThickness, &handleSize, &handleType, &dishSize,
		&bottomType, &outline, &category, &form, &typ, &subtype, &variant, &speed,
		&includesType, &topSize, &neckSize, &bodySize, &bottomSize, &dishHeight,
		&decoration, &composition, &parallels, &note, &inventory, &imageURL,
		&recordEnteredBy, &f.RecordEnteredOn,
	)
	if err != nil {
		return domain.Fragment{}, err
	}
	f.LocationID = mapNullInt(locationID)
	f.FragmentType = mapNullString(fragmentType)
	f.Technology = mapNullString(technology)
	f.Baking = mapNullString(baking)
	f.Fract = mapNullString(fract)
	f.PrimaryColor = mapNullString(primaryColor)
	f.SecondaryColor = mapNullString(secondaryColor)
	f.Covering = mapNullString(covering)
	f.IncludesConc = mapNullString(includesConc)
	f.IncludesSize = mapNullString(includesSize)
	f.Surface = mapNullString(surface)
	f.OnePot = mapNullString(onePot)
	f.WallThickness = mapNullString(wallThickness)
	f.HandleSize = mapNullString(handleSize)
	f.HandleType = mapNullString(handleType)
	f.DishSize = mapNullString(dishSize)
	f.BottomType = mapNullString(bottomType)
	f.Outline = mapNullString(outline)
	f.Category = mapNullString(category)
	f.Form = mapNullString(form)
	f.Type = mapNullInt(typ)
	f.Subtype = mapNullString(subtype)
	f.Variant = mapNullInt(variant)
	f.Speed = mapNullString(speed)
	f.IncludesType = mapNullString(includesType)
	f.TopSize = mapNullFloat(topSize)
	f.NeckSize = mapNullFloat(neckSize)
	f.BodySize = mapNullFloat(bodySize)
	f.BottomSize = mapNullFloat(bottomSize)
	f.DishHeight = mapNullFloat(dishHeight)
	f.Decoration = mapNullString(decoration)
	f.Composition = mapNullString(composition)
	f.Parallels = mapNullString(parallels)
	f.Note = mapNullString(note)
	f.Inventory = mapNullString(inventory)
	f.ImageURL = mapNullString(imageURL)
	f.RecordEnteredBy = mapNullString(recordEnteredBy)
	return f, nil
}

func (r *fragmentsRepo) GetFragment(ctx context.Context, id int64) (domain.Fragment, error) {
	f, err := scanFragment(r.q.QueryRowContext(ctx,
		`SELECT `+fragmentColumns+` FROM tblfragments WHERE fragmentid = ?`, id))
	if err != nil {
		return domain.Fragment{}, mapNotFound(err)
	}
	return f, nil
}

func (r *fragmentsRepo) CreateFragment(ctx context.Context, f domain.Fragment) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO tblfragments (locationid, fragmenttype, technology, baking, fract,
			primarycolor, secondarycolor, covering, includesconc, includessize, surface,
			count, onepot, piecetype, wallthickness, handlesize, handletype, dishsize,
			bottomtype, outline, category, form, type, subtype, variant, speed,
			includestype, topsize, necksize, bodysize, bottomsize, dishheight,
			decoration, composition, parallels, note, inventory, image_url,
			recordenteredby, recordenteredon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fragmentArgs(f)...,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *fragmentsRepo) UpdateFragment(ctx context.Context, f domain.Fragment) error {
	args := fragmentArgs(f)
	args = append(args, f.FragmentID)
	res, err := r.q.ExecContext(ctx, `
		UPDATE tblfragments
		SET locationid = ?, fragmenttype = ?, technology = ?, baking = ?, fract = ?,
		    primarycolor = ?, secondarycolor = ?, covering = ?, includesconc = ?,
		    includessize = ?, surface = ?, count = ?, onepot = ?, piecetype = ?,
		    wallthickness = ?, handlesize = ?, handletype = ?, dishsize = ?,
		    bottomtype = ?, outline = ?, category = ?, form = ?, type = ?,
		    subtype = ?, variant = ?, speed = ?, includestype = ?, topsize = ?,
		    necksize = ?, bodysize = ?, bottomsize = ?, dishheight = ?,
		    decoration = ?, composition = ?, parallels = ?, note = ?,
		    inventory = ?, image_url = ?, recordenteredby = ?, recordenteredon = ?
		WHERE fragmentid = ?`,
		args...,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// fragmentArgs returns the bind values for every fragment column except
// fragmentid, in fragmentColumns order.
func fragmentArgs(f domain.Fragment) []any {
	return []any{
		mapOptionalInt(f.LocationID), mapOptionalString(f.FragmentType),
		mapOptionalString(f.Technology), mapOptionalString(f.Baking),
		mapOptionalString(f.Fract), mapOptionalString(f.PrimaryColor),
		mapOptionalString(f.SecondaryColor), mapOptionalString(f.Covering),
		mapOptionalString(f.IncludesConc), mapOptionalString(f.IncludesSize),
		mapOptionalString(f.Surface), f.Count, mapOptionalString(f.OnePot),
		f.PieceType, mapOptionalString(f.WallThickness),
		mapOptionalString(f.HandleSize), mapOptionalString(f.HandleType),
		mapOptionalString(f.DishSize), mapOptionalString(f.BottomType),
		mapOptionalString(f.Outline), mapOptionalString(f.Category),
		mapOptionalString(f.Form), mapOptionalInt(f.Type),
		mapOptionalString(f.Subtype), mapOptionalInt(f.Variant),
		mapOptionalString(f.Speed), mapOptionalString(f.IncludesType),
		mapOptionalFloat(f.TopSize), mapOptionalFloat(f.NeckSize),
		mapOptionalFloat(f.BodySize), mapOptionalFloat(f.BottomSize),
		mapOptionalFloat(f.DishHeight), mapOptionalString(f.Decoration),
		mapOptionalString(f.Composition), mapOptionalString(f.Parallels),
		mapOptionalString(f.Note), mapOptionalString(f.Inventory),
		mapOptionalString(f.ImageURL), mapOptionalString(f.RecordEnteredBy),
		f.RecordEnteredOn,
	}
}

func (r *fragmentsRepo) DeleteFragment(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM tblfragments WHERE fragmentid = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *fragmentsRepo) ListFragments(ctx context.Context, q string, limit int) ([]domain.Fragment, error) {
	query := `SELECT ` + fragmentColumns + ` FROM tblfragments`
	args := []any{}
	if q != "" {
		query += ` WHERE ulower(coalesce(fragmenttype,'')) LIKE ?
			OR ulower(coalesce(category,'')) LIKE ?
			OR ulower(coalesce(form,'')) LIKE ?
			OR ulower(coalesce(inventory,'')) LIKE ?
			OR ulower(coalesce(note,'')) LIKE ?
			OR ulower(coalesce(decoration,'')) LIKE ?`
		like := likePattern(q)
		args = append(args, like, like, like, like, like, like)
	}
	query += ` ORDER BY fragmentid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Fragment
	for rows.Next() {
		f, err := scanFragment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
