package sqlite

import (
	"context"
	"database/sql"

	"github.com/gkrp/dataportal/internal/portal/domain"
)

type ornamentsRepo struct {
	q dbtx
}

const ornamentColumns = `ornamentid, fragmentid, location, relationship, onornament,
	color1, color2, encrustcolor1, encrustcolor2, primary_, secondary, tertiary,
	quarternary, recordenteredon`

func scanOrnament(row interface{ Scan(...any) error }) (domain.Ornament, error) {
	var (
		o                              domain.Ornament
		fragmentID                     sql.NullInt64
		location, relationship         sql.NullString
		onOrnament                     sql.NullInt64
		color1, color2                 sql.NullString
		encrustColor1, encrustColor2   sql.NullString
		primary, secondary, tertiary   sql.NullString
		quarternary                    sql.NullInt64
	)
	err := row.Scan(
		&o.OrnamentID, &fragmentID, &location, &relationship, &onOrnament,
		&color1, &color2, &encrustColor1, &encrustColor2, &primary, &secondary,
		&tertiary, &quarternary, &o.RecordEnteredOn,
	)
	if err != nil {
		return domain.Ornament{}, err
	}
	o.FragmentID = mapNullInt(fragmentID)
	o.Location = mapNullString(location)
	o.Relationship = mapNullString(relationship)
	o.OnOrnament = mapNullInt(onOrnament)
	o.Color1 = mapNullString(color1)
	o.Color2 = mapNullString(color2)
	o.EncrustColor1 = mapNullString(encrustColor1)
	o.EncrustColor2 = mapNullString(encrustColor2)
	o.Primary = mapNullString(primary)
	o.Secondary = mapNullString(secondary)
	o.Tertiary = mapNullString(tertiary)
	o.Quarternary = mapNullInt(quarternary)
	return o, nil
}

func (r *ornamentsRepo) GetOrnament(ctx context.Context, id int64) (domain.Ornament, error) {
	o, err := scanOrnament(r.q.QueryRowContext(ctx,
		`SELECT `+ornamentColumns+` FROM tblornaments WHERE ornamentid = ?`, id))
	if err != nil {
		return domain.Ornament{}, mapNotFound(err)
	}
	return o, nil
}

func (r *ornamentsRepo) CreateOrnament(ctx context.Context, o domain.Ornament) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO tblornaments (fragmentid, location, relationship, onornament,
			color1, color2, encrustcolor1, encrustcolor2, primary_, secondary,
			tertiary, quarternary, recordenteredon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mapOptionalInt(o.FragmentID), mapOptionalString(o.Location),
		mapOptionalString(o.Relationship), mapOptionalInt(o.OnOrnament),
		mapOptionalString(o.Color1), mapOptionalString(o.Color2),
		mapOptionalString(o.EncrustColor1), mapOptionalString(o.EncrustColor2),
		mapOptionalString(o.Primary), mapOptionalString(o.Secondary),
		mapOptionalString(o.Tertiary), mapOptionalInt(o.Quarternary),
		o.RecordEnteredOn,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *ornamentsRepo) UpdateOrnament(ctx context.Context, o domain.Ornament) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE tblornaments
		SET fragmentid = ?, location = ?, relationship = ?, onornament = ?,
		    color1 = ?, color2 = ?, encrustcolor1 = ?, encrustcolor2 = ?,
		    primary_ = ?, secondary = ?, tertiary = ?, quarternary = ?
		WHERE ornamentid = ?`,
		mapOptionalInt(o.FragmentID), mapOptionalString(o.Location),
		mapOptionalString(o.Relationship), mapOptionalInt(o.OnOrnament),
		mapOptionalString(o.Color1), mapOptionalString(o.Color2),
		mapOptionalString(o.EncrustColor1), mapOptionalString(o.EncrustColor2),
		mapOptionalString(o.Primary), mapOptionalString(o.Secondary),
		mapOptionalString(o.Tertiary), mapOptionalInt(o.Quarternary),
		o.OrnamentID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ornamentsRepo) DeleteOrnament(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM tblornaments WHERE ornamentid = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ornamentsRepo) ListOrnaments(ctx context.Context, q string, limit int) ([]domain.Ornament, error) {
	query := `SELECT ` + ornamentColumns + ` FROM tblornaments`
	args := []any{}
	if q != "" {
		query += ` WHERE ulower(coalesce(location,'')) LIKE ?
			OR ulower(coalesce(primary_,'')) LIKE ?
			OR ulower(coalesce(secondary,'')) LIKE ?
			OR ulower(coalesce(color1,'')) LIKE ?`
		like := likePattern(q)
		args = append(args, like, like, like, like)
	}
	query += ` ORDER BY ornamentid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Ornament
	for rows.Next() {
		o, err := scanOrnament(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
