package sqlite

import (
	"context"
	"database/sql"

	"github.com/gkrp/dataportal/internal/portal/domain"
)

type layersRepo struct {
	q dbtx
}

const layerColumns = `layerid, layertype, layername, site, sector, square, context, layer,
	stratum, parentid, level, structure, includes, color1, color2,
	handfragments, wheelfragment, recordenteredby, recordenteredon,
	recordcreatedby, recordcreatedon, description, akb_num`

func scanLayer(row interface{ Scan(...any) error }) (domain.Layer, error) {
	var (
		l                                               domain.Layer
		layerType, layerName                            sql.NullString
		site, sector, square, lctx, layer, stratum      sql.NullString
		parentID                                        sql.NullInt64
		level, structure, includes, color1, color2      sql.NullString
		handFragments, wheelFragment                    sql.NullInt64
		recordEnteredBy, recordCreatedBy, description   sql.NullString
		akbNum                                          sql.NullInt64
	)
	err := row.Scan(
		&l.LayerID, &layerType, &layerName, &site, &sector, &square, &lctx, &layer,
		&stratum, &parentID, &level, &structure, &includes, &color1, &color2,
		&handFragments, &wheelFragment, &recordEnteredBy, &l.RecordEnteredOn,
		&recordCreatedBy, &l.RecordCreatedOn, &description, &akbNum,
	)
	if err != nil {
		return domain.Layer{}, err
	}
	l.LayerType = mapNullString(layerType)
	l.LayerName = mapNullString(layerName)
	l.Site = mapNullString(site)
	l.Sector = mapNullString(sector)
	l.Square = mapNullString(square)
	l.Context = mapNullString(lctx)
	l.Layer = mapNullString(layer)
	l.Stratum = mapNullString(stratum)
	l.ParentID = mapNullInt(parentID)
	l.Level = mapNullString(level)
	l.Structure = mapNullString(structure)
	l.Includes = mapNullString(includes)
	l.Color1 = mapNullString(color1)
	l.Color2 = mapNullString(color2)
	l.HandFragments = mapNullInt(handFragments)
	l.WheelFragment = mapNullInt(wheelFragment)
	l.RecordEnteredBy = mapNullString(recordEnteredBy)
	l.RecordCreatedBy = mapNullString(recordCreatedBy)
	l.Description = mapNullString(description)
	l.AkbNum = mapNullInt(akbNum)
	return l, nil
}

func (r *layersRepo) GetLayer(ctx context.Context, id int64) (domain.Layer, error) {
	l, err := scanLayer(r.q.QueryRowContext(ctx,
		`SELECT `+layerColumns+` FROM tbllayers WHERE layerid = ?`, id))
	if err != nil {
		return domain.Layer{}, mapNotFound(err)
	}
	return l, nil
}

func (r *layersRepo) CreateLayer(ctx context.Context, l domain.Layer) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO tbllayers (layertype, layername, site, sector, square, context, layer,
			stratum, parentid, level, structure, includes, color1, color2,
			handfragments, wheelfragment, recordenteredby, recordenteredon,
			recordcreatedby, recordcreatedon, description, akb_num)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mapOptionalString(l.LayerType), mapOptionalString(l.LayerName),
		mapOptionalString(l.Site), mapOptionalString(l.Sector), mapOptionalString(l.Square),
		mapOptionalString(l.Context), mapOptionalString(l.Layer), mapOptionalString(l.Stratum),
		mapOptionalInt(l.ParentID), mapOptionalString(l.Level), mapOptionalString(l.Structure),
		mapOptionalString(l.Includes), mapOptionalString(l.Color1), mapOptionalString(l.Color2),
		mapOptionalInt(l.HandFragments), mapOptionalInt(l.WheelFragment),
		mapOptionalString(l.RecordEnteredBy), l.RecordEnteredOn,
		mapOptionalString(l.RecordCreatedBy), l.RecordCreatedOn,
		mapOptionalString(l.Description), mapOptionalInt(l.AkbNum),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *layersRepo) UpdateLayer(ctx context.Context, l domain.Layer) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE tbllayers
		SET layertype = ?, layername = ?, site = ?, sector = ?, square = ?, context = ?,
		    layer = ?, stratum = ?, parentid = ?, level = ?, structure = ?, includes = ?,
		    color1 = ?, color2 = ?, handfragments = ?, wheelfragment = ?,
		    recordenteredby = ?, recordcreatedby = ?, recordcreatedon = ?,
		    description = ?, akb_num = ?
		WHERE layerid = ?`,
		mapOptionalString(l.LayerType), mapOptionalString(l.LayerName),
		mapOptionalString(l.Site), mapOptionalString(l.Sector), mapOptionalString(l.Square),
		mapOptionalString(l.Context), mapOptionalString(l.Layer), mapOptionalString(l.Stratum),
		mapOptionalInt(l.ParentID), mapOptionalString(l.Level), mapOptionalString(l.Structure),
		mapOptionalString(l.Includes), mapOptionalString(l.Color1), mapOptionalString(l.Color2),
		mapOptionalInt(l.HandFragments), mapOptionalInt(l.WheelFragment),
		mapOptionalString(l.RecordEnteredBy), mapOptionalString(l.RecordCreatedBy),
		l.RecordCreatedOn, mapOptionalString(l.Description), mapOptionalInt(l.AkbNum),
		l.LayerID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *layersRepo) DeleteLayer(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM tbllayers WHERE layerid = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *layersRepo) ListLayers(ctx context.Context, q string, limit int) ([]domain.Layer, error) {
	query := `SELECT ` + layerColumns + ` FROM tbllayers`
	args := []any{}
	if q != "" {
		query += ` WHERE ulower(coalesce(site,'')) LIKE ?
			OR ulower(coalesce(sector,'')) LIKE ?
			OR ulower(coalesce(square,'')) LIKE ?
			OR ulower(coalesce(layername,'')) LIKE ?
			OR ulower(coalesce(layer,'')) LIKE ?
			OR ulower(coalesce(context,'')) LIKE ?`
		like := likePattern(q)
		args = append(args, like, like, like, like, like, like)
	}
	query += ` ORDER BY layerid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Layer
	for rows.Next() {
		l, err := scanLayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
