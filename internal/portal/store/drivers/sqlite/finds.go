package sqlite

import (
	"context"
	"database/sql"

	"github.com/gkrp/dataportal/internal/portal/domain"
)

type findsRepo struct {
	q dbtx
}

const findColumns = `findid, layerid, fragmentid, ornamentid, findtype, description,
	inventory, image_url, recordenteredby, recordenteredon`

func scanFind(row interface{ Scan(...any) error }) (domain.Find, error) {
	var (
		f                               domain.Find
		fragmentID, ornamentID          sql.NullInt64
		findType, description           sql.NullString
		inventory, imageURL, enteredBy  sql.NullString
	)
	err := row.Scan(
		&f.FindID, &f.LayerID, &fragmentID, &ornamentID, &findType, &description,
		&inventory, &imageURL, &enteredBy, &f.RecordEnteredOn,
	)
	if err != nil {
		return domain.Find{}, err
	}
	f.FragmentID = mapNullInt(fragmentID)
	f.OrnamentID = mapNullInt(ornamentID)
	f.FindType = mapNullString(findType)
	f.Description = mapNullString(description)
	f.Inventory = mapNullString(inventory)
	f.ImageURL = mapNullString(imageURL)
	f.RecordEnteredBy = mapNullString(enteredBy)
	return f, nil
}

func (r *findsRepo) GetFind(ctx context.Context, id int64) (domain.Find, error) {
	f, err := scanFind(r.q.QueryRowContext(ctx,
		`SELECT `+findColumns+` FROM tblfinds WHERE findid = ?`, id))
	if err != nil {
		return domain.Find{}, mapNotFound(err)
	}
	return f, nil
}

func (r *findsRepo) CreateFind(ctx context.Context, f domain.Find) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO tblfinds (layerid, fragmentid, ornamentid, findtype, description,
			inventory, image_url, recordenteredby, recordenteredon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.LayerID, mapOptionalInt(f.FragmentID), mapOptionalInt(f.OrnamentID),
		mapOptionalString(f.FindType), mapOptionalString(f.Description),
		mapOptionalString(f.Inventory), mapOptionalString(f.ImageURL),
		mapOptionalString(f.RecordEnteredBy), f.RecordEnteredOn,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *findsRepo) UpdateFind(ctx context.Context, f domain.Find) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE tblfinds
		SET layerid = ?, fragmentid = ?, ornamentid = ?, findtype = ?,
		    description = ?, inventory = ?, image_url = ?, recordenteredby = ?
		WHERE findid = ?`,
		f.LayerID, mapOptionalInt(f.FragmentID), mapOptionalInt(f.OrnamentID),
		mapOptionalString(f.FindType), mapOptionalString(f.Description),
		mapOptionalString(f.Inventory), mapOptionalString(f.ImageURL),
		mapOptionalString(f.RecordEnteredBy), f.FindID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *findsRepo) DeleteFind(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM tblfinds WHERE findid = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *findsRepo) ListFinds(ctx context.Context, q string, limit int) ([]domain.Find, error) {
	query := `SELECT ` + findColumns + ` FROM tblfinds`
	args := []any{}
	if q != "" {
		query += ` WHERE ulower(coalesce(findtype,'')) LIKE ?
			OR ulower(coalesce(description,'')) LIKE ?
			OR ulower(coalesce(inventory,'')) LIKE ?`
		like := likePattern(q)
		args = append(args, like, like, like)
	}
	query += ` ORDER BY findid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Find
	for rows.Next() {
		f, err := scanFind(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
