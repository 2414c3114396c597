package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/gkrp/dataportal/internal/portal/domain"
	"github.com/gkrp/dataportal/internal/portal/store"
)

type usersRepo struct {
	q dbtx
}

const userColumns = `id, username, email, password_hash, role, is_active,
	invited_at, invite_token_hash, invite_expires_at, last_login_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u         domain.User
		username  sql.NullString
		email     sql.NullString
		pwHash    sql.NullString
		invitedAt sql.NullTime
		tokenHash sql.NullString
		expiresAt sql.NullTime
		lastLogin sql.NullTime
	)
	err := row.Scan(
		&u.ID, &username, &email, &pwHash, &u.Role, &u.IsActive,
		&invitedAt, &tokenHash, &expiresAt, &lastLogin,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Username = mapNullString(username)
	u.Email = mapNullString(email)
	u.PasswordHash = mapNullString(pwHash)
	u.InvitedAt = mapNullTime(invitedAt)
	u.InviteTokenHash = mapNullString(tokenHash)
	u.InviteExpiresAt = mapNullTime(expiresAt)
	u.LastLoginAt = mapNullTime(lastLogin)
	return u, nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM tblregistered`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO tblregistered (username, email, password_hash, role, is_active)
		VALUES (?, ?, ?, ?, ?)`,
		mapOptionalString(u.Username), mapOptionalString(u.Email),
		mapOptionalString(u.PasswordHash), u.Role, u.IsActive,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM tblregistered WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM tblregistered WHERE username = ?`, username))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM tblregistered WHERE email = ?`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByInviteTokenHash(ctx context.Context, hash string) (domain.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM tblregistered WHERE invite_token_hash = ?`, hash))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateInvitedUser(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO tblregistered (email, role, is_active, invited_at, invite_token_hash, invite_expires_at)
		VALUES (?, ?, 0, ?, ?, ?)`,
		mapOptionalString(u.Email), u.Role,
		mapOptionalTime(u.InvitedAt), mapOptionalString(u.InviteTokenHash), mapOptionalTime(u.InviteExpiresAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) RefreshInvite(ctx context.Context, id int64, role string, invitedAt time.Time, tokenHash string, expiresAt time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE tblregistered
		SET role = ?, is_active = 0, invited_at = ?, invite_token_hash = ?, invite_expires_at = ?
		WHERE id = ?`,
		role, invitedAt, tokenHash, expiresAt, id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) FinalizeInvite(ctx context.Context, id int64, tokenHash, username, passwordHash string) error {
	// The token-hash guard makes finalization conditional: a concurrent
	// redemption that already burned the token matches zero rows here.
	res, err := r.q.ExecContext(ctx, `
		UPDATE tblregistered
		SET username = ?, password_hash = ?, is_active = 1,
		    invite_token_hash = NULL, invite_expires_at = NULL
		WHERE id = ? AND invite_token_hash = ?`,
		username, passwordHash, id, tokenHash,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *usersRepo) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE tblregistered SET is_active = ? WHERE id = ?`, active, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE tblregistered SET last_login_at = ? WHERE id = ?`, at, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM tblregistered ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// requireRow converts a zero-row UPDATE/DELETE into store.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
