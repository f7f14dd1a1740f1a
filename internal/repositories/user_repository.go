package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

const userColumns = `UserID, Username, Email, Role, COALESCE(DATE_FORMAT(CreatedAt, '%Y-%m-%d %H:%i:%s'), '')`

func scanUser(r rowScanner) (models.User, error) {
	var u models.User
	err := r.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt)
	return u, err
}

func (r UserRepository) List(ctx context.Context) ([]models.User, error) {
	return queryList(ctx, r.DB, scanUser, `SELECT `+userColumns+` FROM users ORDER BY UserID ASC`)
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	if err := validID("User", id); err != nil {
		return models.User{}, err
	}
	return queryOne(ctx, r.DB, "User", scanUser, `SELECT `+userColumns+` FROM users WHERE UserID = ? LIMIT 1`, id)
}

// GetCredentials looks a user up by username or email and includes the password hash.
func (r UserRepository) GetCredentials(ctx context.Context, login string) (models.User, error) {
	scan := func(row rowScanner) (models.User, error) {
		var u models.User
		err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt, &u.PasswordHash)
		return u, err
	}
	return queryOne(ctx, r.DB, "User", scan,
		`SELECT `+userColumns+`, Password FROM users WHERE Username = ? OR Email = ? LIMIT 1`, login, login)
}

func (r UserRepository) Create(ctx context.Context, p models.UserPayload, passwordHash string) (int64, error) {
	return intdb.ExecInsert(ctx, r.DB, "user insert", "user", `
		INSERT INTO users (Username, Email, Password, Role, CreatedAt)
		VALUES (?, ?, ?, ?, NOW())
	`, p.Username, p.Email, passwordHash, p.Role)
}

// Update keeps the stored hash when passwordHash is empty.
func (r UserRepository) Update(ctx context.Context, id int64, p models.UserPayload, passwordHash string) error {
	if err := validID("User", id); err != nil {
		return err
	}
	if passwordHash == "" {
		return intdb.ExecAffecting(ctx, r.DB, "user update", "user",
			`UPDATE users SET Username = ?, Email = ?, Role = ? WHERE UserID = ?`,
			p.Username, p.Email, p.Role, id)
	}
	return intdb.ExecAffecting(ctx, r.DB, "user update", "user",
		`UPDATE users SET Username = ?, Email = ?, Role = ?, Password = ? WHERE UserID = ?`,
		p.Username, p.Email, p.Role, passwordHash, id)
}

func (r UserRepository) Delete(ctx context.Context, id int64) error {
	if err := validID("User", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "user delete", "user", `DELETE FROM users WHERE UserID = ?`, id)
}
