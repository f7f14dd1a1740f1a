package repositories

import (
	"context"
	"database/sql"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain/models"
)

type ActivityRepository struct {
	DB *sql.DB
}

const activityColumns = `
	a.ActivityID, a.UserID, COALESCE(u.Username, ''), a.Action, COALESCE(a.Description, ''),
	DATE_FORMAT(a.ActivityDate, '%Y-%m-%d %H:%i:%s')`

const activityFrom = ` FROM activity a LEFT JOIN users u ON u.UserID = a.UserID`

func scanActivity(r rowScanner) (models.Activity, error) {
	var a models.Activity
	err := r.Scan(&a.ID, &a.UserID, &a.Username, &a.Action, &a.Description, &a.ActivityDate)
	return a, err
}

// List returns the newest activity first, optionally for a single user.
func (r ActivityRepository) List(ctx context.Context, userID int64, limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var where intdb.Filter
	where.AddIfPositive(userID, "a.UserID = ?")
	query := `SELECT ` + activityColumns + activityFrom + where.Where() + ` ORDER BY a.ActivityDate DESC, a.ActivityID DESC LIMIT ?`
	return queryList(ctx, r.DB, scanActivity, query, append(where.Args(), limit)...)
}

func (r ActivityRepository) Create(ctx context.Context, p models.ActivityPayload) (int64, error) {
	return intdb.ExecInsert(ctx, r.DB, "activity insert", "activity", `
		INSERT INTO activity (UserID, Action, Description, ActivityDate)
		VALUES (?, ?, ?, NOW())
	`, p.UserID, p.Action, intdb.NullIfEmpty(p.Description))
}

func (r ActivityRepository) Delete(ctx context.Context, id int64) error {
	if err := validID("Activity", id); err != nil {
		return err
	}
	return intdb.ExecAffecting(ctx, r.DB, "activity delete", "activity", `DELETE FROM activity WHERE ActivityID = ?`, id)
}
