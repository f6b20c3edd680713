package profiles

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finweave/insight-server/internal/common"
	"github.com/finweave/insight-server/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var profileCols = []string{
	"user_id", "name", "email", "contact_number", "gender", "age",
	"marital_status", "education", "bank_name", "state", "location",
	"monthly_income", "current_profits", "financial_goals", "risk_tolerance",
	"family_dependents", "existing_liabilities", "investment_interests",
	"lifestyle_habits", "created_at", "updated_at",
}

func profileRow(userID, name string, ts time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(profileCols).AddRow(
		userID, name, "ana@x.com", "+911234567890", "other", "", "", "", "",
		"", "", "0", "", "", "medium", "0", "", "", "", ts, ts)
}

func TestGetByUserID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+profiles\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs("u-1").
		WillReturnRows(profileRow("u-1", "Ana", now))

	got, err := repo.GetByUserID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetByUserID error: %v", err)
	}
	if got.UserID != "u-1" || got.Name != "Ana" || got.RiskTolerance != "medium" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestGetByUserID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+profiles\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpsert_ReturnsStoredRecord(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+profiles\s+.*ON\s+CONFLICT\s+\(user_id\)\s+DO\s+UPDATE\s+SET.*RETURNING`).
		WithArgs("u-1", "Ana", "ana@x.com", "+911234567890", "other", "", "", "",
			"", "", "", "0", "", "", "medium", "0", "", "", "").
		WillReturnRows(profileRow("u-1", "Ana", now))

	p := &models.Profile{
		UserID: "u-1", Name: "Ana", Email: "ana@x.com",
		ContactNumber: "+911234567890", Gender: "other",
		MonthlyIncome: "0", RiskTolerance: "medium", FamilyDependents: "0",
	}
	got, err := repo.Upsert(context.Background(), p)
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got.UserID != "u-1" || !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+profiles`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Upsert(context.Background(), &models.Profile{UserID: "u-1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
