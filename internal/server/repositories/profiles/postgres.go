package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finweave/insight-server/internal/common"
	"github.com/finweave/insight-server/internal/dbx"
	"github.com/finweave/insight-server/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const profileColumns = `user_id, name, email, contact_number, gender, age, marital_status,
	education, bank_name, state, location, monthly_income, current_profits,
	financial_goals, risk_tolerance, family_dependents, existing_liabilities,
	investment_interests, lifestyle_habits, created_at, updated_at`

func scanProfile(row *sql.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(
		&p.UserID, &p.Name, &p.Email, &p.ContactNumber, &p.Gender, &p.Age,
		&p.MaritalStatus, &p.Education, &p.BankName, &p.State, &p.Location,
		&p.MonthlyIncome, &p.CurrentProfits, &p.FinancialGoals, &p.RiskTolerance,
		&p.FamilyDependents, &p.ExistingLiabilities, &p.InvestmentInterests,
		&p.LifestyleHabits, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles
	     WHERE user_id = $1
	     `

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

// Upsert relies on the unique index on user_id: concurrent first-time writes
// for the same owner collapse into one row, the losing insert turning into
// an update.
func (r *PostgresRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query := `INSERT INTO profiles (user_id, name, email, contact_number, gender, age,
	        marital_status, education, bank_name, state, location, monthly_income,
	        current_profits, financial_goals, risk_tolerance, family_dependents,
	        existing_liabilities, investment_interests, lifestyle_habits)
	     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	     ON CONFLICT (user_id) DO UPDATE SET
	        name = EXCLUDED.name,
	        email = EXCLUDED.email,
	        contact_number = EXCLUDED.contact_number,
	        gender = EXCLUDED.gender,
	        age = EXCLUDED.age,
	        marital_status = EXCLUDED.marital_status,
	        education = EXCLUDED.education,
	        bank_name = EXCLUDED.bank_name,
	        state = EXCLUDED.state,
	        location = EXCLUDED.location,
	        monthly_income = EXCLUDED.monthly_income,
	        current_profits = EXCLUDED.current_profits,
	        financial_goals = EXCLUDED.financial_goals,
	        risk_tolerance = EXCLUDED.risk_tolerance,
	        family_dependents = EXCLUDED.family_dependents,
	        existing_liabilities = EXCLUDED.existing_liabilities,
	        investment_interests = EXCLUDED.investment_interests,
	        lifestyle_habits = EXCLUDED.lifestyle_habits,
	        updated_at = now()
	     RETURNING ` + profileColumns + `
	     `

	p, err := scanProfile(r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.Name, profile.Email, profile.ContactNumber,
		profile.Gender, profile.Age, profile.MaritalStatus, profile.Education,
		profile.BankName, profile.State, profile.Location, profile.MonthlyIncome,
		profile.CurrentProfits, profile.FinancialGoals, profile.RiskTolerance,
		profile.FamilyDependents, profile.ExistingLiabilities,
		profile.InvestmentInterests, profile.LifestyleHabits))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}
