package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/finweave/insight-server/internal/common"
	"github.com/finweave/insight-server/internal/server/models"
	"github.com/finweave/insight-server/internal/server/repositories/repomanager"
)

// ProfileUpdate carries the fields of a profile write. Nil fields were not
// supplied by the client and keep their stored values.
type ProfileUpdate struct {
	Name                *string `json:"name"`
	Email               *string `json:"email"`
	ContactNumber       *string `json:"contactNumber"`
	Gender              *string `json:"gender"`
	Age                 *string `json:"age"`
	MaritalStatus       *string `json:"maritalStatus"`
	Education           *string `json:"education"`
	BankName            *string `json:"bankName"`
	State               *string `json:"state"`
	Location            *string `json:"location"`
	MonthlyIncome       *string `json:"monthlyIncome"`
	CurrentProfits      *string `json:"currentProfits"`
	FinancialGoals      *string `json:"financialGoals"`
	RiskTolerance       *string `json:"riskTolerance"`
	FamilyDependents    *string `json:"familyDependents"`
	ExistingLiabilities *string `json:"existingLiabilities"`
	InvestmentInterests *string `json:"investmentInterests"`
	LifestyleHabits     *string `json:"lifestyleHabits"`
}

// apply overlays the supplied fields on top of p.
func (u *ProfileUpdate) apply(p *models.Profile) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Name, u.Name)
	set(&p.Email, u.Email)
	set(&p.ContactNumber, u.ContactNumber)
	set(&p.Gender, u.Gender)
	set(&p.Age, u.Age)
	set(&p.MaritalStatus, u.MaritalStatus)
	set(&p.Education, u.Education)
	set(&p.BankName, u.BankName)
	set(&p.State, u.State)
	set(&p.Location, u.Location)
	set(&p.MonthlyIncome, u.MonthlyIncome)
	set(&p.CurrentProfits, u.CurrentProfits)
	set(&p.FinancialGoals, u.FinancialGoals)
	set(&p.RiskTolerance, u.RiskTolerance)
	set(&p.FamilyDependents, u.FamilyDependents)
	set(&p.ExistingLiabilities, u.ExistingLiabilities)
	set(&p.InvestmentInterests, u.InvestmentInterests)
	set(&p.LifestyleHabits, u.LifestyleHabits)
}

// ProfileService exposes read and upsert operations over the profile store,
// always scoped to the identity resolved by the auth middleware.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

// Get returns the profile owned by userID, or common.ErrorNotFound when the
// user has none. Reads never create a record.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.repomanager.Profiles(s.db).GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return p, nil
}

// Upsert creates or updates the caller's profile. The stored record (or a
// fresh baseline when none exists) is merged with the supplied fields, then
// written through the store's atomic insert-or-update keyed on user_id, so
// concurrent first-time writes can never produce two rows for one owner.
func (s *ProfileService) Upsert(ctx context.Context, userID string, update *ProfileUpdate) (*models.Profile, error) {
	repo := s.repomanager.Profiles(s.db)

	base, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInternal
		}
		base = &models.Profile{UserID: userID}
	}

	update.apply(base)

	stored, err := repo.Upsert(ctx, base)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return stored, nil
}
