package models

import "time"

// Profile is the per-user descriptive record shown on the profile page.
// Exactly one row exists per user; all descriptive fields are free-form
// strings with no server-side numeric validation.
type Profile struct {
	UserID              string    `json:"userId"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	ContactNumber       string    `json:"contactNumber"`
	Gender              string    `json:"gender"`
	Age                 string    `json:"age"`
	MaritalStatus       string    `json:"maritalStatus"`
	Education           string    `json:"education"`
	BankName            string    `json:"bankName"`
	State               string    `json:"state"`
	Location            string    `json:"location"`
	MonthlyIncome       string    `json:"monthlyIncome"`
	CurrentProfits      string    `json:"currentProfits"`
	FinancialGoals      string    `json:"financialGoals"`
	RiskTolerance       string    `json:"riskTolerance"`
	FamilyDependents    string    `json:"familyDependents"`
	ExistingLiabilities string    `json:"existingLiabilities"`
	InvestmentInterests string    `json:"investmentInterests"`
	LifestyleHabits     string    `json:"lifestyleHabits"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// DefaultProfile is the baseline record created for a user at registration.
// Name, email and contact number are copied from the user; the rest start
// at fixed defaults.
func DefaultProfile(user *User) *Profile {
	return &Profile{
		UserID:           user.ID,
		Name:             user.Name,
		Email:            user.Email,
		ContactNumber:    user.Contact,
		Gender:           "other",
		MonthlyIncome:    "0",
		RiskTolerance:    "medium",
		FamilyDependents: "0",
	}
}
