package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// GoalCategory classifies a savings goal.
type GoalCategory string

const (
	GoalCategoryRetirement    GoalCategory = "Retirement"
	GoalCategoryEducation     GoalCategory = "Education"
	GoalCategoryHome          GoalCategory = "Home"
	GoalCategoryCar           GoalCategory = "Car"
	GoalCategoryTravel        GoalCategory = "Travel"
	GoalCategoryEmergencyFund GoalCategory = "Emergency Fund"
	GoalCategoryDebtPayoff    GoalCategory = "Debt Payoff"
	GoalCategoryInvestment    GoalCategory = "Investment"
	GoalCategoryOther         GoalCategory = "Other"
)

var goalCategories = map[GoalCategory]bool{
	GoalCategoryRetirement:    true,
	GoalCategoryEducation:     true,
	GoalCategoryHome:          true,
	GoalCategoryCar:           true,
	GoalCategoryTravel:        true,
	GoalCategoryEmergencyFund: true,
	GoalCategoryDebtPayoff:    true,
	GoalCategoryInvestment:    true,
	GoalCategoryOther:         true,
}

func (c GoalCategory) Valid() bool { return goalCategories[c] }

// Contribution is a single deposit recorded against a goal.
type Contribution struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Note   string          `json:"note,omitempty"`
}

// Contributions is stored as a JSONB column.
type Contributions []Contribution

func (c Contributions) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal contributions: %w", err)
	}
	return string(b), nil
}

func (c *Contributions) Scan(src interface{}) error {
	if src == nil {
		*c = Contributions{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported contributions type %T", src)
	}
	if len(data) == 0 {
		*c = Contributions{}
		return nil
	}
	return json.Unmarshal(data, c)
}

type Goal struct {
	Base
	Name          string          `db:"name" json:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount" json:"targetAmount"`
	CurrentAmount decimal.Decimal `db:"current_amount" json:"currentAmount"`
	TargetDate    time.Time       `db:"target_date" json:"targetDate"`
	Category      GoalCategory    `db:"category" json:"category"`
	Description   *string         `db:"description" json:"description,omitempty"`
	Priority      int             `db:"priority" json:"priority"`
	IsCompleted   bool            `db:"is_completed" json:"isCompleted"`
	Contributions Contributions   `db:"contributions" json:"contributions"`
}

func (g *Goal) ApplyDefaults() {
	if g.Category == "" {
		g.Category = GoalCategoryOther
	}
	if g.Priority == 0 {
		g.Priority = 2
	}
	if g.Contributions == nil {
		g.Contributions = Contributions{}
	}
}

func (g *Goal) Validate() error {
	if g.Name == "" {
		return errors.New("name is required")
	}
	if g.TargetAmount.IsNegative() {
		return errors.New("target amount must not be negative")
	}
	if g.CurrentAmount.IsNegative() {
		return errors.New("current amount must not be negative")
	}
	if g.TargetDate.IsZero() {
		return errors.New("target date is required")
	}
	if !g.Category.Valid() {
		return errors.New("invalid category")
	}
	if g.Priority < 1 || g.Priority > 3 {
		return errors.New("priority must be 1, 2 or 3")
	}
	return nil
}

// ProgressPercentage returns how far the goal has progressed towards its
// target, as a percentage. A zero target reports zero progress.
func (g *Goal) ProgressPercentage() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// DaysRemaining returns the number of days until the target date, rounded up.
// Negative once the target date has passed.
func (g *Goal) DaysRemaining(now time.Time) int {
	return int(math.Ceil(g.TargetDate.Sub(now).Hours() / 24))
}

// IsOverdue reports whether the goal's target date passed without completion.
func (g *Goal) IsOverdue(now time.Time) bool {
	return !g.IsCompleted && g.DaysRemaining(now) < 0
}

// MarshalJSON attaches the derived read-only fields to every serialized goal.
func (g Goal) MarshalJSON() ([]byte, error) {
	type alias Goal
	now := time.Now().UTC()
	return json.Marshal(struct {
		alias
		ProgressPercentage float64 `json:"progressPercentage"`
		DaysRemaining      int     `json:"daysRemaining"`
		IsOverdue          bool    `json:"isOverdue"`
	}{
		alias:              alias(g),
		ProgressPercentage: g.ProgressPercentage(),
		DaysRemaining:      g.DaysRemaining(now),
		IsOverdue:          g.IsOverdue(now),
	})
}
