package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Base carries the fields shared by every owned record. IDs and timestamps
// are server-assigned; UserID is the sole authorization boundary.
type Base struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Meta exposes the embedded Base to generic repository and service code.
func (b *Base) Meta() *Base { return b }

// Entity is implemented by every owned record type (pointer receivers).
type Entity interface {
	Meta() *Base
	ApplyDefaults()
	Validate() error
}

type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash *string    `db:"password_hash" json:"-"`
	FullName     string     `db:"full_name" json:"fullName"`
	PhoneNumber  *string    `db:"phone_number" json:"phoneNumber,omitempty"`
	DateOfBirth  *time.Time `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

// Frequency describes how often a cash-flow record recurs.
type Frequency string

const (
	FrequencyOneTime   Frequency = "one-time"
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

var frequencies = map[Frequency]bool{
	FrequencyOneTime:   true,
	FrequencyDaily:     true,
	FrequencyWeekly:    true,
	FrequencyBiWeekly:  true,
	FrequencyMonthly:   true,
	FrequencyQuarterly: true,
	FrequencyAnnually:  true,
}

func (f Frequency) Valid() bool { return frequencies[f] }

// IncomeCategory classifies where an income comes from.
type IncomeCategory string

const (
	IncomeCategoryEmployment  IncomeCategory = "Employment"
	IncomeCategoryInvestments IncomeCategory = "Investments"
	IncomeCategorySideGig     IncomeCategory = "Side Gig"
	IncomeCategoryRental      IncomeCategory = "Rental"
	IncomeCategoryGifts       IncomeCategory = "Gifts"
	IncomeCategoryOther       IncomeCategory = "Other"
)

var incomeCategories = map[IncomeCategory]bool{
	IncomeCategoryEmployment:  true,
	IncomeCategoryInvestments: true,
	IncomeCategorySideGig:     true,
	IncomeCategoryRental:      true,
	IncomeCategoryGifts:       true,
	IncomeCategoryOther:       true,
}

func (c IncomeCategory) Valid() bool { return incomeCategories[c] }

type Income struct {
	Base
	Source      string          `db:"source" json:"source"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Frequency   Frequency       `db:"frequency" json:"frequency"`
	Date        time.Time       `db:"date" json:"date"`
	Description *string         `db:"description" json:"description,omitempty"`
	Category    IncomeCategory  `db:"category" json:"category"`
	IsRecurring *bool           `db:"is_recurring" json:"isRecurring"`
}

func (i *Income) ApplyDefaults() {
	if i.Frequency == "" {
		i.Frequency = FrequencyMonthly
	}
	if i.Category == "" {
		i.Category = IncomeCategoryEmployment
	}
	if i.Date.IsZero() {
		i.Date = time.Now().UTC()
	}
	if i.IsRecurring == nil {
		recurring := true
		i.IsRecurring = &recurring
	}
}

func (i *Income) Validate() error {
	if i.Source == "" {
		return errors.New("source is required")
	}
	if i.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	if !i.Frequency.Valid() {
		return errors.New("invalid frequency")
	}
	if !i.Category.Valid() {
		return errors.New("invalid category")
	}
	return nil
}

type Expense struct {
	Base
	Title          string          `db:"title" json:"title"`
	Category       string          `db:"category" json:"category"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	Frequency      Frequency       `db:"frequency" json:"frequency"`
	DurationMonths *int            `db:"duration_months" json:"durationMonths,omitempty"`
	IsRecurring    *bool           `db:"is_recurring" json:"isRecurring"`
	Date           time.Time       `db:"date" json:"date"`
	Description    *string         `db:"description" json:"description,omitempty"`
}

func (e *Expense) ApplyDefaults() {
	if e.Frequency == "" {
		e.Frequency = FrequencyMonthly
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
	if e.IsRecurring == nil {
		recurring := true
		e.IsRecurring = &recurring
	}
}

func (e *Expense) Validate() error {
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.Category == "" {
		return errors.New("category is required")
	}
	if e.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	if !e.Frequency.Valid() {
		return errors.New("invalid frequency")
	}
	return nil
}

type Asset struct {
	Base
	Name             string          `db:"name" json:"name"`
	Type             string          `db:"type" json:"type"`
	Value            decimal.Decimal `db:"value" json:"value"`
	PurchasePrice    decimal.Decimal `db:"purchase_price" json:"purchasePrice"`
	AcquisitionDate  time.Time       `db:"acquisition_date" json:"acquisitionDate"`
	Location         *string         `db:"location" json:"location,omitempty"`
	Description      *string         `db:"description" json:"description,omitempty"`
	IsAppreciating   *bool           `db:"is_appreciating" json:"isAppreciating"`
	AppreciationRate decimal.Decimal `db:"appreciation_rate" json:"appreciationRate"`
}

func (a *Asset) ApplyDefaults() {
	if a.AcquisitionDate.IsZero() {
		a.AcquisitionDate = time.Now().UTC()
	}
	if a.IsAppreciating == nil {
		appreciating := true
		a.IsAppreciating = &appreciating
	}
}

func (a *Asset) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	if a.Type == "" {
		return errors.New("type is required")
	}
	if a.Value.IsNegative() {
		return errors.New("value must not be negative")
	}
	return nil
}

// LiabilityType classifies a debt obligation.
type LiabilityType string

const (
	LiabilityTypeCreditCard   LiabilityType = "Credit Card"
	LiabilityTypeMortgage     LiabilityType = "Mortgage"
	LiabilityTypeAutoLoan     LiabilityType = "Auto Loan"
	LiabilityTypeStudentLoan  LiabilityType = "Student Loan"
	LiabilityTypePersonalLoan LiabilityType = "Personal Loan"
	LiabilityTypeMedicalDebt  LiabilityType = "Medical Debt"
	LiabilityTypeOther        LiabilityType = "Other"
)

var liabilityTypes = map[LiabilityType]bool{
	LiabilityTypeCreditCard:   true,
	LiabilityTypeMortgage:     true,
	LiabilityTypeAutoLoan:     true,
	LiabilityTypeStudentLoan:  true,
	LiabilityTypePersonalLoan: true,
	LiabilityTypeMedicalDebt:  true,
	LiabilityTypeOther:        true,
}

func (t LiabilityType) Valid() bool { return liabilityTypes[t] }

type Liability struct {
	Base
	Name              string           `db:"name" json:"name"`
	Type              LiabilityType    `db:"type" json:"type"`
	Amount            decimal.Decimal  `db:"amount" json:"amount"`
	InterestRate      decimal.Decimal  `db:"interest_rate" json:"interestRate"`
	StartDate         time.Time        `db:"start_date" json:"startDate"`
	DueDate           time.Time        `db:"due_date" json:"dueDate"`
	Lender            *string          `db:"lender" json:"lender,omitempty"`
	Description       *string          `db:"description" json:"description,omitempty"`
	IsFixed           *bool            `db:"is_fixed" json:"isFixed"`
	MinimumPayment    *decimal.Decimal `db:"minimum_payment" json:"minimumPayment,omitempty"`
	RemainingPayments *int             `db:"remaining_payments" json:"remainingPayments,omitempty"`
}

func (l *Liability) ApplyDefaults() {
	if l.IsFixed == nil {
		fixed := true
		l.IsFixed = &fixed
	}
}

func (l *Liability) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if !l.Type.Valid() {
		return errors.New("invalid liability type")
	}
	if l.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	if l.InterestRate.IsNegative() {
		return errors.New("interest rate must not be negative")
	}
	if l.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	if l.DueDate.IsZero() {
		return errors.New("due date is required")
	}
	if l.MinimumPayment != nil && l.MinimumPayment.IsNegative() {
		return errors.New("minimum payment must not be negative")
	}
	if l.RemainingPayments != nil && *l.RemainingPayments < 0 {
		return errors.New("remaining payments must not be negative")
	}
	return nil
}
