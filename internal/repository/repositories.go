package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/finadvisor/backend/internal/model"
)

// Concrete repositories for the four uniform record types. The goal
// repository lives in goal_repository.go because goals carry extra query
// semantics.

type IncomeRepository = CrudRepository[model.Income, *model.Income]

func NewIncomeRepository(db *sqlx.DB) *IncomeRepository {
	return NewCrudRepository[model.Income](db, Descriptor{
		Table: "incomes",
		Columns: []string{
			"source", "amount", "frequency", "date", "description",
			"category", "is_recurring",
		},
	})
}

type ExpenseRepository = CrudRepository[model.Expense, *model.Expense]

func NewExpenseRepository(db *sqlx.DB) *ExpenseRepository {
	return NewCrudRepository[model.Expense](db, Descriptor{
		Table: "expenses",
		Columns: []string{
			"title", "category", "amount", "frequency", "duration_months",
			"is_recurring", "date", "description",
		},
	})
}

type AssetRepository = CrudRepository[model.Asset, *model.Asset]

func NewAssetRepository(db *sqlx.DB) *AssetRepository {
	return NewCrudRepository[model.Asset](db, Descriptor{
		Table: "assets",
		Columns: []string{
			"name", "type", "value", "purchase_price", "acquisition_date",
			"location", "description", "is_appreciating", "appreciation_rate",
		},
	})
}

type LiabilityRepository = CrudRepository[model.Liability, *model.Liability]

func NewLiabilityRepository(db *sqlx.DB) *LiabilityRepository {
	return NewCrudRepository[model.Liability](db, Descriptor{
		Table: "liabilities",
		Columns: []string{
			"name", "type", "amount", "interest_rate", "start_date", "due_date",
			"lender", "description", "is_fixed", "minimum_payment",
			"remaining_payments",
		},
	})
}
