// Package seed holds the demo dataset used to populate an empty deployment.
package seed

import "fintrack/internal/core"

// Transactions returns the demo collection, newest first. IDs are fixed so
// a fresh deployment is reproducible.
func Transactions() []core.Transaction {
	return []core.Transaction{
		{ID: "1", Type: core.Expense, Amount: core.Money{Cents: 43000}, Date: core.NewDate(2025, 5, 17), Category: core.CategoryShopping, Description: "Shopping"},
		{ID: "2", Type: core.Expense, Amount: core.Money{Cents: 67000}, Date: core.NewDate(2025, 5, 13), Category: core.CategoryTravel, Description: "Travel"},
		{ID: "3", Type: core.Expense, Amount: core.Money{Cents: 20000}, Date: core.NewDate(2025, 5, 11), Category: core.CategoryUtilities, Description: "Electricity Bill"},
		{ID: "4", Type: core.Expense, Amount: core.Money{Cents: 60000}, Date: core.NewDate(2025, 5, 10), Category: core.CategoryOther, Description: "Loan Repayment"},
		{ID: "5", Type: core.Expense, Amount: core.Money{Cents: 15000}, Date: core.NewDate(2025, 5, 8), Category: core.CategoryGroceries, Description: "Groceries"},
		{ID: "6", Type: core.Expense, Amount: core.Money{Cents: 5000}, Date: core.NewDate(2025, 5, 6), Category: core.CategoryEntertainment, Description: "Movie Night"},
		{ID: "7", Type: core.Income, Amount: core.Money{Cents: 250000}, Date: core.NewDate(2025, 5, 1), Category: core.CategoryIncome, Description: "Salary"},
	}
}

// DemoUser returns the account used by the demo sign-in flow.
func DemoUser() core.User {
	return core.User{
		ID:       "1",
		Name:     "Mike William",
		Email:    "mike.william@example.com",
		Currency: core.USD,
	}
}
