// Package routes is the URL template registry. Every href emitted in a
// hypermedia control is built here so that link construction is decoupled
// from the router's route table.
package routes

import "net/url"

// Namespace is the control name prefix for budtrack link relations.
const Namespace = "budtrack"

// Entry returns the path of the API entry point.
func Entry() string {
	return "/api/"
}

// UserCollection returns the path of the user collection.
func UserCollection() string {
	return "/api/users/"
}

// UserItem returns the path of a single user.
func UserItem(user string) string {
	return UserCollection() + url.PathEscape(user) + "/"
}

// BudgetCollection returns the path of the budget collection of a user.
func BudgetCollection(user string) string {
	return UserCollection() + url.PathEscape(user) + "/budgets"
}

// BudgetItem returns the path of a single budget of a user.
func BudgetItem(user, budget string) string {
	return BudgetCollection(user) + "/" + url.PathEscape(budget)
}

// ExpenseItem returns the path of a single expense of a budget.
func ExpenseItem(user, budget, expense string) string {
	return BudgetItem(user, budget) + "/" + url.PathEscape(expense)
}

// LinkRelations returns the path defining the budtrack link relations.
func LinkRelations() string {
	return "/budtrack/link-relations/"
}

// Profile returns the path of the profile for a resource kind.
func Profile(kind string) string {
	return "/profiles/" + kind + "/"
}

// ErrorProfile returns the path of the generic error profile.
func ErrorProfile() string {
	return Profile("error")
}
