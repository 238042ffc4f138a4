package controllers

import (
	"net/http"

	"github.com/budtrack/backend/internal/httputil"
	"github.com/budtrack/backend/internal/mason"
	"github.com/budtrack/backend/internal/models"
	"github.com/budtrack/backend/internal/routes"
	"github.com/budtrack/backend/internal/schema"
	"github.com/budtrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the users RouterGroup that is passed.
//
// Expenses are created with a POST on their budget, see RegisterBudgetRoutes.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:username/budgets/:budget/:expense", OptionsExpenseItem)
	r.GET("/:username/budgets/:budget/:expense", GetExpense)
	r.PUT("/:username/budgets/:budget/:expense", UpdateExpense)
	r.DELETE("/:username/budgets/:budget/:expense", DeleteExpense)
}

// resolveExpense resolves user, budget and expense from the request path,
// left to right. The first missing ancestor determines the error.
func resolveExpense(c *gin.Context) (models.User, models.Budget, models.Expense, error) {
	user, budget, err := resolveBudget(c)
	if err != nil {
		return models.User{}, models.Budget{}, models.Expense{}, err
	}

	expense, err := models.ExpenseOfBudget(models.DB, budget, c.Param("expense"))
	if err != nil {
		return models.User{}, models.Budget{}, models.Expense{}, err
	}

	return user, budget, expense, nil
}

// setExpenseFields sets the expense's own fields on the document.
func setExpenseFields(doc *mason.Document, expense models.Expense) {
	doc.Set("expense_name", expense.Name)
	doc.Set("expense_description", expense.Description)
	doc.Set("expense_amount", expense.Amount)
	doc.Set("expense_date", expense.Date)
}

// expenseItem builds the sub-document for an expense embedded in its
// budget's document.
func expenseItem(user models.User, budget models.Budget, expense models.Expense) *mason.Document {
	doc := mason.New()
	setExpenseFields(doc, expense)
	doc.AddControl("self", mason.Control{Href: routes.ExpenseItem(user.Name, budget.Name, expense.Name)})
	doc.AddControl("profile", mason.Control{Href: routes.Profile("expense")})

	return doc
}

// expenseDocument builds the full document for a single expense.
func expenseDocument(user models.User, budget models.Budget, expense models.Expense) *mason.Document {
	self := routes.ExpenseItem(user.Name, budget.Name, expense.Name)

	doc := expenseItem(user, budget, expense)
	doc.AddNamespace(routes.Namespace, routes.LinkRelations())
	doc.AddControl("budtrack:author", mason.Control{
		Href:  routes.UserItem(user.Name),
		Title: "The user owning this expense",
	})
	doc.AddControl("up", mason.Control{
		Href:  routes.BudgetItem(user.Name, budget.Name),
		Title: "The budget this expense is booked against",
	})
	doc.AddControl("edit", mason.Control{
		Href:     self,
		Method:   http.MethodPut,
		Encoding: "json",
		Title:    "Edit this expense",
		Schema:   schema.Expense(),
	})
	doc.AddControl("budtrack:delete", mason.Control{
		Href:   self,
		Method: http.MethodDelete,
		Title:  "Delete this expense",
	})
	doc.AddControl("budtrack:budget-by", mason.Control{
		Href:  routes.BudgetCollection(user.Name),
		Title: "Budgets of this user",
	})

	return doc
}

// expenseFromBody constructs an expense from a schema-validated body. The
// date is parsed strictly even though the schema pattern is more lenient.
func expenseFromBody(budget models.Budget, body map[string]any) (models.Expense, error) {
	date, err := types.ParseDate(body["expense_date"].(string))
	if err != nil {
		return models.Expense{}, err
	}

	return models.Expense{
		BudgetID:    budget.ID,
		Name:        body["expense_name"].(string),
		Description: body["expense_description"].(string),
		Amount:      decimal.NewFromFloat(body["expense_amount"].(float64)),
		Date:        date,
	}, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Param			budget		path	string	true	"Name of the budget"
// @Param			expense		path	string	true	"Name of the expense"
// @Router			/api/users/{username}/budgets/{budget}/{expense} [options]
func OptionsExpenseItem(c *gin.Context) {
	_, _, _, err := resolveExpense(c)
	if err != nil {
		renderErr(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// CreateExpense creates a new expense with a POST on the budget item path.
//
// @Summary		Create expense
// @Description	Creates a new expense booked against the budget
// @Tags			Expenses
// @Accept			json
// @Success		201
// @Failure		400	{object}	mason.Error
// @Failure		404	{object}	mason.Error
// @Failure		409	{object}	mason.Error
// @Failure		415	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Param			budget		path	string	true	"Name of the budget"
// @Router			/api/users/{username}/budgets/{budget} [post]
func CreateExpense(c *gin.Context) {
	user, budget, err := resolveBudget(c)
	if err != nil {
		renderErr(c, err)
		return
	}

	body, err := bindValidated(c, schema.Expense())
	if err != nil {
		renderErr(c, err)
		return
	}

	expense, err := expenseFromBody(budget, body)
	if err != nil {
		renderErr(c, err)
		return
	}

	err = models.DB.Create(&expense).Error
	if err != nil {
		renderErr(c, err)
		return
	}

	c.Header("Location", routes.ExpenseItem(user.Name, budget.Name, expense.Name))
	c.Status(http.StatusCreated)
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Param			budget		path	string	true	"Name of the budget"
// @Param			expense		path	string	true	"Name of the expense"
// @Router			/api/users/{username}/budgets/{budget}/{expense} [get]
func GetExpense(c *gin.Context) {
	user, budget, expense, err := resolveExpense(c)
	if err != nil {
		renderErr(c, err)
		return
	}

	render(c, http.StatusOK, expenseDocument(user, budget, expense))
}

// @Summary		Update expense
// @Description	Replaces all fields of an existing expense
// @Tags			Expenses
// @Accept			json
// @Success		204
// @Failure		400	{object}	mason.Error
// @Failure		404	{object}	mason.Error
// @Failure		409	{object}	mason.Error
// @Failure		415	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Param			budget		path	string	true	"Name of the budget"
// @Param			expense		path	string	true	"Name of the expense"
// @Router			/api/users/{username}/budgets/{budget}/{expense} [put]
func UpdateExpense(c *gin.Context) {
	_, budget, expense, err := resolveExpense(c)
	if err != nil {
		renderErr(c, err)
		return
	}

	body, err := bindValidated(c, schema.Expense())
	if err != nil {
		renderErr(c, err)
		return
	}

	replacement, err := expenseFromBody(budget, body)
	if err != nil {
		renderErr(c, err)
		return
	}

	// Full replacement, not a partial patch
	expense.Name = replacement.Name
	expense.Description = replacement.Description
	expense.Amount = replacement.Amount
	expense.Date = replacement.Date

	err = models.DB.Save(&expense).Error
	if err != nil {
		renderErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Param			budget		path	string	true	"Name of the budget"
// @Param			expense		path	string	true	"Name of the expense"
// @Router			/api/users/{username}/budgets/{budget}/{expense} [delete]
func DeleteExpense(c *gin.Context) {
	_, _, expense, err := resolveExpense(c)
	if err != nil {
		renderErr(c, err)
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		renderErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
