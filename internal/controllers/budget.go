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

// RegisterBudgetRoutes registers the routes for budgets with
// the users RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Budget collection of a user
	{
		r.OPTIONS("/:username/budgets", OptionsBudgetCollection)
		r.GET("/:username/budgets", GetBudgets)
		r.POST("/:username/budgets", CreateBudget)
	}

	// Budget with name. POST creates an expense for the budget.
	{
		r.OPTIONS("/:username/budgets/:budget", OptionsBudgetItem)
		r.GET("/:username/budgets/:budget", GetBudget)
		r.POST("/:username/budgets/:budget", CreateExpense)
		r.PUT("/:username/budgets/:budget", UpdateBudget)
		r.DELETE("/:username/budgets/:budget", DeleteBudget)
	}
}

// resolveBudget resolves the user and budget from the request path, left to
// right. The first missing ancestor determines the error.
func resolveBudget(c *gin.Context) (models.User, models.Budget, error) {
	user, err := models.UserByName(models.DB, c.Param("username"))
	if err != nil {
		return models.User{}, models.Budget{}, err
	}

	budget, err := models.BudgetOfUser(models.DB, user, c.Param("budget"))
	if err != nil {
		return models.User{}, models.Budget{}, err
	}

	return user, budget, nil
}

// setBudgetFields sets the budget's own fields on the document.
func setBudgetFields(doc *mason.Document, budget models.Budget) {
	doc.Set("budget_name", budget.Name)
	doc.Set("budget_description", budget.Description)
	doc.Set("budget_amount", budget.Amount)
	doc.Set("currency_type", budget.Currency)
	doc.Set("start_date", budget.StartDate)
	doc.Set("end_date", budget.EndDate)
}

// budgetItem builds the sub-document for a budget in the collection.
func budgetItem(user models.User, budget models.Budget) *mason.Document {
	doc := mason.New()
	setBudgetFields(doc, budget)
	doc.AddControl("self", mason.Control{Href: routes.BudgetItem(user.Name, budget.Name)})
	doc.AddControl("profile", mason.Control{Href: routes.Profile("budget")})

	return doc
}

// budgetDocument builds the full document for a single budget, including
// its expenses as embedded items.
func budgetDocument(user models.User, budget models.Budget, expenses []models.Expense) *mason.Document {
	self := routes.BudgetItem(user.Name, budget.Name)

	doc := budgetItem(user, budget)
	doc.AddNamespace(routes.Namespace, routes.LinkRelations())
	doc.AddControl("budtrack:author", mason.Control{
		Href:  routes.UserItem(user.Name),
		Title: "The user owning this budget",
	})
	doc.AddControl("budtrack:user-all", mason.Control{
		Href:  routes.UserCollection(),
		Title: "All users",
	})
	doc.AddControl("edit", mason.Control{
		Href:     self,
		Method:   http.MethodPut,
		Encoding: "json",
		Title:    "Edit this budget",
		Schema:   schema.Budget(),
	})
	doc.AddControl("budtrack:delete", mason.Control{
		Href:   self,
		Method: http.MethodDelete,
		Title:  "Delete this budget",
	})
	doc.AddControl("budtrack:budget-by", mason.Control{
		Href:  routes.BudgetCollection(user.Name),
		Title: "Budgets of this user",
	})
	doc.AddControl("budtrack:add-expense", mason.Control{
		Href:     self,
		Method:   http.MethodPost,
		Encoding: "json",
		Title:    "Create a new expense for this budget",
		Schema:   schema.Expense(),
	})

	items := make([]*mason.Document, 0, len(expenses))
	for _, expense := range expenses {
		items = append(items, expenseItem(user, budget, expense))
	}
	doc.Set("items", items)

	return doc
}

// budgetFromBody constructs a budget from a schema-validated body. Dates
// are parsed strictly even though the schema pattern is more lenient.
func budgetFromBody(user models.User, body map[string]any) (models.Budget, error) {
	startDate, err := types.ParseDate(body["start_date"].(string))
	if err != nil {
		return models.Budget{}, err
	}

	endDate, err := types.ParseDate(body["end_date"].(string))
	if err != nil {
		return models.Budget{}, err
	}

	return models.Budget{
		UserID:      user.ID,
		Name:        body["budget_name"].(string),
		Description: optString(body, "budget_description"),
		Amount:      decimal.NewFromFloat(body["budget_amount"].(float64)),
		StartDate:   startDate,
		EndDate:     endDate,
		Currency:    optString(body, "currency_type"),
	}, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Router			/api/users/{username}/budgets [options]
func OptionsBudgetCollection(c *gin.Context) {
	_, err := models.UserByName(models.DB, c.Param("username"))
	if err != nil {
		renderErr(c, err)
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Param			budget		path	string	true	"Name of the budget"
// @Router			/api/users/{username}/budgets/{budget} [options]
func OptionsBudgetItem(c *gin.Context) {
	_, _, err := resolveBudget(c)
	if err != nil {
		renderErr(c, err)
		return
	}

	httputil.OptionsGetPostPutDelete(c)
}

// @Summary		List budgets
// @Description	Returns the collection of budgets owned by a user
// @Tags			Budgets
// @Produce		json
// @Success		200
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Router			/api/users/{username}/budgets [get]
func GetBudgets(c *gin.Context) {
	user, err := models.UserByName(models.DB, c.Param("username"))
	if err != nil {
		renderErr(c, err)
		return
	}

	budgets, err := models.BudgetsOfUser(models.DB, user)
	if err != nil {
		renderErr(c, err)
		return
	}

	doc := mason.New()
	doc.AddNamespace(routes.Namespace, routes.LinkRelations())
	doc.AddControl("self", mason.Control{Href: routes.BudgetCollection(user.Name)})
	doc.AddControl("budtrack:add-budget", mason.Control{
		Href:     routes.BudgetCollection(user.Name),
		Method:   http.MethodPost,
		Encoding: "json",
		Title:    "Create a new budget for this user",
		Schema:   schema.Budget(),
	})

	items := make([]*mason.Document, 0, len(budgets))
	for _, budget := range budgets {
		items = append(items, budgetItem(user, budget))
	}
	doc.Set("items", items)

	render(c, http.StatusOK, doc)
}

// @Summary		Create budget
// @Description	Creates a new budget for a user
// @Tags			Budgets
// @Accept			json
// @Success		201
// @Failure		400	{object}	mason.Error
// @Failure		404	{object}	mason.Error
// @Failure		409	{object}	mason.Error
// @Failure		415	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Router			/api/users/{username}/budgets [post]
func CreateBudget(c *gin.Context) {
	user, err := models.UserByName(models.DB, c.Param("username"))
	if err != nil {
		renderErr(c, err)
		return
	}

	body, err := bindValidated(c, schema.Budget())
	if err != nil {
		renderErr(c, err)
		return
	}

	budget, err := budgetFromBody(user, body)
	if err != nil {
		renderErr(c, err)
		return
	}

	err = models.DB.Create(&budget).Error
	if err != nil {
		renderErr(c, err)
		return
	}

	c.Header("Location", routes.BudgetItem(user.Name, budget.Name))
	c.Status(http.StatusCreated)
}

// @Summary		Get budget
// @Description	Returns a specific budget with its expenses
// @Tags			Budgets
// @Produce		json
// @Success		200
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Param			budget		path	string	true	"Name of the budget"
// @Router			/api/users/{username}/budgets/{budget} [get]
func GetBudget(c *gin.Context) {
	user, budget, err := resolveBudget(c)
	if err != nil {
		renderErr(c, err)
		return
	}

	expenses, err := models.ExpensesOfBudget(models.DB, budget)
	if err != nil {
		renderErr(c, err)
		return
	}

	render(c, http.StatusOK, budgetDocument(user, budget, expenses))
}

// @Summary		Update budget
// @Description	Replaces all fields of an existing budget
// @Tags			Budgets
// @Accept			json
// @Success		204
// @Failure		400	{object}	mason.Error
// @Failure		404	{object}	mason.Error
// @Failure		409	{object}	mason.Error
// @Failure		415	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Param			budget		path	string	true	"Name of the budget"
// @Router			/api/users/{username}/budgets/{budget} [put]
func UpdateBudget(c *gin.Context) {
	user, budget, err := resolveBudget(c)
	if err != nil {
		renderErr(c, err)
		return
	}

	body, err := bindValidated(c, schema.Budget())
	if err != nil {
		renderErr(c, err)
		return
	}

	replacement, err := budgetFromBody(user, body)
	if err != nil {
		renderErr(c, err)
		return
	}

	// Full replacement, not a partial patch
	budget.Name = replacement.Name
	budget.Description = replacement.Description
	budget.Amount = replacement.Amount
	budget.StartDate = replacement.StartDate
	budget.EndDate = replacement.EndDate
	budget.Currency = replacement.Currency

	err = models.DB.Save(&budget).Error
	if err != nil {
		renderErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Delete budget
// @Description	Deletes a budget and all expenses booked against it
// @Tags			Budgets
// @Success		204
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Param			budget		path	string	true	"Name of the budget"
// @Router			/api/users/{username}/budgets/{budget} [delete]
func DeleteBudget(c *gin.Context) {
	_, budget, err := resolveBudget(c)
	if err != nil {
		renderErr(c, err)
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		renderErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
