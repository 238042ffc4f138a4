package controllers_test

import (
	"net/http"

	"github.com/budtrack/backend/internal/models"
	"github.com/budtrack/backend/internal/test"
	"github.com/shopspring/decimal"
)

// budgetDocument mirrors the wire format of a budget resource.
type budgetDocument struct {
	Name        string               `json:"budget_name"`
	Description string               `json:"budget_description"`
	Amount      float64              `json:"budget_amount"`
	Currency    string               `json:"currency_type"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Namespaces  map[string]namespace `json:"@namespaces"`
	Controls    map[string]control   `json:"@controls"`
	Items       []expenseDocument    `json:"items"`
}

// budgetCollection mirrors the wire format of the budget collection.
type budgetCollection struct {
	Namespaces map[string]namespace `json:"@namespaces"`
	Controls   map[string]control   `json:"@controls"`
	Items      []budgetDocument     `json:"items"`
}

func validBudgetBody() map[string]any {
	return map[string]any{
		"budget_name":        "Oulu-4",
		"budget_description": "Living costs in Oulu for April",
		"budget_amount":      150,
		"currency_type":      "EUR",
		"start_date":         "2022-04-01",
		"end_date":           "2022-04-30",
	}
}

func (suite *TestSuiteStandard) TestOptionsBudgetCollection() {
	_ = suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	recorder := test.Request(suite.T(), http.MethodOptions, "/api/users/alice/budgets", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsBudgetCollectionUserNotFound() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/api/users/nobody/budgets", "")
	suite.assertError(&recorder, http.StatusNotFound, "Not found")
}

func (suite *TestSuiteStandard) TestOptionsBudgetItem() {
	user := suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, Name: "Oulu-4"})

	recorder := test.Request(suite.T(), http.MethodOptions, "/api/users/alice/budgets/Oulu-4", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	suite.Assert().Equal("OPTIONS, GET, POST, PUT, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetBudgetsEmpty() {
	_ = suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	recorder := test.Request(suite.T(), http.MethodGet, "/api/users/alice/budgets", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var doc budgetCollection
	test.DecodeResponse(suite.T(), &recorder, &doc)

	suite.Assert().Len(doc.Items, 0)
	suite.Assert().Equal("/api/users/alice/budgets", doc.Controls["self"].Href)

	addBudget := doc.Controls["budtrack:add-budget"]
	suite.Assert().Equal("/api/users/alice/budgets", addBudget.Href)
	suite.Assert().Equal(http.MethodPost, addBudget.Method)
	suite.Require().NotNil(addBudget.Schema)
	suite.Assert().Equal([]string{"budget_name", "budget_amount", "start_date", "end_date"}, addBudget.Schema.Required)
}

func (suite *TestSuiteStandard) TestGetBudgetsUserNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/api/users/nobody/budgets", "")
	suite.assertError(&recorder, http.StatusNotFound, "Not found")
}

func (suite *TestSuiteStandard) TestCreateBudget() {
	_ = suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	recorder := test.Request(suite.T(), http.MethodPost, "/api/users/alice/budgets", validBudgetBody())
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
	suite.Assert().Equal("/api/users/alice/budgets/Oulu-4", recorder.Header().Get("Location"))

	recorder = test.Request(suite.T(), http.MethodGet, recorder.Header().Get("Location"), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var doc budgetDocument
	test.DecodeResponse(suite.T(), &recorder, &doc)
	suite.Assert().Equal("Oulu-4", doc.Name)
	suite.Assert().Equal(float64(150), doc.Amount)
	suite.Assert().Equal("EUR", doc.Currency)
	suite.Assert().Equal("2022-04-01", doc.StartDate)
	suite.Assert().Equal("2022-04-30", doc.EndDate)
}

func (suite *TestSuiteStandard) TestCreateBudgetWithoutOptionalFields() {
	_ = suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	recorder := test.Request(suite.T(), http.MethodPost, "/api/users/alice/budgets", map[string]any{
		"budget_name":   "Oulu-4",
		"budget_amount": 150,
		"start_date":    "2022-04-01",
		"end_date":      "2022-04-30",
	})

	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
}

func (suite *TestSuiteStandard) TestCreateBudgetUserNotFound() {
	recorder := test.Request(suite.T(), http.MethodPost, "/api/users/nobody/budgets", validBudgetBody())
	suite.assertError(&recorder, http.StatusNotFound, "Not found")
}

// A 404 for the user takes precedence over a 415 for the body.
func (suite *TestSuiteStandard) TestCreateBudgetUserNotFoundBeforeMediaType() {
	recorder := test.Request(suite.T(), http.MethodPost, "/api/users/nobody/budgets", "plain",
		map[string]string{"Content-Type": "text/plain"})

	suite.assertError(&recorder, http.StatusNotFound, "Not found")
}

func (suite *TestSuiteStandard) TestCreateBudgetWrongContentType() {
	_ = suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	recorder := test.Request(suite.T(), http.MethodPost, "/api/users/alice/budgets", "plain",
		map[string]string{"Content-Type": "text/plain"})

	suite.assertError(&recorder, http.StatusUnsupportedMediaType, "Unsupported media type")
}

func (suite *TestSuiteStandard) TestCreateBudgetMissingField() {
	_ = suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	body := validBudgetBody()
	delete(body, "start_date")

	recorder := test.Request(suite.T(), http.MethodPost, "/api/users/alice/budgets", body)
	suite.assertError(&recorder, http.StatusBadRequest, "Invalid request body")
}

// "2018-19-39" matches the advertised pattern but is not a real date. The
// strict parsing rejects it.
func (suite *TestSuiteStandard) TestCreateBudgetImpossibleDate() {
	_ = suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	body := validBudgetBody()
	body["start_date"] = "2018-19-39"

	recorder := test.Request(suite.T(), http.MethodPost, "/api/users/alice/budgets", body)
	suite.assertError(&recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *TestSuiteStandard) TestCreateBudgetDuplicate() {
	user := suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, Name: "Oulu-4"})

	recorder := test.Request(suite.T(), http.MethodPost, "/api/users/alice/budgets", validBudgetBody())
	suite.assertError(&recorder, http.StatusConflict, "Already exists")
}

func (suite *TestSuiteStandard) TestGetBudget() {
	user := suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})
	budget := suite.createTestBudget(models.Budget{
		UserID:   user.ID,
		Name:     "Oulu-4",
		Amount:   decimal.NewFromFloat(150),
		Currency: "EUR",
	})
	_ = suite.createTestExpense(models.Expense{BudgetID: budget.ID, Name: "groceries", Description: "Weekly groceries"})

	recorder := test.Request(suite.T(), http.MethodGet, "/api/users/alice/budgets/Oulu-4", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var doc budgetDocument
	test.DecodeResponse(suite.T(), &recorder, &doc)

	suite.Assert().Equal("Oulu-4", doc.Name)
	suite.Assert().Equal(float64(150), doc.Amount)
	suite.Assert().Equal("/budtrack/link-relations/", doc.Namespaces["budtrack"].Name)

	suite.Assert().Equal("/api/users/alice/budgets/Oulu-4", doc.Controls["self"].Href)
	suite.Assert().Equal("/profiles/budget/", doc.Controls["profile"].Href)
	suite.Assert().Equal("/api/users/alice/", doc.Controls["budtrack:author"].Href)
	suite.Assert().Equal("/api/users/", doc.Controls["budtrack:user-all"].Href)
	suite.Assert().Equal("/api/users/alice/budgets", doc.Controls["budtrack:budget-by"].Href)

	addExpense := doc.Controls["budtrack:add-expense"]
	suite.Assert().Equal("/api/users/alice/budgets/Oulu-4", addExpense.Href)
	suite.Assert().Equal(http.MethodPost, addExpense.Method)
	suite.Require().NotNil(addExpense.Schema)

	suite.Require().Len(doc.Items, 1)
	suite.Assert().Equal("groceries", doc.Items[0].Name)
	suite.Assert().Equal("/api/users/alice/budgets/Oulu-4/groceries", doc.Items[0].Controls["self"].Href)
}

func (suite *TestSuiteStandard) TestGetBudgetNotFound() {
	_ = suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	recorder := test.Request(suite.T(), http.MethodGet, "/api/users/alice/budgets/Oulu-4", "")
	suite.assertError(&recorder, http.StatusNotFound, "Not found")
}

// When user and budget are both missing, the 404 names the user.
func (suite *TestSuiteStandard) TestGetBudgetAncestorOrdering() {
	recorder := test.Request(suite.T(), http.MethodGet, "/api/users/nobody/budgets/Oulu-4", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	var doc errorDocument
	test.DecodeResponse(suite.T(), &recorder, &doc)
	suite.Assert().Equal([]string{"there is no user matching your query"}, doc.Error.Messages)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	user := suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, Name: "Oulu-4", Amount: decimal.NewFromFloat(150)})

	body := validBudgetBody()
	body["budget_name"] = "Oulu-5"
	body["budget_amount"] = 180

	recorder := test.Request(suite.T(), http.MethodPut, "/api/users/alice/budgets/Oulu-4", body)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, "/api/users/alice/budgets/Oulu-4", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, "/api/users/alice/budgets/Oulu-5", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var doc budgetDocument
	test.DecodeResponse(suite.T(), &recorder, &doc)
	suite.Assert().Equal(float64(180), doc.Amount)
}

func (suite *TestSuiteStandard) TestUpdateBudgetMissingField() {
	user := suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, Name: "Oulu-4"})

	body := validBudgetBody()
	delete(body, "start_date")

	recorder := test.Request(suite.T(), http.MethodPut, "/api/users/alice/budgets/Oulu-4", body)
	suite.assertError(&recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *TestSuiteStandard) TestUpdateBudgetRenameConflict() {
	user := suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, Name: "Oulu-4"})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, Name: "Oulu-5"})

	body := validBudgetBody()
	body["budget_name"] = "Oulu-5"

	recorder := test.Request(suite.T(), http.MethodPut, "/api/users/alice/budgets/Oulu-4", body)
	suite.assertError(&recorder, http.StatusConflict, "Already exists")
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	user := suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})
	budget := suite.createTestBudget(models.Budget{UserID: user.ID, Name: "Oulu-4"})
	_ = suite.createTestExpense(models.Expense{BudgetID: budget.ID, Name: "groceries"})

	recorder := test.Request(suite.T(), http.MethodDelete, "/api/users/alice/budgets/Oulu-4", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	// Deleting again answers 404
	recorder = test.Request(suite.T(), http.MethodDelete, "/api/users/alice/budgets/Oulu-4", "")
	suite.assertError(&recorder, http.StatusNotFound, "Not found")

	// The expenses went with the budget
	var expenses int64
	models.DB.Model(&models.Expense{}).Count(&expenses)
	suite.Assert().Equal(int64(0), expenses)
}
