package controllers_test

import (
	"net/http"

	"github.com/budtrack/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetEntry() {
	recorder := test.Request(suite.T(), http.MethodGet, "/api/", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	suite.Assert().Equal("application/vnd.mason+json", recorder.Header().Get("Content-Type"))

	var doc struct {
		Namespaces map[string]namespace `json:"@namespaces"`
		Controls   map[string]control   `json:"@controls"`
	}
	test.DecodeResponse(suite.T(), &recorder, &doc)

	suite.Assert().Equal("/budtrack/link-relations/", doc.Namespaces["budtrack"].Name)
	suite.Assert().Equal("/api/users/", doc.Controls["budtrack:users-all"].Href)
}

func (suite *TestSuiteStandard) TestOptionsEntry() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/api/", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetLinkRelations() {
	recorder := test.Request(suite.T(), http.MethodGet, "/budtrack/link-relations/", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var relations map[string]string
	test.DecodeResponse(suite.T(), &recorder, &relations)
	suite.Assert().Contains(relations, "add-user")
	suite.Assert().Contains(relations, "budget-by")
}

func (suite *TestSuiteStandard) TestGetProfile() {
	for _, kind := range []string{"user", "budget", "expense", "error"} {
		recorder := test.Request(suite.T(), http.MethodGet, "/profiles/"+kind+"/", "")
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	}
}

func (suite *TestSuiteStandard) TestGetProfileNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/profiles/starship/", "")
	suite.assertError(&recorder, http.StatusNotFound, "Not found")
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	recorder := test.Request(suite.T(), http.MethodDelete, "/api/", "")
	test.AssertHTTPStatus(suite.T(), http.StatusMethodNotAllowed, &recorder)
}
