package controllers

import (
	"net/http"

	"github.com/budtrack/backend/internal/httputil"
	"github.com/budtrack/backend/internal/mason"
	"github.com/budtrack/backend/internal/routes"
	"github.com/gin-gonic/gin"
)

// @Summary		API entry point
// @Description	Hypermedia entry point, linking to all top level collections
// @Tags			General
// @Produce		json
// @Success		200
// @Router			/api [get]
func GetEntry(c *gin.Context) {
	doc := mason.New()
	doc.AddNamespace(routes.Namespace, routes.LinkRelations())
	doc.AddControl("budtrack:users-all", mason.Control{
		Href:  routes.UserCollection(),
		Title: "All users",
	})

	render(c, http.StatusOK, doc)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api [options]
func OptionsEntry(c *gin.Context) {
	httputil.OptionsGet(c)
}

// linkRelations describes the custom link relations of the budtrack
// namespace. Served so that namespace hrefs in responses resolve.
var linkRelations = map[string]string{
	"users-all":   "A collection of all users",
	"add-user":    "Create a new user",
	"add-budget":  "Create a new budget for the user",
	"add-expense": "Create a new expense for the budget",
	"budget-by":   "The budgets owned by the user",
	"author":      "The user owning this resource",
	"user-all":    "The collection of all users",
	"delete":      "Delete this resource",
}

// @Summary		Link relations
// @Description	Describes the custom link relations used in the budtrack namespace
// @Tags			General
// @Produce		json
// @Success		200
// @Router			/budtrack/link-relations [get]
func GetLinkRelations(c *gin.Context) {
	c.JSON(http.StatusOK, linkRelations)
}

// profiles holds a short description for every resource profile.
var profiles = map[string]string{
	"user":    "A user owning budgets",
	"budget":  "A spending plan of a user for a period of time",
	"expense": "A single expense booked against a budget",
	"error":   "An error response",
}

// @Summary		Resource profile
// @Description	Returns the profile for a resource kind
// @Tags			General
// @Produce		json
// @Success		200
// @Failure		404
// @Param			kind	path	string	true	"Resource kind"
// @Router			/profiles/{kind} [get]
func GetProfile(c *gin.Context) {
	kind := c.Param("kind")

	description, ok := profiles[kind]
	if !ok {
		renderError(c, http.StatusNotFound, title(http.StatusNotFound), "there is no profile for "+kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resource": kind, "description": description})
}
