package controllers

import (
	"net/http"

	"github.com/budtrack/backend/internal/httputil"
	"github.com/budtrack/backend/internal/mason"
	"github.com/budtrack/backend/internal/models"
	"github.com/budtrack/backend/internal/routes"
	"github.com/budtrack/backend/internal/schema"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("/", OptionsUserCollection)
		r.GET("/", GetUsers)
		r.POST("/", CreateUser)
	}

	// User with name
	{
		r.OPTIONS("/:username/", OptionsUserItem)
		r.GET("/:username/", GetUser)
		r.PUT("/:username/", UpdateUser)
		r.DELETE("/:username/", DeleteUser)
	}
}

// userItem builds the sub-document for a user in the collection.
func userItem(user models.User) *mason.Document {
	doc := mason.New()
	doc.Set("user_name", user.Name)
	doc.Set("user_email", user.Email)
	doc.Set("password", user.Password)
	doc.AddControl("self", mason.Control{Href: routes.UserItem(user.Name)})
	doc.AddControl("profile", mason.Control{Href: routes.Profile("user")})

	return doc
}

// userDocument builds the full document for a single user.
func userDocument(user models.User) *mason.Document {
	self := routes.UserItem(user.Name)

	doc := userItem(user)
	doc.AddNamespace(routes.Namespace, routes.LinkRelations())
	doc.AddControl("collection", mason.Control{Href: routes.UserCollection()})
	doc.AddControl("edit", mason.Control{
		Href:     self,
		Method:   http.MethodPut,
		Encoding: "json",
		Title:    "Edit this user",
		Schema:   schema.User(),
	})
	doc.AddControl("budtrack:delete", mason.Control{
		Href:   self,
		Method: http.MethodDelete,
		Title:  "Delete this user",
	})
	doc.AddControl("budtrack:budget-by", mason.Control{
		Href:  routes.BudgetCollection(user.Name),
		Title: "Budgets of this user",
	})

	return doc
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/api/users [options]
func OptionsUserCollection(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Router			/api/users/{username} [options]
func OptionsUserItem(c *gin.Context) {
	_, err := models.UserByName(models.DB, c.Param("username"))
	if err != nil {
		renderErr(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List users
// @Description	Returns the collection of all users
// @Tags			Users
// @Produce		json
// @Success		200
// @Router			/api/users [get]
func GetUsers(c *gin.Context) {
	var users []models.User
	err := models.DB.Order("name ASC").Find(&users).Error
	if err != nil {
		renderErr(c, err)
		return
	}

	doc := mason.New()
	doc.AddNamespace(routes.Namespace, routes.LinkRelations())
	doc.AddControl("self", mason.Control{Href: routes.UserCollection()})
	doc.AddControl("budtrack:add-user", mason.Control{
		Href:     routes.UserCollection(),
		Method:   http.MethodPost,
		Encoding: "json",
		Title:    "Create a new user",
		Schema:   schema.User(),
	})

	items := make([]*mason.Document, 0, len(users))
	for _, user := range users {
		items = append(items, userItem(user))
	}
	doc.Set("items", items)

	render(c, http.StatusOK, doc)
}

// @Summary		Create user
// @Description	Creates a new user
// @Tags			Users
// @Accept			json
// @Success		201
// @Failure		400	{object}	mason.Error
// @Failure		409	{object}	mason.Error
// @Failure		415	{object}	mason.Error
// @Router			/api/users [post]
func CreateUser(c *gin.Context) {
	body, err := bindValidated(c, schema.User())
	if err != nil {
		renderErr(c, err)
		return
	}

	user := models.User{
		Name:     body["user_name"].(string),
		Email:    body["user_email"].(string),
		Password: body["password"].(string),
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		renderErr(c, err)
		return
	}

	c.Header("Location", routes.UserItem(user.Name))
	c.Status(http.StatusCreated)
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Produce		json
// @Success		200
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Router			/api/users/{username} [get]
func GetUser(c *gin.Context) {
	user, err := models.UserByName(models.DB, c.Param("username"))
	if err != nil {
		renderErr(c, err)
		return
	}

	render(c, http.StatusOK, userDocument(user))
}

// @Summary		Update user
// @Description	Replaces all fields of an existing user
// @Tags			Users
// @Accept			json
// @Success		204
// @Failure		400	{object}	mason.Error
// @Failure		404	{object}	mason.Error
// @Failure		409	{object}	mason.Error
// @Failure		415	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Router			/api/users/{username} [put]
func UpdateUser(c *gin.Context) {
	user, err := models.UserByName(models.DB, c.Param("username"))
	if err != nil {
		renderErr(c, err)
		return
	}

	body, err := bindValidated(c, schema.User())
	if err != nil {
		renderErr(c, err)
		return
	}

	// Full replacement, not a partial patch
	user.Name = body["user_name"].(string)
	user.Email = body["user_email"].(string)
	user.Password = body["password"].(string)

	err = models.DB.Save(&user).Error
	if err != nil {
		renderErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Delete user
// @Description	Deletes a user and, transitively, all budgets and expenses of the user
// @Tags			Users
// @Success		204
// @Failure		404	{object}	mason.Error
// @Param			username	path	string	true	"Name of the user"
// @Router			/api/users/{username} [delete]
func DeleteUser(c *gin.Context) {
	user, err := models.UserByName(models.DB, c.Param("username"))
	if err != nil {
		renderErr(c, err)
		return
	}

	err = models.DB.Delete(&user).Error
	if err != nil {
		renderErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
