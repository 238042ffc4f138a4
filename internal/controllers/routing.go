package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all API routes with the engine.
func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.OPTIONS("/", OptionsEntry)
		api.GET("/", GetEntry)
	}

	users := api.Group("/users")
	RegisterUserRoutes(users)
	RegisterBudgetRoutes(users)
	RegisterExpenseRoutes(users)

	// Namespace and profile documents, referenced by every response
	r.GET("/budtrack/link-relations/", GetLinkRelations)
	r.GET("/profiles/:kind/", GetProfile)
}
