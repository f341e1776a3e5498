package router

import (
	"askmate/internal/data"
	"askmate/internal/handlers"
	"askmate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *data.Store) {
	r.Use(middleware.LoadUser(store))

	// Handlers
	authHandler := handlers.NewAuthHandler(store)
	questionHandler := handlers.NewQuestionHandler(store)
	answerHandler := handlers.NewAnswerHandler(store)
	commentHandler := handlers.NewCommentHandler(store)
	voteHandler := handlers.NewVoteHandler(store)
	userHandler := handlers.NewUserHandler(store)

	// Public routes
	r.GET("/", questionHandler.Index)              // five most recent questions
	r.GET("/list", questionHandler.List)           // all questions, sortable
	r.GET("/search", questionHandler.Search)       // free-text search
	r.GET("/question/:id", questionHandler.Detail) // question + answers + comments

	r.GET("/registration", authHandler.ShowRegister)
	r.POST("/registration", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/add-question", questionHandler.ShowCreate)
		authorized.POST("/add-question", questionHandler.Create)
		authorized.GET("/question/:id/edit", questionHandler.ShowEdit)
		authorized.POST("/question/:id/edit", questionHandler.Update)
		authorized.POST("/question/:id/delete", questionHandler.Delete)

		authorized.POST("/question/:id/new-answer", answerHandler.Create)
		authorized.GET("/answer/:id/edit", answerHandler.ShowEdit)
		authorized.POST("/answer/:id/edit", answerHandler.Update)
		authorized.POST("/answer/:id/delete", answerHandler.Delete)

		authorized.POST("/question/:id/new-comment", commentHandler.CreateOnQuestion)
		authorized.POST("/answer/:id/new-comment", commentHandler.CreateOnAnswer)
		authorized.GET("/comment/:id/edit", commentHandler.ShowEdit)
		authorized.POST("/comment/:id/edit", commentHandler.Update)
		authorized.POST("/comment/:id/delete", commentHandler.Delete)

		authorized.POST("/vote/:table/:id/:direction", voteHandler.Vote)

		authorized.GET("/users", userHandler.List)
	}
}
