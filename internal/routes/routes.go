package routes

import (
	"github.com/gin-gonic/gin"

	"teamboard/internal/handlers"
	"teamboard/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	roleHandler *handlers.RoleHandler,
	subTaskHandler *handlers.SubTaskHandler,
	progressHandler *handlers.ProgressHandler,
	evaluationHandler *handlers.EvaluationHandler,
	messageHandler *handlers.MessageHandler,
) *gin.Engine {

	// ---- public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/ws", messageHandler.Board)

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.GET("/", taskHandler.ListOpen)
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/:id", taskHandler.GetDetail)
		tasks.PUT("/:id", taskHandler.Edit)
		tasks.POST("/:id/finish", taskHandler.Finish)
		tasks.GET("/:id/roles", roleHandler.TaskRoles)

		tasks.POST("/:id/subtasks", subTaskHandler.Create)
		tasks.GET("/:id/subtasks", subTaskHandler.List)
		tasks.PUT("/:id/subtasks/:subtask_id", subTaskHandler.Update)
		tasks.DELETE("/:id/subtasks/:subtask_id", subTaskHandler.Delete)

		tasks.POST("/:id/progress", progressHandler.Add)
		tasks.GET("/:id/progress", progressHandler.List)
		tasks.POST("/:id/evaluations", evaluationHandler.Add)
		tasks.GET("/:id/evaluations", evaluationHandler.List)
	}

	// ROLES
	roles := r.Group("/roles")
	{
		roles.POST("/:id/claim", roleHandler.Claim)
		roles.POST("/:id/remove-member", roleHandler.RemoveMember)
	}

	// MY VIEWS
	my := r.Group("/my")
	{
		my.GET("/roles", roleHandler.MyRoles)
		my.GET("/tasks", taskHandler.MyPublishedTasks)
	}

	// USERS
	users := r.Group("/users")
	{
		users.GET("/:id", userHandler.GetByID)
	}
	r.PUT("/profile", userHandler.UpdateProfile)
	r.POST("/profile/avatar", userHandler.UploadAvatar)

	// MESSAGES
	msg := r.Group("/messages")
	{
		msg.POST("/", messageHandler.Post)
		msg.GET("/", messageHandler.List)
	}

	return r
}
