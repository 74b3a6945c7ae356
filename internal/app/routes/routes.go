package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/educonnect/backend/internal/app/controllers"
	"github.com/educonnect/backend/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	instructorController *controllers.InstructorController,
	studentController *controllers.StudentController,
	sectionController *controllers.SectionController,
	dashboardController *controllers.DashboardController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("/in-person", courseController.CreateInPersonCourse)
		courses.POST("/remote", courseController.CreateRemoteCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	instructors := v1.Group("/instructors")
	{
		instructors.GET("", instructorController.GetAllInstructors)
		instructors.GET("/:id", instructorController.GetInstructorByID)
		instructors.POST("", instructorController.CreateInstructor)
		instructors.PUT("/:id", instructorController.UpdateInstructor)
		instructors.DELETE("/:id", instructorController.DeleteInstructor)
	}

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	sections := v1.Group("/sections")
	{
		sections.GET("", sectionController.GetAllSections)
		sections.GET("/:id", sectionController.GetSectionByID)
		sections.POST("", sectionController.CreateSection)
		sections.PUT("/:id", sectionController.UpdateSection)
		sections.DELETE("/:id", sectionController.DeleteSection)
	}

	v1.GET("/dashboard", dashboardController.GetDashboard)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
