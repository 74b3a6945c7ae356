package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/backend/internal/app/models/dto"
	"github.com/educonnect/backend/internal/app/services"
	"github.com/educonnect/backend/internal/middleware"
)

// InstructorController handles instructor-related operations
type InstructorController struct {
	instructorService *services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService *services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// GetAllInstructors retrieves all instructors
// @Summary Get all instructors
// @Description Retrieves a list of all instructors
// @Tags instructors
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Instructor} "Instructors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	instructors, err := c.instructorService.GetAllInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      instructors,
		Timestamp: time.Now(),
	})
}

// GetInstructorByID retrieves an instructor by ID
// @Summary Get instructor by ID
// @Description Retrieves a specific instructor by their ID
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=models.Instructor} "Instructor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [get]
func (c *InstructorController) GetInstructorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	instructor, err := c.instructorService.GetInstructorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// CreateInstructor handles instructor creation
// @Summary Create a new instructor
// @Description Creates a new instructor with the provided information
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body dto.SaveInstructorRequest true "Instructor information"
// @Success 201 {object} dto.APIResponse{data=models.Instructor} "Instructor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.SaveInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	instructor, err := c.instructorService.SaveInstructor(ctx, 0, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// UpdateInstructor updates an existing instructor
// @Summary Update an instructor
// @Description Updates an existing instructor with the provided information
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Param request body dto.SaveInstructorRequest true "Updated instructor information"
// @Success 200 {object} dto.APIResponse{data=models.Instructor} "Instructor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [put]
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	var req dto.SaveInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	instructor, err := c.instructorService.SaveInstructor(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// DeleteInstructor deletes an instructor
// @Summary Delete an instructor
// @Description Deletes an existing instructor by their ID
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Instructor deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 409 {object} dto.ErrorResponse "Instructor is referenced by sections"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	if err := c.instructorService.DeleteInstructor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Instructor deleted successfully"},
		Timestamp: time.Now(),
	})
}
