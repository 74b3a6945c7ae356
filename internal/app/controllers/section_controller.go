package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/backend/internal/app/models/dto"
	"github.com/educonnect/backend/internal/app/services"
	"github.com/educonnect/backend/internal/middleware"
)

// SectionController handles section-related operations
type SectionController struct {
	sectionService *services.SectionService
}

// NewSectionController creates a new SectionController
func NewSectionController(sectionService *services.SectionService) *SectionController {
	return &SectionController{
		sectionService: sectionService,
	}
}

// GetAllSections retrieves all sections
// @Summary Get all sections
// @Description Retrieves a list of all sections with instructor, course and roster
// @Tags sections
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Section} "Sections retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [get]
func (c *SectionController) GetAllSections(ctx *gin.Context) {
	sections, err := c.sectionService.GetAllSections(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sections,
		Timestamp: time.Now(),
	})
}

// GetSectionByID retrieves a section by ID
// @Summary Get section by ID
// @Description Retrieves a specific section by its ID
// @Tags sections
// @Accept json
// @Produce json
// @Param id path int true "Section ID"
// @Success 200 {object} dto.APIResponse{data=models.Section} "Section retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{id} [get]
func (c *SectionController) GetSectionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Section")
	if !ok {
		return
	}

	section, err := c.sectionService.GetSectionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// CreateSection handles section creation
// @Summary Create a new section
// @Description Creates a new section. Instructor and course references are both required and resolved by id before anything is persisted; a missing or unresolvable reference rejects the whole write.
// @Tags sections
// @Accept json
// @Produce json
// @Param request body dto.SaveSectionRequest true "Section information"
// @Success 201 {object} dto.APIResponse{data=models.Section} "Section created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unresolvable reference"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [post]
func (c *SectionController) CreateSection(ctx *gin.Context) {
	var req dto.SaveSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	section, err := c.sectionService.SaveSection(ctx, 0, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// UpdateSection updates an existing section
// @Summary Update a section
// @Description Updates an existing section through the same resolve-then-save path as creation
// @Tags sections
// @Accept json
// @Produce json
// @Param id path int true "Section ID"
// @Param request body dto.SaveSectionRequest true "Updated section information"
// @Success 200 {object} dto.APIResponse{data=models.Section} "Section updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unresolvable reference"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{id} [put]
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Section")
	if !ok {
		return
	}

	var req dto.SaveSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	section, err := c.sectionService.SaveSection(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// DeleteSection deletes a section
// @Summary Delete a section
// @Description Deletes an existing section by its ID. Roster entries are removed with it; students are untouched.
// @Tags sections
// @Accept json
// @Produce json
// @Param id path int true "Section ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Section deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{id} [delete]
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Section")
	if !ok {
		return
	}

	if err := c.sectionService.DeleteSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Section deleted successfully"},
		Timestamp: time.Now(),
	})
}
