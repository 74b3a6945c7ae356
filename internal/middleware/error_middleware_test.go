package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/educonnect/backend/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"resource not found", apperrors.ErrCourseNotFound, 404},
		{"generic not found", apperrors.ErrResourceNotFound, 404},
		{"reference not found", apperrors.NewReferenceNotFoundError("referenced course 42 does not exist"), 400},
		{"validation failure", apperrors.NewValidationError("course name cannot be empty"), 400},
		{"modality change attempt", apperrors.ErrModalityImmutable, 400},
		{"resource in use", apperrors.NewCustomError(apperrors.ErrResourceInUse, "course is referenced by students"), 409},
		{"duplicate resource", apperrors.NewCustomError(apperrors.ErrDuplicateResource, "course code already exists"), 409},
		{"unexpected error", assert.AnError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
