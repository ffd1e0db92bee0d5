package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Adiru352/luxmeet3.0/controller"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleControllerError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"card not found", controller.ErrCardNotFound, http.StatusNotFound},
		{"link not found", controller.ErrLinkNotFound, http.StatusNotFound},
		{"permission denied", controller.ErrPermissionDenied, http.StatusForbidden},
		{"slug taken", controller.ErrSlugTaken, http.StatusConflict},
		{"nfc id taken", controller.ErrNfcIDTaken, http.StatusConflict},
		{"stale card version", controller.ErrCardConflict, http.StatusConflict},
		{"invalid slug", controller.ErrInvalidSlug, http.StatusBadRequest},
		{"card limit reached", controller.ErrCardLimitReached, http.StatusForbidden},
		{"link expired", controller.ErrLinkExpired, http.StatusGone},
		{"link paused", controller.ErrLinkPaused, http.StatusNotFound},
		{"link password", controller.ErrLinkPassword, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			handled := handleControllerError(c, tt.err)

			assert.True(t, handled)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}

	t.Run("field errors render a 422 with the field map", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)

		fieldErrs := controller.FieldErrors{"email": "must be a valid email address"}
		handled := handleControllerError(c, fieldErrs)

		assert.True(t, handled)
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "must be a valid email address")
	})

	t.Run("unknown errors are left to the caller", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)

		assert.False(t, handleControllerError(c, errors.New("db exploded")))
	})

	t.Run("nil error is not handled", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)

		assert.False(t, handleControllerError(c, nil))
	})
}
