package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobtrackr/internal/validation"
)

// bindAndValidate decodes the JSON body into dst and runs the schema
// validation. On any failure it writes the 400 envelope and returns false;
// the handler never sees an unvalidated payload.
func bindAndValidate(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		validationFailed(c, []validation.FieldError{{Path: "", Message: "Invalid JSON payload."}})
		return false
	}
	if errs := validation.Struct(dst); len(errs) > 0 {
		validationFailed(c, errs)
		return false
	}
	return true
}

func validationFailed(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Validation failed.",
		"errors":  errs,
	})
}

// internalError logs the real failure and hands the caller the generic
// message; nothing internal leaks past the handler boundary.
func internalError(c *gin.Context, err error) {
	slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong!"})
}

// Recovery is the final catch-all: a panic anywhere below becomes the same
// generic 500 body instead of an empty reply.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", "path", c.FullPath(), "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong!"})
	})
}
