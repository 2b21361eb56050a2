package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timeledger/project-billing-api/internal/projects/domain"
)

var statusByKind = map[domain.Kind]int{
	domain.KindValidation: http.StatusBadRequest,
	domain.KindNotFound:   http.StatusNotFound,
	domain.KindStore:      http.StatusInternalServerError,
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	if status, ok := statusByKind[domain.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}

	var de *domain.Error
	if errors.As(err, &de) && len(de.Violations) > 0 {
		body["violations"] = de.Violations
	}

	c.JSON(StatusFor(err), body)
}
