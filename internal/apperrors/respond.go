package apperrors

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond maps an error from the storage/service layer onto the wire.
// Anything not in the taxonomy is treated as a storage failure: logged in
// full, surfaced generically so internals never leak to the caller.
func Respond(c *gin.Context, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": ve.Fields})
		return
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
		return
	}

	var ce *ConflictError
	if errors.As(err, &ce) {
		c.JSON(http.StatusConflict, gin.H{"error": ce.Message})
		return
	}

	log.Printf("storage error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
