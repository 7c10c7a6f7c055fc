package handler

import (
	"net/http"
	"strconv"

	"portal/internal/domain"
	"portal/internal/repository"
	"portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes the error body for err. Storage failures are logged
// with their cause; clients only see the generic message.
func respondError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	if kind == domain.KindStorage {
		logger.FromGin(c).Error("request failed", zap.String("route", c.FullPath()), zap.Error(err))
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(kind.HTTPStatus(), gin.H{"error": domain.MessageOf(err), "code": kind})
}

func badRequest(c *gin.Context, err error) {
	respondError(c, domain.NewValidation(err.Error()))
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, domain.NewValidation("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// parsePageRequest reads page, size, sort and direction. Malformed numbers
// fall back to defaults.
func parsePageRequest(c *gin.Context) repository.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(domain.DefaultPageSize)))
	return repository.PageRequest{
		Page:      page,
		Size:      size,
		Sort:      c.Query("sort"),
		Direction: c.DefaultQuery("direction", "desc"),
	}.Normalize()
}

// optionalBool returns nil when the query parameter is absent.
func optionalBool(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidation("invalid " + name + " value")
	}
	return &b, nil
}

func deleted(c *gin.Context, what string) {
	c.JSON(http.StatusOK, gin.H{"message": what + " deleted"})
}
