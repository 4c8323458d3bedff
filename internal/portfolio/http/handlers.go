package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

const (
	paramLimit            = "limit"
	paramBuildLocation    = "build-location"
	paramConstructionType = "construction-type"
)

func (h *Handler) list(c *gin.Context) {
	fc, err := domain.ParseFilterCriteria(
		c.Query(paramLimit),
		c.Query(paramBuildLocation),
		c.Query(paramConstructionType),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	items, err := h.svc.List(c.Request.Context(), fc)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": domain.ErrStoreUnavailable.Error()})
		case c.Request.Context().Err() != nil:
			// client went away; nothing useful to send
			h.log.Debug("listing aborted", zap.Error(err))
			c.Abort()
		default:
			h.log.Error("listing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to list projects"})
		}
		return
	}

	c.JSON(http.StatusOK, items)
}
