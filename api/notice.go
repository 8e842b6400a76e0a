package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// listNotices returns the retained transient notices, newest last.
func (server *Server) listNotices(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"notices": server.notices.List()})
}

// dismissNotice drops one notice.
func (server *Server) dismissNotice(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid notice ID format")))
		return
	}

	server.notices.Dismiss(id)
	ctx.Status(http.StatusNoContent)
}
