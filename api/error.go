package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nourhanadel/pharma-admin-BE/internal/editor"
	"github.com/nourhanadel/pharma-admin-BE/internal/gateway"
	"github.com/nourhanadel/pharma-admin-BE/internal/panel"
	"github.com/nourhanadel/pharma-admin-BE/internal/tracker"
)

var ErrInternalServer = errors.New("internal server error")

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// statusForError maps core and gateway failures to HTTP statuses. The
// remote API refusing a well-formed write is the client's problem
// (422); the remote API being unreachable is an upstream failure
// (502).
func statusForError(err error) int {
	switch {
	case gateway.IsKind(err, gateway.ValidationRejected):
		return http.StatusUnprocessableEntity
	case gateway.IsKind(err, gateway.FetchFailed),
		gateway.IsKind(err, gateway.MutationFailed):
		return http.StatusBadGateway
	case errors.Is(err, tracker.ErrUnknownNotification),
		errors.Is(err, panel.ErrRowNotFound):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrNegativeQuantity),
		errors.Is(err, editor.ErrItemOutOfRange),
		errors.Is(err, editor.ErrNoOrderOpen),
		errors.Is(err, editor.ErrNotModified),
		errors.Is(err, panel.ErrNoEditSession),
		errors.Is(err, panel.ErrNoPendingDelete),
		errors.Is(err, panel.ErrNotModified):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
