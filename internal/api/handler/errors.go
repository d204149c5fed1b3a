package handler

import (
	"errors"
	"net/http"

	"github.com/mcoot/blackjack-go/internal/api/response"
	"github.com/mcoot/blackjack-go/internal/model"
)

// WriteError maps domain errors onto the session API's flat message
// shape. Auth failures deliberately collapse into a single "Unauthorized"
// message so the response does not reveal why a token was rejected.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidSignature):
		response.Error(w, http.StatusBadRequest, "Signature invalid")
	case errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenInvalid),
		errors.Is(err, model.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, model.ErrInvalidAction):
		response.Error(w, http.StatusBadRequest, "Invalid action")
	case errors.Is(err, model.ErrNoActiveRound):
		response.Error(w, http.StatusNotFound, "No active round")
	case errors.Is(err, model.ErrStoreUnavailable):
		response.Error(w, http.StatusInternalServerError, "Score store unavailable")
	case errors.Is(err, model.ErrInsufficientCards):
		response.Error(w, http.StatusConflict, "Deck exhausted")
	default:
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
