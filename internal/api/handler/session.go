package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mcoot/blackjack-go/internal/api/request"
	"github.com/mcoot/blackjack-go/internal/api/response"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/auth"
	"github.com/mcoot/blackjack-go/internal/services/game"
)

// ActionAuth is the POST action that exchanges a wallet signature for a
// bearer token. The other actions are game.ActionHit and game.ActionStand.
const ActionAuth = "auth"

// SessionHandler handles the /session endpoint
type SessionHandler struct {
	auth *auth.Service
	game *game.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(authService *auth.Service, gameController *game.Controller) *SessionHandler {
	return &SessionHandler{
		auth: authService,
		game: gameController,
	}
}

// NewRound handles GET /session. It starts a fresh round for the player,
// loading their persisted score.
func (h *SessionHandler) NewRound(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		response.Error(w, http.StatusBadRequest, "Player is required")
		return
	}

	g, err := h.game.StartRound(r.Context(), model.CanonicalPlayerID(player))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromSession(g))
}

// Act handles POST /session: either a wallet authentication or a
// token-gated game action. Validation of the bearer token always happens
// before the game controller is reached.
func (h *SessionHandler) Act(w http.ResponseWriter, r *http.Request) {
	var req request.Session
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Player == "" {
		response.Error(w, http.StatusBadRequest, "Player is required")
		return
	}

	if req.Action == ActionAuth {
		token, err := h.auth.VerifyAndIssue(req.Player, req.Message, req.Signature)
		if err != nil {
			WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.Token{Token: token})
		return
	}

	player, err := h.auth.Validate(bearerToken(r), model.CanonicalPlayerID(req.Player))
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.game.Apply(r.Context(), player, req.Action)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromSession(g))
}

// bearerToken extracts the bearer token from the Authorization header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
