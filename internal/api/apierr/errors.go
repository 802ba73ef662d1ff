package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/partycards-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeBadToken            = "BAD_TOKEN"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeGameStarted         = "GAME_STARTED"
	CodeGameNotStarted      = "GAME_NOT_STARTED"
	CodeNotInGame           = "NOT_IN_GAME"
	CodeNotCardzar          = "NOT_CARDZAR"
	CodeNotVIP              = "NOT_VIP"
	CodeNameTaken           = "NAME_TAKEN"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeAlreadySubmitted    = "ALREADY_SUBMITTED"
	CodeCardzarCannotSubmit = "CARDZAR_CANNOT_SUBMIT"
	CodeNoSubmission        = "NO_SUBMISSION"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError.
// Gate rejections surface as 401 except a missing game, which is 404;
// none of them ever surface as a server fault.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrBadToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeBadToken, "Unauthorized - Bad token"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game does not exist"}}
	case errors.Is(err, model.ErrGameStarted):
		return &httpError{http.StatusUnauthorized, APIError{CodeGameStarted, "Unauthorized - Game has already started"}}
	case errors.Is(err, model.ErrNotInGame):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotInGame, "Unauthorized - User is not a player in this game"}}
	case errors.Is(err, model.ErrNotCardzar):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotCardzar, "Unauthorized - User is not cardzar"}}
	case errors.Is(err, model.ErrNotVIP):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotVIP, "Unauthorized - User is not VIP"}}

	case errors.Is(err, model.ErrGameNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameNotStarted, "Game has not started"}}
	case errors.Is(err, model.ErrNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "Player name is taken"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough players to start"}}
	case errors.Is(err, model.ErrAlreadySubmitted):
		return &httpError{http.StatusConflict, APIError{CodeAlreadySubmitted, "Already submitted this round"}}
	case errors.Is(err, model.ErrCardzarCannotSubmit):
		return &httpError{http.StatusConflict, APIError{CodeCardzarCannotSubmit, "The cardzar does not submit a card"}}
	case errors.Is(err, model.ErrNoSubmission):
		return &httpError{http.StatusConflict, APIError{CodeNoSubmission, "Player has not submitted this round"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
