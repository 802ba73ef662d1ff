package request

// JoinGameRequest is the request body for joining a game
type JoinGameRequest struct {
	Name string `json:"name"`
}

// SubmitCardRequest is the request body for submitting a card
type SubmitCardRequest struct {
	Card string `json:"card"`
}

// PickWinnerRequest is the request body for the cardzar picking a winner
type PickWinnerRequest struct {
	WinnerID string `json:"winner_id"`
}
