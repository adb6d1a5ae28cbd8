package model

// RecordMealRequest is the POST /api/meals body. Quantity is left untyped
// so the handler can coerce numbers, numeric strings, and reject the rest
// with a 400 instead of a bind error.
type RecordMealRequest struct {
	GuestID  string `json:"guestId"`
	Quantity any    `json:"quantity"`
}

type RecordMealResponse struct {
	Success bool `json:"success"`
}

type GuestsResponse struct {
	Guests []Guest `json:"guests"`
}

type TotalsResponse struct {
	Total int `json:"total"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
