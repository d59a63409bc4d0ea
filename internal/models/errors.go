package models

// ValidationErrorResponse reports which request fields were rejected.
type ValidationErrorResponse struct {
	Code        int                 `json:"code"`
	Text        string              `json:"text"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}
