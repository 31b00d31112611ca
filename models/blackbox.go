package models

// BlackBoxQuestion is one entry in the ordered puzzle list. Answer and
// Correct are nil until the user has submitted something for it.
type BlackBoxQuestion struct {
	ID      string  `json:"_id" validate:"required"`
	Prompt  string  `json:"prompt"`
	Answer  *string `json:"answer,omitempty"`
	Correct *bool   `json:"correct,omitempty"`
}

// BlackBoxProgress is derived server-side; the client never counts locally.
type BlackBoxProgress struct {
	Answered  int `json:"answeredCount"`
	Remaining int `json:"remainingCount"`
}
