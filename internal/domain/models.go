package domain

// Question is a single prompt/answer pair from the question bank.
// The JSON field names match the questions.json format the service loads.
type Question struct {
	Prompt string `json:"question"`
	Answer string `json:"answer"`
}

// AnswerResult summarizes the outcome of one submission. CorrectAnswer is the
// stored answer as loaded, never its normalized form; adapters display it when
// the verdict is wrong.
type AnswerResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
}

// Score is a user's cumulative tally. Correct never exceeds Total.
type Score struct {
	Correct int64 `json:"correct"`
	Total   int64 `json:"total"`
}
