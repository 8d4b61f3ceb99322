package gemini

// promptData carries the values substituted into the prompt template.
type promptData struct {
	Word             string
	LearningLanguage string
	NativeLanguage   string
	QuestionType     string
}

// questionSchema mirrors the JSON object the model is instructed to
// return. The model sometimes omits optional fields; only prompt and
// answer are required downstream.
type questionSchema struct {
	Prompt     string   `json:"prompt"`
	Answer     string   `json:"answer"`
	Choices    []string `json:"choices"`
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
}
