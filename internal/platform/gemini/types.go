package gemini

// Generation parameters sent with every request.
const (
	Temperature     float32 = 0.7
	TopK            float32 = 40
	TopP            float32 = 0.95
	MaxOutputTokens int32   = 2048
)

// APIVersion is the REST API version prefix.
const APIVersion = "v1beta"

// generateContentRequest is the body of a generateContent call
type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopK            float32 `json:"topK"`
	TopP            float32 `json:"topP"`
	MaxOutputTokens int32   `json:"maxOutputTokens"`
}

// generateContentResponse is the success envelope. Only the fields needed to
// reach the first candidate's text are decoded.
type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// errorResponse is the body of a non-2xx response.
type errorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func newGenerateContentRequest(prompt string) generateContentRequest {
	return generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     Temperature,
			TopK:            TopK,
			TopP:            TopP,
			MaxOutputTokens: MaxOutputTokens,
		},
	}
}
