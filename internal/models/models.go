package models

// FoodItem is a single recognized food with its estimated nutrition values.
type FoodItem struct {
	Name     string  `json:"name"`
	PortionG float64 `json:"portion_g"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
}

// NutritionResult is the analysis produced for one uploaded food image.
type NutritionResult struct {
	FoodItems     []FoodItem `json:"food_items"`
	TotalCalories float64    `json:"total_calories"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Query       string `json:"query"`
	ChatHistory string `json:"chat_history"`
}

// ChatReply is the reply from the AI chat.
type ChatReply struct {
	Response string `json:"response"`
}

// Message is one conversational turn. Immutable once written.
type Message struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// Session is a persisted named transcript of chat turns. The id is
// caller-supplied and names the file the session is stored in.
type Session struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Messages []Message `json:"messages"`
}

// API Error response
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error  APIError `json:"error"`
	Detail string   `json:"detail"`
}
