package services

import (
	"encoding/json"
	"strings"
)

// NormalizeModelJSON strips markdown code-fence artifacts from raw model
// output and parses the remainder as a JSON object. Model output is untrusted
// text: anything that is not a brace-delimited, parseable object is a
// *FormatError.
func NormalizeModelJSON(raw string) (map[string]interface{}, error) {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	if !strings.HasPrefix(clean, "{") || !strings.HasSuffix(clean, "}") {
		return nil, &FormatError{Message: "AI returned unexpected format"}
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(clean), &obj); err != nil {
		return nil, &FormatError{Message: "AI returned invalid JSON format"}
	}

	return obj, nil
}

// validateNutritionShape checks the decoded object against the schema the
// analysis prompt asks for. Shape drift from the model surfaces as a
// *FormatError instead of reaching the client.
func validateNutritionShape(obj map[string]interface{}) error {
	items, ok := obj["food_items"].([]interface{})
	if !ok {
		return &FormatError{Message: "AI response missing food_items"}
	}
	for _, it := range items {
		if _, ok := it.(map[string]interface{}); !ok {
			return &FormatError{Message: "AI response has malformed food_items"}
		}
	}
	if _, ok := obj["total_calories"].(float64); !ok {
		return &FormatError{Message: "AI response missing total_calories"}
	}
	return nil
}

// validateChatShape requires a string "response" field.
func validateChatShape(obj map[string]interface{}) error {
	if _, ok := obj["response"].(string); !ok {
		return &FormatError{Message: "AI response missing response field"}
	}
	return nil
}
