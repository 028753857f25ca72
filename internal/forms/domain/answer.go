package domain

import "encoding/json"

// SubmittedAnswer pairs a raw answer value with the question it targets.
// Value arrives untyped from the wire and is normalized before validation.
type SubmittedAnswer struct {
	QuestionID ID
	Value      any
}

// FieldAnswer is one sub-field of a composite answer (contact info or
// address).
type FieldAnswer struct {
	Value string `json:"value"`
	Title string `json:"title,omitempty"`
	Type  string `json:"type,omitempty"`
}

// NormalizeAnswer reshapes a raw wire value into what the validation
// engine for the given type expects. String payloads are treated as
// possibly JSON-encoded and decoded when they parse; values that do not
// fit the target shape are returned as-is so the engine can report a
// format error.
func NormalizeAnswer(questionType QuestionType, value any) any {
	if raw, ok := value.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
			value = decoded
		}
	}

	switch questionType {
	case QuestionTypeMultiSelect:
		items, ok := value.([]any)
		if !ok {
			return value
		}
		selections := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return value
			}
			selections = append(selections, s)
		}
		return selections
	case QuestionTypeContactInfo, QuestionTypeAddress:
		entries, ok := value.(map[string]any)
		if !ok {
			return value
		}
		fields := make(map[string]FieldAnswer, len(entries))
		for key, entry := range entries {
			attrs, ok := entry.(map[string]any)
			if !ok {
				return value
			}
			var field FieldAnswer
			if v, ok := attrs["value"].(string); ok {
				field.Value = v
			}
			if v, ok := attrs["title"].(string); ok {
				field.Title = v
			}
			if v, ok := attrs["type"].(string); ok {
				field.Type = v
			}
			fields[key] = field
		}
		return fields
	default:
		return value
	}
}
