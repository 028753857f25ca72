package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ValidationError is one rejected aspect of a submitted answer. Field
// names the question title or the sub-field; "general" when the question
// has no title.
type ValidationError struct {
	Field      string `json:"field"`
	Message    string `json:"message"`
	QuestionID string `json:"questionId"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneNoise   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// ValidateAnswer checks one normalized answer against its question. The
// required gate runs first and short-circuits; afterwards every arm keeps
// accumulating so the caller sees all problems at once.
func ValidateAnswer(question Question, answer any) []ValidationError {
	questionID := question.ID.String()
	fieldName := question.Title
	if fieldName == "" {
		fieldName = "general"
	}

	if isEmptyAnswer(answer) {
		if question.Required {
			return []ValidationError{{
				Field:      fieldName,
				Message:    "This field is required",
				QuestionID: questionID,
			}}
		}
		return nil
	}

	dataField := question.Title
	if dataField == "" {
		dataField = "questionData"
	}
	badData := ValidationError{
		Field:      dataField,
		Message:    "invalid question data",
		QuestionID: questionID,
	}

	var errs []ValidationError

	switch question.Type {
	case QuestionTypeContactInfo, QuestionTypeAddress:
		var fields []ContactField
		switch data := question.Data.(type) {
		case ContactInfoData:
			fields = data.Fields
		case AddressData:
			fields = data.Fields
		default:
			return []ValidationError{badData}
		}

		answerFields, ok := answer.(map[string]FieldAnswer)
		if !ok {
			return []ValidationError{{
				Field:      fieldName,
				Message:    fmt.Sprintf("Invalid %s information format", strings.ToLower(string(question.Type))),
				QuestionID: questionID,
			}}
		}

		for _, field := range fields {
			if !field.Display {
				continue
			}
			fieldValue := answerFields[field.ID].Value

			if field.Required && strings.TrimSpace(fieldValue) == "" {
				errs = append(errs, ValidationError{
					Field:      field.Title,
					Message:    fmt.Sprintf("%s is required", field.Title),
					QuestionID: questionID,
				})
			}

			if fieldValue != "" && field.Type == ContactFieldTypeEmail && !emailPattern.MatchString(fieldValue) {
				errs = append(errs, ValidationError{
					Field:      field.Title,
					Message:    "Please enter a valid email address",
					QuestionID: questionID,
				})
			}

			if fieldValue != "" && field.Type == ContactFieldTypeTel && !phonePattern.MatchString(phoneNoise.Replace(fieldValue)) {
				errs = append(errs, ValidationError{
					Field:      field.Title,
					Message:    "Please enter a valid phone number",
					QuestionID: questionID,
				})
			}
		}

	case QuestionTypeMultiSelect:
		data, ok := question.Data.(MultiSelectData)
		if !ok {
			return []ValidationError{badData}
		}

		selections, ok := answer.([]string)
		if !ok {
			return []ValidationError{{
				Field:      fieldName,
				Message:    "Invalid multi-select format",
				QuestionID: questionID,
			}}
		}

		selected := len(selections)
		switch {
		case data.SelectionType == SelectionTypeFixed && data.FixedSelections != nil && *data.FixedSelections > 0:
			if selected != *data.FixedSelections {
				errs = append(errs, ValidationError{
					Field:      fieldName,
					Message:    fmt.Sprintf("Please select exactly %d option(s). Currently %d selected.", *data.FixedSelections, selected),
					QuestionID: questionID,
				})
			}
		case data.SelectionType == SelectionTypeRange:
			if data.MinSelections != nil && *data.MinSelections > 0 && selected < *data.MinSelections {
				errs = append(errs, ValidationError{
					Field:      fieldName,
					Message:    fmt.Sprintf("Please select at least %d option(s). Currently %d selected.", *data.MinSelections, selected),
					QuestionID: questionID,
				})
			}
			if data.MaxSelections != nil && *data.MaxSelections > 0 && selected > *data.MaxSelections {
				errs = append(errs, ValidationError{
					Field:      fieldName,
					Message:    fmt.Sprintf("Please select no more than %d option(s). Currently %d selected.", *data.MaxSelections, selected),
					QuestionID: questionID,
				})
			}
		}

		// The empty gate already returned for zero selections, so this
		// arm cannot fire. It mirrors the submission contract anyway.
		if question.Required && selected == 0 {
			errs = append(errs, ValidationError{
				Field:      fieldName,
				Message:    "Please select at least one option",
				QuestionID: questionID,
			})
		}

	case QuestionTypeNumber:
		data, ok := question.Data.(NumberData)
		if !ok {
			return []ValidationError{badData}
		}

		number, ok := numericValue(answer)
		if !ok {
			return []ValidationError{{
				Field:      fieldName,
				Message:    "Please enter a valid number",
				QuestionID: questionID,
			}}
		}

		if data.MinValue != nil && number < *data.MinValue {
			errs = append(errs, ValidationError{
				Field:      fieldName,
				Message:    fmt.Sprintf("Value must be at least %s", formatNumber(*data.MinValue)),
				QuestionID: questionID,
			})
		}
		if data.MaxValue != nil && number > *data.MaxValue {
			errs = append(errs, ValidationError{
				Field:      fieldName,
				Message:    fmt.Sprintf("Value must be no more than %s", formatNumber(*data.MaxValue)),
				QuestionID: questionID,
			})
		}

	case QuestionTypeLongText:
		data, ok := question.Data.(LongTextData)
		if !ok {
			return []ValidationError{badData}
		}

		text, ok := answer.(string)
		if !ok {
			return []ValidationError{{
				Field:      fieldName,
				Message:    "Please enter valid text",
				QuestionID: questionID,
			}}
		}

		trimmed := strings.TrimSpace(text)
		if trimmed != "" {
			length := len([]rune(trimmed))
			if data.MinLength != nil && length < *data.MinLength {
				errs = append(errs, ValidationError{
					Field:      fieldName,
					Message:    fmt.Sprintf("Text must be at least %d characters long. Currently %d characters.", *data.MinLength, length),
					QuestionID: questionID,
				})
			}
			if data.MaxLength != nil && length > *data.MaxLength {
				errs = append(errs, ValidationError{
					Field:      fieldName,
					Message:    fmt.Sprintf("Text must be no more than %d characters long. Currently %d characters.", *data.MaxLength, length),
					QuestionID: questionID,
				})
			}
		}

	case QuestionTypeShortText:
		if _, ok := answer.(string); !ok {
			errs = append(errs, ValidationError{
				Field:      fieldName,
				Message:    "Please enter valid text",
				QuestionID: questionID,
			})
		}

	default:
		// URL, DATE, DROPDOWN and SINGLE_SELECT_OPTION accept any
		// non-empty value. Tightening this would reject submissions
		// the previous releases accepted.
	}

	return errs
}

// ValidateAll runs every question of a form against its submitted answer,
// question order, and concatenates the findings. Unanswered questions
// validate against nil so the required gate catches them.
func ValidateAll(questions []Question, answers []SubmittedAnswer) []ValidationError {
	byQuestion := make(map[ID]any, len(answers))
	for _, answer := range answers {
		// First occurrence wins when a question is answered twice.
		if _, seen := byQuestion[answer.QuestionID]; seen {
			continue
		}
		byQuestion[answer.QuestionID] = answer.Value
	}

	var errs []ValidationError
	for _, question := range questions {
		value := NormalizeAnswer(question.Type, byQuestion[question.ID])
		errs = append(errs, ValidateAnswer(question, value)...)
	}
	return errs
}

func isEmptyAnswer(answer any) bool {
	switch v := answer.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	case map[string]FieldAnswer:
		return len(v) == 0
	default:
		return false
	}
}

func numericValue(answer any) (float64, bool) {
	switch v := answer.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		number, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return number, true
	default:
		return 0, false
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
