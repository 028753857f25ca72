package domain

import (
	"encoding/json"
	"fmt"
)

// QuestionData is the constraint payload of a question. The catalogue is
// closed: exactly one variant exists per QuestionType and the compiler
// forces the validation engine to handle every variant it dispatches on.
type QuestionData interface {
	Kind() QuestionType
}

type TextSize string

const (
	TextSizeSmall     TextSize = "small"
	TextSizeMedium    TextSize = "medium"
	TextSizeLarge     TextSize = "large"
	TextSizeVeryLarge TextSize = "very-large"
)

type SelectionType string

const (
	SelectionTypeUnlimited SelectionType = "unlimited"
	SelectionTypeFixed     SelectionType = "fixed"
	SelectionTypeRange     SelectionType = "range"
)

type ContactFieldType string

const (
	ContactFieldTypeText   ContactFieldType = "text"
	ContactFieldTypeEmail  ContactFieldType = "email"
	ContactFieldTypeTel    ContactFieldType = "tel"
	ContactFieldTypeNumber ContactFieldType = "number"
)

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type ContactField struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Type        ContactFieldType `json:"type"`
	Display     bool             `json:"display"`
	Required    bool             `json:"required"`
	Placeholder string           `json:"placeholder"`
}

// UnmarshalJSON defaults display to true when the payload omits it, so
// only fields explicitly hidden by the author escape validation.
func (f *ContactField) UnmarshalJSON(data []byte) error {
	type plain ContactField
	aux := struct {
		Display *bool `json:"display"`
		*plain
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.Display = aux.Display == nil || *aux.Display
	return nil
}

type ShortTextData struct {
	Placeholder string `json:"placeholder"`
}

type LongTextData struct {
	Placeholder string   `json:"placeholder,omitempty"`
	MinLength   *int     `json:"minLength,omitempty"`
	MaxLength   *int     `json:"maxLength,omitempty"`
	Size        TextSize `json:"size"`
}

type NumberData struct {
	Placeholder string   `json:"placeholder,omitempty"`
	MinValue    *float64 `json:"minValue,omitempty"`
	MaxValue    *float64 `json:"maxValue,omitempty"`
}

type DateData struct {
	Placeholder string `json:"placeholder"`
	MinDate     string `json:"minDate,omitempty"`
	MaxDate     string `json:"maxDate,omitempty"`
}

type URLData struct {
	Placeholder string `json:"placeholder"`
}

type DropdownData struct {
	Options     []Option `json:"options"`
	Placeholder string   `json:"placeholder,omitempty"`
}

type SingleSelectData struct {
	Options    []Option `json:"options"`
	AllowOther bool     `json:"allowOther,omitempty"`
}

type MultiSelectData struct {
	Options         []Option      `json:"options"`
	SelectionType   SelectionType `json:"selectionType"`
	MinSelections   *int          `json:"minSelections,omitempty"`
	MaxSelections   *int          `json:"maxSelections,omitempty"`
	FixedSelections *int          `json:"fixedSelections,omitempty"`
	AllowOther      bool          `json:"allowOther,omitempty"`
}

type ContactInfoData struct {
	Fields []ContactField `json:"fields"`
}

type AddressData struct {
	Fields []ContactField `json:"fields"`
}

type StatementData struct{}

type StartStepData struct{}

type EndStepData struct{}

func (ShortTextData) Kind() QuestionType    { return QuestionTypeShortText }
func (LongTextData) Kind() QuestionType     { return QuestionTypeLongText }
func (NumberData) Kind() QuestionType       { return QuestionTypeNumber }
func (DateData) Kind() QuestionType         { return QuestionTypeDate }
func (URLData) Kind() QuestionType          { return QuestionTypeURL }
func (DropdownData) Kind() QuestionType     { return QuestionTypeDropdown }
func (SingleSelectData) Kind() QuestionType { return QuestionTypeSingleSelect }
func (MultiSelectData) Kind() QuestionType  { return QuestionTypeMultiSelect }
func (ContactInfoData) Kind() QuestionType  { return QuestionTypeContactInfo }
func (AddressData) Kind() QuestionType      { return QuestionTypeAddress }
func (StatementData) Kind() QuestionType    { return QuestionTypeStatement }
func (StartStepData) Kind() QuestionType    { return QuestionTypeStartStep }
func (EndStepData) Kind() QuestionType      { return QuestionTypeEndStep }

// DecodeQuestionData parses a raw payload into the variant the question
// type demands. Unknown types and payloads that do not match the variant
// shape are rejected.
func DecodeQuestionData(questionType QuestionType, raw []byte) (QuestionData, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	switch questionType {
	case QuestionTypeShortText:
		var data ShortTextData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding short text payload: %w", err)
		}
		return data, nil
	case QuestionTypeLongText:
		var data LongTextData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding long text payload: %w", err)
		}
		switch data.Size {
		case TextSizeSmall, TextSizeMedium, TextSizeLarge, TextSizeVeryLarge, "":
		default:
			return nil, fmt.Errorf("invalid long text size: %q", data.Size)
		}
		return data, nil
	case QuestionTypeNumber:
		var data NumberData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding number payload: %w", err)
		}
		return data, nil
	case QuestionTypeDate:
		var data DateData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding date payload: %w", err)
		}
		return data, nil
	case QuestionTypeURL:
		var data URLData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding url payload: %w", err)
		}
		return data, nil
	case QuestionTypeDropdown:
		var data DropdownData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding dropdown payload: %w", err)
		}
		return data, nil
	case QuestionTypeSingleSelect:
		var data SingleSelectData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding single select payload: %w", err)
		}
		return data, nil
	case QuestionTypeMultiSelect:
		var data MultiSelectData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding multi select payload: %w", err)
		}
		switch data.SelectionType {
		case SelectionTypeUnlimited, SelectionTypeFixed, SelectionTypeRange:
		default:
			return nil, fmt.Errorf("invalid selection type: %q", data.SelectionType)
		}
		return data, nil
	case QuestionTypeContactInfo:
		var data ContactInfoData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding contact info payload: %w", err)
		}
		if err := validateContactFields(data.Fields); err != nil {
			return nil, err
		}
		return data, nil
	case QuestionTypeAddress:
		var data AddressData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding address payload: %w", err)
		}
		if err := validateContactFields(data.Fields); err != nil {
			return nil, err
		}
		return data, nil
	case QuestionTypeStatement:
		return StatementData{}, nil
	case QuestionTypeStartStep:
		return StartStepData{}, nil
	case QuestionTypeEndStep:
		return EndStepData{}, nil
	default:
		return nil, fmt.Errorf("unknown question type: %q", questionType)
	}
}

func validateContactFields(fields []ContactField) error {
	for _, field := range fields {
		switch field.Type {
		case ContactFieldTypeText, ContactFieldTypeEmail, ContactFieldTypeTel, ContactFieldTypeNumber:
		default:
			return fmt.Errorf("invalid contact field type: %q", field.Type)
		}
	}
	return nil
}

// EncodeQuestionData is the persistence-bound inverse of DecodeQuestionData.
func EncodeQuestionData(data QuestionData) ([]byte, error) {
	if data == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(data)
}
