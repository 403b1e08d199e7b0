package validator

import (
	"encoding/json"
	"fmt"

	govalidator "github.com/go-playground/validator/v10"
)

const (
	tagType     = "type"
	tagRequired = "required"
)

// fieldMessages overrides the generic message for a (field, tag) pair.
var fieldMessages = map[string]map[string]string{
	"title": {
		tagType:     "Movie title must be a string",
		tagRequired: "Movie title is required",
	},
	"poster": {
		"url": "Poster must be a valid URL",
	},
	"genre": {
		tagType:     "Movie genre must be an array of enum Genre",
		tagRequired: "Movie genre is required",
		"min":       "Movie genre must contain at least one genre",
	},
}

func overrideMsg(field, tag string) string {
	return fieldMessages[field][tag]
}

func requiredMsg(field string) string {
	if msg := overrideMsg(field, tagRequired); msg != "" {
		return msg
	}
	return "This field is required"
}

func typeMsg(field, expected string, got any) string {
	if msg := overrideMsg(field, tagType); msg != "" {
		return msg
	}
	return fmt.Sprintf("Expected %s, received %s", expected, jsonType(got))
}

func intMsg() string {
	return "Expected integer, received float"
}

func safeIntMsg() string {
	return fmt.Sprintf("Number must be between -%d and %d", maxSafeInt, maxSafeInt)
}

func ruleMsg(field string, err govalidator.FieldError) (errorMsg string) {
	errorMsg = overrideMsg(field, err.Tag())
	if errorMsg == "" {
		switch err.Tag() {
		case "required":
			errorMsg = "This field is required"
		case "max":
			errorMsg = fmt.Sprintf("The maximum value is %s", err.Param())
		case "min":
			errorMsg = fmt.Sprintf("The minimum value is %s", err.Param())
		case "gte":
			errorMsg = fmt.Sprintf("Value should be greater than or equal to %s", err.Param())
		case "lte":
			errorMsg = fmt.Sprintf("Value should be less than or equal to %s", err.Param())
		case "lt":
			errorMsg = fmt.Sprintf("Value should be less than %s", err.Param())
		case "gt":
			errorMsg = fmt.Sprintf("Value should be greater than %s", err.Param())
		case "oneof":
			errorMsg = fmt.Sprintf("Value should be one of %s", err.Param())
		case "url":
			errorMsg = "Value must be a valid URL"
		default:
			errorMsg = "This field is invalid"
		}
	}
	// dive errors name the offending element, e.g. "[2]"
	if elem := err.Field(); elem != "" {
		errorMsg = fmt.Sprintf("%s%s: %s", field, elem, errorMsg)
	}
	return
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
