package codeblocks

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/MKhiriev/go-codeblocks/internal/app"
)

// Args holds the arguments of a request: the query parameters for GET and
// DELETE, the JSON object body for POST and PUT, plus the path parameters.
type Args map[string]any

// String returns the argument as a string. Non-string values are
// formatted with fmt.
func (a Args) String(key string) (string, bool) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Int returns the argument as an int. Numeric strings are parsed; numbers
// with a fractional part are rejected.
func (a Args) Int(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		i, err := v.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(v)
		return i, err == nil
	default:
		return 0, false
	}
}

// Bool returns the argument as a bool. Strings are parsed with
// strconv.ParseBool.
func (a Args) Bool(key string) (bool, bool) {
	switch v := a[key].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	default:
		return false, false
	}
}

// Decode copies the arguments into out, a pointer to a struct or map.
// Fields are matched by their json tag, and values are converted weakly so
// query parameters like "42" fill int fields.
func (a Args) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("error creating args decoder: %w", err)
	}

	if err := decoder.Decode(map[string]any(a)); err != nil {
		return &HTTPError{Status: http.StatusBadRequest, Message: fmt.Sprintf("%s: %v", app.MsgInvalidArguments, err)}
	}
	return nil
}
