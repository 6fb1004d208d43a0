package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elliot-anderson-afk/kite-api-wrapper/kiteerrors"
)

// envelope is the JSON wrapper every structured Kite API response uses.
type envelope struct {
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	ErrorType string          `json:"error_type"`
}

// classify decides success or failure for a completed round trip and, on
// failure, selects the error kind. JSON responses yield the envelope data
// payload, non-JSON responses the raw body text. The rules, in order:
//
//  1. an undeclared or non-JSON content type passes through as opaque text;
//     only the status code decides success or failure there
//  2. a JSON body that fails to parse is a Data error carrying the raw body
//  3. a parsed JSON failure maps its error_type tag through the fixed
//     taxonomy; an unrecognized tag degrades to General, an absent tag
//     yields a generic error with the status code and raw body
func classify(res *transportResult) (json.RawMessage, string, error) {
	if !strings.Contains(res.contentType, contentTypeJSON) {
		if res.status >= 400 {
			return nil, "", kiteerrors.NewWithCode(kiteerrors.General,
				fmt.Sprintf("HTTP error: %d - %s", res.status, res.body), res.status)
		}
		return nil, string(res.body), nil
	}

	var env envelope
	if err := json.Unmarshal(res.body, &env); err != nil {
		return nil, "", kiteerrors.New(kiteerrors.Data,
			fmt.Sprintf("failed to parse JSON response: %s", res.body))
	}

	if res.status >= 400 {
		if env.ErrorType != "" {
			message := env.Message
			if message == "" {
				message = "Unknown error"
			}
			return nil, "", kiteerrors.FromErrorType(env.ErrorType, message, res.status)
		}
		return nil, "", kiteerrors.NewWithCode(kiteerrors.General,
			fmt.Sprintf("HTTP error: %d - %s", res.status, res.body), res.status)
	}

	return env.Data, "", nil
}
