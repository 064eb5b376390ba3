package channel

import (
	"encoding/json"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

const (
	errorCodeUnregistered    = "UNREGISTERED"
	errorCodeInvalidArgument = "INVALID_ARGUMENT"
)

// SendError is a non-2xx answer of the FCM API.
type SendError struct {
	StatusCode int
	// Status is the google.rpc status, e.g. NOT_FOUND
	Status string
	// ErrorCode is the FCM specific code, e.g. UNREGISTERED
	ErrorCode string
	Message   string
}

func (e *SendError) Error() string {
	code := e.ErrorCode
	if code == "" {
		code = e.Status
	}
	if e.Message == "" {
		return fmt.Sprintf("fcm: send failed: http %d %s", e.StatusCode, code)
	}
	return fmt.Sprintf("fcm: send failed: http %d %s: %s", e.StatusCode, code, e.Message)
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Type      string `json:"@type"`
			ErrorCode string `json:"errorCode"`
		} `json:"details"`
	} `json:"error"`
}

func newSendError(statusCode int, body []byte) *SendError {
	sErr := &SendError{StatusCode: statusCode}
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		sErr.Message = string(body)
		return sErr
	}
	sErr.Status = resp.Error.Status
	sErr.Message = resp.Error.Message
	for _, d := range resp.Error.Details {
		if d.ErrorCode != "" {
			sErr.ErrorCode = d.ErrorCode
			break
		}
	}
	return sErr
}

// IsUnregistered reports whether the target token is no longer valid.
func IsUnregistered(err error) bool {
	var sErr *SendError
	if errors.As(err, &sErr) {
		return sErr.ErrorCode == errorCodeUnregistered
	}
	return messaging.IsUnregistered(err)
}

func IsInvalidArgument(err error) bool {
	var sErr *SendError
	if errors.As(err, &sErr) {
		return sErr.ErrorCode == errorCodeInvalidArgument || sErr.Status == errorCodeInvalidArgument
	}
	return messaging.IsInvalidArgument(err)
}
