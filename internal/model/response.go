package model

import (
	"errors"
	"strings"
)

// ResultType discriminates success and error envelopes.
type ResultType string

const (
	ResultSuccess ResultType = "SUCCESS"
	ResultError   ResultType = "ERROR"
)

var (
	ErrSuccessWithError   = errors.New("success response cannot have error")
	ErrErrorWithData      = errors.New("error response cannot have data")
	ErrErrorWithoutDetail = errors.New("error response must have error details")
	ErrUnknownResult      = errors.New("unknown result type")
	ErrBlankErrorCode     = errors.New("error code must not be blank")
	ErrBlankErrorMessage  = errors.New("error message must not be blank")
)

// ErrorMessage is the error detail of an envelope. Only the code and the
// client-facing message are ever serialized.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorMessage rejects blank codes and messages.
func NewErrorMessage(code, message string) (*ErrorMessage, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrBlankErrorCode
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrBlankErrorMessage
	}
	return &ErrorMessage{Code: code, Message: message}, nil
}

// Envelope is the uniform body of every API response.
//
//	{"result":"SUCCESS","data":{...}}
//	{"result":"ERROR","error":{"code":"...","message":"..."}}
type Envelope struct {
	Result ResultType    `json:"result"`
	Data   any           `json:"data,omitempty"`
	Error  *ErrorMessage `json:"error,omitempty"`
}

// NewEnvelope builds an envelope and enforces that exactly the field matching
// result is populated.
func NewEnvelope(result ResultType, data any, errMsg *ErrorMessage) (*Envelope, error) {
	switch result {
	case ResultSuccess:
		if errMsg != nil {
			return nil, ErrSuccessWithError
		}
	case ResultError:
		if data != nil {
			return nil, ErrErrorWithData
		}
		if errMsg == nil {
			return nil, ErrErrorWithoutDetail
		}
	default:
		return nil, ErrUnknownResult
	}

	return &Envelope{Result: result, Data: data, Error: errMsg}, nil
}

// Success wraps data in a success envelope. data may be nil for responses
// without a body.
func Success(data any) *Envelope {
	return &Envelope{Result: ResultSuccess, Data: data}
}

// Failure builds an error envelope. A blank code or message is rejected with
// the NewErrorMessage error; the returned envelope then carries the internal
// error so a response can still be written.
func Failure(code, message string) (*Envelope, error) {
	errMsg, err := NewErrorMessage(code, message)
	if err != nil {
		errMsg = &ErrorMessage{Code: "INTERNAL_ERROR", Message: "An internal server error occurred"}
	}
	return &Envelope{Result: ResultError, Error: errMsg}, err
}
