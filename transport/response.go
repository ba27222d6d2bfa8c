package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/muhammadheryan/warung-order/utils/logger"
	validatorx "github.com/muhammadheryan/warung-order/utils/validator"
	"go.uber.org/zap"
)

// Response is the JSON envelope of every endpoint.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
	Detail  string      `json:"detail,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.Error(err))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	ce, ok := errors.As(err)
	if !ok {
		logger.Error("[writeError] unexpected error", zap.Error(err))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Code:    ce.ErrorCode(),
		Message: constant.ErrorTypeMessage[ce.ErrorType()],
		Field:   ce.Field(),
		Detail:  ce.Detail(),
	})
}

// JSON bodies are small; anything larger is rejected before decoding finishes.
const maxJSONBodyBytes = 1 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.SetFieldError(constant.ErrInvalidRequest, "body", "body exceeds 1MB")
		}
		return errors.SetFieldError(constant.ErrInvalidRequest, "body", "malformed JSON")
	}
	return nil
}

// decodeJSON reads the body into dst and runs struct validation on it.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := decodeBody(w, r, dst); err != nil {
		return err
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		if field, tag, ok := validatorx.FieldError(err); ok {
			return errors.SetFieldError(constant.ErrInvalidRequest, field, "failed on "+tag)
		}
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}
