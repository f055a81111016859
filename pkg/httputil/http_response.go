package httputil

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// ReadErrorResponse decodes an error body. Bodies that are not
// ErrorResponse JSON end up as Message verbatim.
func ReadErrorResponse(statusCode int, body io.Reader) ErrorResponse {
	raw, err := io.ReadAll(io.LimitReader(body, 1<<16))
	resp := ErrorResponse{Code: statusCode}
	if err != nil || len(raw) == 0 {
		resp.Message = http.StatusText(statusCode)
		return resp
	}
	if sonic.Unmarshal(raw, &resp) != nil || resp.Message == "" {
		resp.Message = string(raw)
	}
	resp.Code = statusCode
	return resp
}
