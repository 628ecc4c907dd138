package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"wbexplorer.org/internal/logging"
	"wbexplorer.org/internal/models"
)

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "restapi"))

	response := models.NewErrorResponse(http.StatusInternalServerError, "internal server error")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	encoderErr := json.NewEncoder(w).Encode(response)
	if encoderErr != nil {
		api.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		Code        int                 `json:"code"`
		CurrentTime int64               `json:"currentTime"`
		FieldErrors map[string][]string `json:"fieldErrors"`
		Text        string              `json:"text"`
		Version     int                 `json:"version"`
	}{
		Code:        http.StatusBadRequest,
		CurrentTime: models.ResponseCurrentTime(),
		FieldErrors: fieldErrors,
		Text:        "invalid request parameters",
		Version:     2,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}
