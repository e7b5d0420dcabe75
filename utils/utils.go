package utils

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/teris-io/shortid"
)

var (
	generator *shortid.Shortid
	validate  = validator.New()
)

type clientError struct {
	ID            string `json:"id"`
	MessageToUser string `json:"messageToUser"`
	StatusCode    int    `json:"statusCode"`
	IsClientError bool   `json:"isClientError"`
}

func init() {
	g, err := shortid.New(1, shortid.DefaultABC, rand.Uint64())
	if err != nil {
		logrus.Panicf("Failed to initialize utils package with error: %+v", err)
	}
	generator = g
}

// ParseBody parses the values from io reader to a given interface
func ParseBody(body io.Reader, out interface{}) error {
	return json.NewDecoder(body).Decode(out)
}

// ValidateStruct runs the validate tags of the given struct, recursing into
// nested structs, and returns the first violation
func ValidateStruct(out interface{}) error {
	return validate.Struct(out)
}

// EncodeJSONBody writes the JSON body to response writer
func EncodeJSONBody(resp http.ResponseWriter, data interface{}) error {
	return json.NewEncoder(resp).Encode(data)
}

// RespondJSON sends the interface as a JSON
func RespondJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.WriteHeader(statusCode)
	if body != nil {
		if err := EncodeJSONBody(w, body); err != nil {
			logrus.Errorf("Failed to respond JSON with error: %+v", err)
		}
	}
}

// RespondError sends a structured error message to the API caller and logs the
// underlying error against the generated error id. Internal detail stays in
// the logs, the caller only sees the user message.
func RespondError(w http.ResponseWriter, statusCode int, err error, messageToUser string) {
	errorID, _ := generator.Generate()
	logrus.Errorf("id: %s, status: %d, message: %s, err: %+v", errorID, statusCode, messageToUser, err)
	w.WriteHeader(statusCode)
	if encodeErr := json.NewEncoder(w).Encode(&clientError{
		ID:            errorID,
		MessageToUser: messageToUser,
		StatusCode:    statusCode,
		IsClientError: statusCode < http.StatusInternalServerError,
	}); encodeErr != nil {
		logrus.Errorf("Failed to send error to caller with error: %+v", encodeErr)
	}
}
