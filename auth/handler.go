package auth

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

var errBadRequestBody = errors.New("invalid request body")

func RegisterHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeRegisterRequest(r.Body)
		if err != nil {
			encodeError(errBadRequestBody, w)
			return
		}

		id, err := svc.Register(r.Context(), req)
		if err != nil {
			encodeError(err, w)
			return
		}

		log.Printf("user registered: id=%s username=%s userType=%s", id, req.Username, req.UserType)
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "User registered successfully",
			"userId":  string(id),
		})
	})
}

func LoginHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeLoginRequest(r.Body)
		if err != nil {
			encodeError(errBadRequestBody, w)
			return
		}

		log.Printf("login attempt: username=%s", req.Username)

		profile, err := svc.Login(r.Context(), req)
		if err != nil {
			encodeError(err, w)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Login successful",
			"user":    profile,
		})
	})
}

// encodeError maps the expected failures to their status codes.
// Anything else is logged with full detail and answered with the
// generic 500 body, never the internal message.
func encodeError(err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, ErrMissingRegisterFields),
		errors.Is(err, ErrMissingLoginFields),
		errors.Is(err, ErrDuplicateAccount),
		errors.Is(err, errBadRequestBody):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
	case errors.Is(err, ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "Internal Server Error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func decodeRegisterRequest(body io.ReadCloser) (registerRequest, error) {
	req := registerRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return registerRequest{}, err
	}
	return req, nil
}

func decodeLoginRequest(body io.ReadCloser) (loginRequest, error) {
	req := loginRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return loginRequest{}, err
	}
	return req, nil
}
