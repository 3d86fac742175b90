package http

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/auth"
	"github.com/leavedesk/leave-backend-go/internal/domain/employee"
)

const maxMultipartMemory = 10 << 20 // 10 MiB

// decodeJSON decodes a request body into dst, rejecting unknown fields so
// malformed or misspelled payloads fail before reaching business logic.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// principalFromRequest rebuilds the verified principal from token claims.
// Handlers never read a principal id from the payload or URL.
func principalFromRequest(r *http.Request) (auth.Principal, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	return auth.FromClaims(claims)
}

// imageFromRequest extracts the optional "image" multipart field. A missing
// file is not an error.
func imageFromRequest(r *http.Request) (*employee.ImageUpload, *multipart.File, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return &employee.ImageUpload{File: file, Filename: header.Filename}, &file, nil
}
