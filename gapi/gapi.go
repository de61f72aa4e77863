package gapi

import (
	"context"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
	DRIVE  = "https://www.googleapis.com/auth/drive"
)

// Authorize loads the service account key from the credentials file and returns an HTTP
// client that authenticates requests with a bearer token obtained via the OAuth2 JWT
// flow. The spreadsheet (or Drive file/folder) has to be shared with the service account
// email for the token to be of any use.
func Authorize(ctx context.Context, credentials string, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, &CredentialError{File: credentials, Err: err}
	}

	config, err := google.JWTConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, &CredentialError{File: credentials, Err: err}
	}

	return config.Client(ctx), nil
}

// NewSheets creates a Sheets API client authorized for read/write spreadsheet access.
func NewSheets(ctx context.Context, credentials string) (*sheets.Service, error) {
	client, err := Authorize(ctx, credentials, SHEETS)
	if err != nil {
		return nil, err
	}

	return sheets.NewService(ctx, option.WithHTTPClient(client))
}

// NewDrive creates a Drive API client authorized for Drive file operations.
func NewDrive(ctx context.Context, credentials string) (*drive.Service, error) {
	client, err := Authorize(ctx, credentials, DRIVE)
	if err != nil {
		return nil, err
	}

	return drive.NewService(ctx, option.WithHTTPClient(client))
}
