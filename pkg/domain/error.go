package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrCredential    = goerr.New("credential required")
	ErrAPIRequest    = goerr.New("API request failed")
	ErrConfiguration = goerr.New("configuration error")
	ErrRemoteSetup   = goerr.New("remote setup failed")
)
