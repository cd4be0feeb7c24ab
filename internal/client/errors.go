package client

import "errors"

var (
	ErrNoServices = errors.New("client app needs a note store")
	ErrNoUI       = errors.New("client app needs a ui")
)
