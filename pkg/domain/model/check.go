package model

// CheckStatus is the result of a token/repository preflight.
type CheckStatus struct {
	Login  string
	Exists bool
}
