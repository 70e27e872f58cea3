package models

// TokenPair is the credential pair issued by the token endpoint.
// Access is a short-lived bearer token with expiry encoded inside;
// Refresh is opaque to the client and exchanged for new access tokens.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
