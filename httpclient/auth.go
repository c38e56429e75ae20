package httpclient

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthHeaderToken sends a token in a named request header.
	AuthHeaderToken
	// AuthCustom uses a custom authentication function.
	AuthCustom
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the credential value (AuthBearer, AuthHeaderToken).
	Token string
	// Header is the header name for AuthHeaderToken. Defaults to "Authorization".
	Header string
	// Apply is a custom function to modify the request (AuthCustom).
	Apply func(*http.Request)
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// HeaderTokenAuth creates an auth config that sends the token in the named header.
func HeaderTokenAuth(header, token string) *AuthConfig {
	return &AuthConfig{Type: AuthHeaderToken, Token: token, Header: header}
}

// CustomAuth creates a custom auth config with a request modifier function.
func CustomAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthHeaderToken:
		name := a.Header
		if name == "" {
			name = "Authorization"
		}
		req.Header.Set(name, a.Token)
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	}
}
