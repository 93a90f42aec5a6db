package auth

import (
	"net/http"
	"time"
)

// CookieName is the fixed, process-wide name of the access token cookie.
const CookieName = "jwt_auth"

// Channel selects how a minted token pair travels back to the client.
type Channel int

const (
	// ChannelCookie delivers the access token as an HTTP-only cookie.
	// The response body carries an empty access token placeholder so the
	// token is never duplicated into a script-readable channel.
	ChannelCookie Channel = iota
	// ChannelDirect delivers both tokens in the response body, for mobile
	// and other non-browser clients.
	ChannelDirect
)

// ChannelFromRequest picks the delivery channel from the mobile query flag.
func ChannelFromRequest(r *http.Request) Channel {
	if r.URL.Query().Get("mobile") == "true" {
		return ChannelDirect
	}
	return ChannelCookie
}

// CookieProfile holds the security attributes of the access token cookie
// for one deployment profile.
type CookieProfile struct {
	SameSite http.SameSite
	Secure   bool
	MaxAge   time.Duration
	// AbsoluteExpiry switches from a rolling Max-Age to a fixed Expires
	// timestamp, the production behaviour.
	AbsoluteExpiry bool
}

// DevelopmentCookieProfile relaxes attributes for local work over plain HTTP.
func DevelopmentCookieProfile() CookieProfile {
	return CookieProfile{
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
		MaxAge:   time.Hour,
	}
}

// ProductionCookieProfile locks the cookie down for deployed environments.
func ProductionCookieProfile() CookieProfile {
	return CookieProfile{
		SameSite:       http.SameSiteStrictMode,
		Secure:         true,
		MaxAge:         time.Hour,
		AbsoluteExpiry: true,
	}
}

// TokenResponse is the body shape of signin and refresh responses.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Deliverer writes token pairs to responses according to the channel.
type Deliverer struct {
	profile CookieProfile
}

// NewDeliverer constructs a Deliverer for one deployment profile.
func NewDeliverer(profile CookieProfile) *Deliverer {
	return &Deliverer{profile: profile}
}

// Deliver shapes the response body and, on the cookie channel, sets the
// access token cookie.
func (d *Deliverer) Deliver(w http.ResponseWriter, pair TokenPair, ch Channel) TokenResponse {
	if ch == ChannelDirect {
		return TokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
	}
	http.SetCookie(w, d.accessCookie(pair.AccessToken))
	return TokenResponse{AccessToken: "", RefreshToken: pair.RefreshToken}
}

// ClearCookie expires the access token cookie, used on revocation.
func (d *Deliverer) ClearCookie(w http.ResponseWriter) {
	cookie := d.accessCookie("")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)
}

func (d *Deliverer) accessCookie(value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   d.profile.Secure,
		SameSite: d.profile.SameSite,
	}
	if d.profile.AbsoluteExpiry {
		cookie.Expires = time.Now().Add(d.profile.MaxAge)
	} else {
		cookie.MaxAge = int(d.profile.MaxAge / time.Second)
	}
	return cookie
}
