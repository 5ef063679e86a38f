package backend

import (
	"net"
	"net/url"
	"strings"
)

const defaultBaseURL = "http://localhost:5000"

// Env looks a variable up; os.Getenv fits.
type Env func(key string) string

// ResolveServerBaseURL picks the backend origin for server-side calls:
// NEXT_PUBLIC_API_BASE_URL, API_BASE_URL, the host of NEXT_PUBLIC_APP_URL or
// APP_URL (on API_PORT when set), localhost:API_PORT, then localhost:5000.
func ResolveServerBaseURL(env Env) string {
	if v := clean(env("NEXT_PUBLIC_API_BASE_URL")); v != "" {
		return v
	}
	if v := clean(env("API_BASE_URL")); v != "" {
		return v
	}
	port := strings.TrimSpace(env("API_PORT"))
	for _, key := range []string{"NEXT_PUBLIC_APP_URL", "APP_URL"} {
		if v := fromAppURL(env(key), port); v != "" {
			return v
		}
	}
	if port != "" {
		return "http://localhost:" + port
	}
	return defaultBaseURL
}

// ResolveBrowserBaseURL is the origin handed to browser code: the published
// public base, then the server base, then the page origin.
func ResolveBrowserBaseURL(env Env, pageOrigin string) string {
	if v := clean(env("NEXT_PUBLIC_API_BASE_URL")); v != "" {
		return v
	}
	if v := clean(env("API_BASE_URL")); v != "" {
		return v
	}
	if v := clean(pageOrigin); v != "" {
		return v
	}
	return ResolveServerBaseURL(env)
}

func fromAppURL(raw, port string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	host := u.Host
	if port != "" {
		host = net.JoinHostPort(u.Hostname(), port)
	}
	return u.Scheme + "://" + host
}

func clean(v string) string {
	return strings.TrimRight(strings.TrimSpace(v), "/")
}
