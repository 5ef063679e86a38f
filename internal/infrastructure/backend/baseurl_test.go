package backend

import "testing"

func envOf(m map[string]string) Env {
	return func(k string) string { return m[k] }
}

func TestResolveServerBaseURL(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"public wins", map[string]string{"NEXT_PUBLIC_API_BASE_URL": "https://api.example.com/", "API_BASE_URL": "http://other"}, "https://api.example.com"},
		{"server base", map[string]string{"API_BASE_URL": "http://backend:5000"}, "http://backend:5000"},
		{"app url with api port", map[string]string{"NEXT_PUBLIC_APP_URL": "https://portal.example.com:3000/dashboard", "API_PORT": "7000"}, "https://portal.example.com:7000"},
		{"app url keeps its host", map[string]string{"APP_URL": "http://portal.local"}, "http://portal.local"},
		{"invalid app url skipped", map[string]string{"APP_URL": "not a url", "API_PORT": "6000"}, "http://localhost:6000"},
		{"default", map[string]string{}, "http://localhost:5000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveServerBaseURL(envOf(tc.env)); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResolveBrowserBaseURL(t *testing.T) {
	if got := ResolveBrowserBaseURL(envOf(nil), "https://portal.example.com/"); got != "https://portal.example.com" {
		t.Fatalf("expected page origin, got %q", got)
	}
	env := envOf(map[string]string{"API_BASE_URL": "http://backend:5000"})
	if got := ResolveBrowserBaseURL(env, "https://portal.example.com"); got != "http://backend:5000" {
		t.Fatalf("expected server base, got %q", got)
	}
	if got := ResolveBrowserBaseURL(envOf(nil), ""); got != "http://localhost:5000" {
		t.Fatalf("expected default, got %q", got)
	}
}
