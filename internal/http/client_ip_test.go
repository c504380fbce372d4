package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "viewer address with port",
			headers:    map[string]string{"CloudFront-Viewer-Address": "203.0.113.9:46532", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "10.0.0.1:443",
			want:       "203.0.113.9",
		},
		{
			name:       "ipv6 viewer address",
			headers:    map[string]string{"CloudFront-Viewer-Address": "2001:db8::1:46532"},
			remoteAddr: "10.0.0.1:443",
			want:       "2001:db8::1",
		},
		{
			name:       "first forwarded hop",
			headers:    map[string]string{"X-Forwarded-For": " 198.51.100.1 , 10.0.0.2"},
			remoteAddr: "10.0.0.1:443",
			want:       "198.51.100.1",
		},
		{
			name:       "ipv6 viewer address whose port looks like a group",
			headers:    map[string]string{"CloudFront-Viewer-Address": "2001:db8::1:443"},
			remoteAddr: "10.0.0.1:443",
			want:       "2001:db8::1",
		},
		{
			name:       "bare ipv6 forwarded hop keeps last group",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::1:2, 10.0.0.2"},
			remoteAddr: "10.0.0.1:443",
			want:       "2001:db8::1:2",
		},
		{
			name:       "bracketed ipv6 forwarded hop with port",
			headers:    map[string]string{"X-Forwarded-For": "[2001:db8::1]:1234"},
			remoteAddr: "10.0.0.1:443",
			want:       "2001:db8::1",
		},
		{
			name:       "ipv4 forwarded hop with port",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.1:8080"},
			remoteAddr: "10.0.0.1:443",
			want:       "198.51.100.1",
		},
		{
			name:       "socket peer",
			remoteAddr: "192.0.2.33:5555",
			want:       "192.0.2.33",
		},
		{
			name:       "bracketed ipv6 peer",
			remoteAddr: "[2001:db8::7]:5555",
			want:       "2001:db8::7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/e", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

func TestStripPort(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"2001:db8::1:2":      "2001:db8::1:2",
		"2001:db8::1":        "2001:db8::1",
		"[2001:db8::1]:1234": "2001:db8::1",
		"192.0.2.1:80":       "192.0.2.1",
		"192.0.2.1":          "192.0.2.1",
		"not-an-ip":          "not-an-ip",
	}
	for in, want := range tests {
		assert.Equal(t, want, stripPort(in), in)
	}
}
