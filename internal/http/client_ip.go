package http

import (
	"net"
	"net/http"
	"strings"
)

// clientIP resolves the caller address. A CDN viewer address wins over the first
// X-Forwarded-For hop, which wins over the socket peer.
func clientIP(r *http.Request) string {
	if viewer := strings.TrimSpace(r.Header.Get(headerViewerAddress)); viewer != "" {
		return viewerHost(viewer)
	}
	if forwarded := r.Header.Get(headerForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return stripPort(first)
		}
	}
	return stripPort(r.RemoteAddr)
}

// stripPort drops the port of "host:port" and "[v6]:port" forms. A value that already parses as an
// IP is returned unchanged, so a bare IPv6 address keeps its last group.
func stripPort(addr string) string {
	if net.ParseIP(addr) != nil {
		return addr
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// viewerHost drops the port CloudFront always appends to the viewer address. IPv6 viewers arrive
// unbracketed ("2001:db8::1:443"), so the last colon group is the port.
func viewerHost(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	if i := strings.LastIndex(addr, ":"); i > 0 && net.ParseIP(addr[:i]) != nil {
		return addr[:i]
	}
	return addr
}
