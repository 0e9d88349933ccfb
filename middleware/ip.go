package middleware

import (
	"net"
	"net/http"
	"net/netip"
)

// ClientIP returns the caller address as an IPv4 dotted quad. IPv4-mapped
// IPv6 addresses are unwrapped; any other IPv6 address is reduced to its low
// four bytes. Unparseable addresses are returned as-is.
func ClientIP(r *http.Request) string {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return host
	}

	addr = addr.Unmap()
	if addr.Is4() {
		return addr.String()
	}
	b := addr.As16()
	return netip.AddrFrom4([4]byte{b[12], b[13], b[14], b[15]}).String()
}
