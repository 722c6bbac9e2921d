package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"strings"
)

// TransportKind categorizes a failed exchange for user feedback.
type TransportKind int

const (
	// TransportUnknown is any failure not covered below, including bad HTTP
	// status codes and undecodable replies.
	TransportUnknown TransportKind = iota
	// TransportDNS means the endpoint host could not be resolved.
	TransportDNS
	// TransportTLS means certificate verification or the handshake failed.
	TransportTLS
	// TransportTimeout means the configured timeout or a deadline expired.
	TransportTimeout
	// TransportNetwork means the connection was refused, reset or unreachable.
	TransportNetwork
)

func (k TransportKind) String() string {
	switch k {
	case TransportDNS:
		return "DNS resolution error"
	case TransportTLS:
		return "TLS certificate error"
	case TransportTimeout:
		return "timeout"
	case TransportNetwork:
		return "network error"
	default:
		return "transport error"
	}
}

// classifyTransport inspects the error chain of a failed HTTP exchange.
func classifyTransport(err error) TransportKind {
	if err == nil {
		return TransportUnknown
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return TransportDNS
	}

	if isTLSError(err) {
		return TransportTLS
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return TransportTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return TransportTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return TransportNetwork
	}
	msg := err.Error()
	for _, keyword := range []string{"connection refused", "connection reset", "network is unreachable", "no route to host"} {
		if strings.Contains(msg, keyword) {
			return TransportNetwork
		}
	}

	return TransportUnknown
}

func isTLSError(err error) bool {
	var (
		certErr   x509.CertificateInvalidError
		hostErr   x509.HostnameError
		authErr   x509.UnknownAuthorityError
		verifyErr *tls.CertificateVerificationError
		recordErr tls.RecordHeaderError
	)
	if errors.As(err, &certErr) || errors.As(err, &hostErr) || errors.As(err, &authErr) ||
		errors.As(err, &verifyErr) || errors.As(err, &recordErr) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "x509:") || strings.Contains(msg, "tls:")
}
