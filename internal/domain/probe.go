package domain

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

const (
	MessageRunning = "Backend is running"

	StatusConnected = "DB connected"
	StatusError     = "DB error"
)

// ConnectionAttempt holds the parameters of a single, non-reused database
// session. SSLMode and ConnectTimeout are optional; empty and zero leave the
// driver defaults in place.
type ConnectionAttempt struct {
	Host           string
	Port           int
	Database       string
	User           string
	Password       string
	SSLMode        string
	ConnectTimeout time.Duration
}

// DSN renders the attempt as a postgres:// URL understood by both pgx and
// lib/pq. Credentials are escaped, so passwords may contain any character.
func (a ConnectionAttempt) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(a.User, a.Password),
		Host:   net.JoinHostPort(a.Host, strconv.Itoa(a.Port)),
		Path:   "/" + a.Database,
	}
	q := url.Values{}
	if a.SSLMode != "" {
		q.Set("sslmode", a.SSLMode)
	}
	if a.ConnectTimeout > 0 {
		// libpq semantics: whole seconds, minimum 1.
		secs := int(a.ConnectTimeout.Round(time.Second) / time.Second)
		if secs < 1 {
			secs = 1
		}
		q.Set("connect_timeout", strconv.Itoa(secs))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ProbeResult is the outcome of one probe. A nil Err means the connection was
// opened and closed successfully.
type ProbeResult struct {
	Err      error
	Duration time.Duration
}

// Succeeded builds a successful result.
func Succeeded(d time.Duration) ProbeResult {
	return ProbeResult{Duration: d}
}

// Failed wraps err as a ConnectionError unless it already is one.
func Failed(err error, d time.Duration) ProbeResult {
	ce, ok := err.(*ConnectionError)
	if !ok {
		ce = &ConnectionError{Err: err}
	}
	return ProbeResult{Err: ce, Duration: d}
}

func (r ProbeResult) OK() bool { return r.Err == nil }

// Outcome is the label used for metrics and logs: "connected" or "error".
func (r ProbeResult) Outcome() string {
	if r.OK() {
		return "connected"
	}
	return "error"
}

// DBCheckResponse is the JSON body of GET /db-check.
type DBCheckResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Response maps the result to its wire form.
func (r ProbeResult) Response() DBCheckResponse {
	if r.OK() {
		return DBCheckResponse{Status: StatusConnected}
	}
	return DBCheckResponse{Status: StatusError, Error: r.Err.Error()}
}
