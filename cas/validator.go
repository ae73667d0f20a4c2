// Package cas speaks the client side of the CAS protocol: building login
// redirects and exchanging service tickets for identity attributes.
package cas

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/campushub/portal/internal/errors"
	"github.com/campushub/portal/sessions"
)

const (
	loginPath           = "/login"
	serviceValidatePath = "/cas/p3/serviceValidate"

	// Ticket validation responses are small XML documents; anything bigger
	// than this is not a CAS server talking.
	maxResponseBytes = 1 << 20
)

// Attributes is the outcome of a successful ticket validation.
type Attributes struct {
	User     sessions.UserAttributes
	AuthDate string
	ClientIP string
}

// Validator exchanges CAS service tickets for identity attributes against a
// single CAS server.
type Validator struct {
	serverURL string
	client    *http.Client
}

// NewValidator builds a Validator for the CAS server at serverURL. The
// timeout bounds the whole validation round trip; a timeout is reported the
// same way as a rejected ticket.
func NewValidator(serverURL string, timeout time.Duration) *Validator {
	return &Validator{
		serverURL: strings.TrimRight(serverURL, "/"),
		client:    &http.Client{Timeout: timeout},
	}
}

// LoginURL returns the CAS login URL that sends the browser back to
// serviceURL after authentication.
func (v *Validator) LoginURL(serviceURL string) string {
	return v.serverURL + loginPath + "?service=" + url.QueryEscape(serviceURL)
}

// Validate redeems a service ticket. The serviceURL must be byte-identical to
// the one presented to CAS at login time, query string included; CAS rejects
// the ticket otherwise.
//
// Transport failures, timeouts, and protocol rejections all surface as
// errors.ErrValidationFailed. Callers must not distinguish them.
func (v *Validator) Validate(ctx context.Context, ticket, serviceURL string) (Attributes, error) {
	validateURL := v.serverURL + serviceValidatePath +
		"?service=" + url.QueryEscape(serviceURL) +
		"&ticket=" + url.QueryEscape(ticket)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, validateURL, nil)
	if err != nil {
		return Attributes{}, errors.Wrapf(errors.ErrValidationFailed, "building request")
	}

	resp, err := v.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("ticket", ticketPrefix(ticket)).Msg("CAS validation request failed")
		return Attributes{}, errors.ErrValidationFailed
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Error().Err(err).Str("ticket", ticketPrefix(ticket)).Msg("reading CAS validation response failed")
		return Attributes{}, errors.ErrValidationFailed
	}

	text := string(body)
	if !strings.Contains(text, "authenticationSuccess") {
		log.Warn().Str("ticket", ticketPrefix(ticket)).Msg("CAS rejected ticket")
		return Attributes{}, errors.ErrValidationFailed
	}

	return extractAttributes(text), nil
}

// extractAttributes pulls the optional identity attributes out of a
// successful validation body. Missing tags never fail the validation.
func extractAttributes(body string) Attributes {
	givenName, _ := extractTag(body, "givenName")
	familyName, _ := firstTag(body, "sn", "familyName")

	displayName, ok := extractTag(body, "displayName")
	if !ok {
		displayName = strings.TrimSpace(givenName + " " + familyName)
	}

	mail, _ := firstTag(body, "mail", "email")

	var roles []string
	if raw, ok := firstTag(body, "roles", "memberOf", "groups"); ok {
		roles = splitRoles(raw)
	}

	authDate, _ := extractTag(body, "authenticationDate")
	clientIP, _ := extractTag(body, "clientIpAddress")

	return Attributes{
		User: sessions.UserAttributes{
			DisplayName: displayName,
			GivenName:   givenName,
			FamilyName:  familyName,
			Mail:        mail,
			Roles:       roles,
		},
		AuthDate: authDate,
		ClientIP: clientIP,
	}
}

// ticketPrefix truncates a ticket for logging. Full tickets are single-use
// credentials and never land in logs.
func ticketPrefix(ticket string) string {
	if len(ticket) <= 10 {
		return ticket
	}
	return ticket[:10] + "..."
}
