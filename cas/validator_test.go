package cas_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/cas"
	"github.com/campushub/portal/internal/errors"
)

const successBody = `<cas:serviceResponse xmlns:cas="http://www.yale.edu/tp/cas">
  <cas:authenticationSuccess>
    <cas:user>jdupont</cas:user>
    <cas:attributes>
      <cas:givenName>Jean</cas:givenName>
      <cas:sn>Dupont</cas:sn>
      <cas:mail>jean.dupont@example.edu</cas:mail>
      <cas:memberOf>staff;faculty;cn=portal-users</cas:memberOf>
      <cas:authenticationDate>2026-01-15T10:00:00Z</cas:authenticationDate>
      <cas:clientIpAddress>10.1.2.3</cas:clientIpAddress>
    </cas:attributes>
  </cas:authenticationSuccess>
</cas:serviceResponse>`

const failureBody = `<cas:serviceResponse xmlns:cas="http://www.yale.edu/tp/cas">
  <cas:authenticationFailure code="INVALID_TICKET">Ticket ST-bad not recognized</cas:authenticationFailure>
</cas:serviceResponse>`

// newCasStub returns a validator pointed at a stub CAS server along with the
// values of the last validation request it saw.
func newCasStub(t *testing.T, body string) (*cas.Validator, *map[string]string) {
	t.Helper()

	lastQuery := map[string]string{}
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cas/p3/serviceValidate", r.URL.Path)
		lastQuery["service"] = r.URL.Query().Get("service")
		lastQuery["ticket"] = r.URL.Query().Get("ticket")
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(stub.Close)

	return cas.NewValidator(stub.URL, 2*time.Second), &lastQuery
}

func TestValidateSuccess(t *testing.T) {
	validator, lastQuery := newCasStub(t, successBody)

	service := "https://portal.example.edu/api/auth/cas/callback?redirect=%2F"
	attrs, err := validator.Validate(context.Background(), "ST-123", service)
	require.NoError(t, err)

	// The service URL must reach CAS byte-identical
	require.Equal(t, service, (*lastQuery)["service"])
	require.Equal(t, "ST-123", (*lastQuery)["ticket"])

	require.Equal(t, "Jean", attrs.User.GivenName)
	require.Equal(t, "Dupont", attrs.User.FamilyName)
	require.Equal(t, "Jean Dupont", attrs.User.DisplayName) // givenName + familyName fallback
	require.Equal(t, "jean.dupont@example.edu", attrs.User.Mail)
	require.Equal(t, []string{"staff", "faculty", "cn=portal-users"}, attrs.User.Roles)
	require.Equal(t, "2026-01-15T10:00:00Z", attrs.AuthDate)
	require.Equal(t, "10.1.2.3", attrs.ClientIP)
}

func TestValidateExplicitDisplayName(t *testing.T) {
	body := `<cas:authenticationSuccess><cas:displayName>Pr. Jean Dupont</cas:displayName></cas:authenticationSuccess>`
	validator, _ := newCasStub(t, body)

	attrs, err := validator.Validate(context.Background(), "ST-1", "svc")
	require.NoError(t, err)
	require.Equal(t, "Pr. Jean Dupont", attrs.User.DisplayName)
}

func TestValidatePartialAttributes(t *testing.T) {
	// Missing tags must not fail validation
	body := `<authenticationSuccess><user>jdupont</user></authenticationSuccess>`
	validator, _ := newCasStub(t, body)

	attrs, err := validator.Validate(context.Background(), "ST-1", "svc")
	require.NoError(t, err)
	require.Empty(t, attrs.User.DisplayName)
	require.Empty(t, attrs.User.Mail)
	require.Nil(t, attrs.User.Roles)
}

func TestValidateRejection(t *testing.T) {
	validator, _ := newCasStub(t, failureBody)

	_, err := validator.Validate(context.Background(), "ST-bad", "svc")
	require.ErrorIs(t, err, errors.ErrValidationFailed)
}

func TestValidateTransportFailure(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	stub.Close() // validator now dials a dead server

	validator := cas.NewValidator(stub.URL, 500*time.Millisecond)
	_, err := validator.Validate(context.Background(), "ST-1", "svc")
	require.ErrorIs(t, err, errors.ErrValidationFailed)
}

func TestValidateTimeout(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	t.Cleanup(stub.Close)

	validator := cas.NewValidator(stub.URL, 100*time.Millisecond)
	_, err := validator.Validate(context.Background(), "ST-1", "svc")
	require.ErrorIs(t, err, errors.ErrValidationFailed)
}

func TestLoginURL(t *testing.T) {
	validator := cas.NewValidator("https://cas.example.edu", time.Second)

	got := validator.LoginURL("https://portal.example.edu/api/auth/cas/callback?redirect=%2Fapps")
	require.Equal(t,
		"https://cas.example.edu/login?service=https%3A%2F%2Fportal.example.edu%2Fapi%2Fauth%2Fcas%2Fcallback%3Fredirect%3D%252Fapps",
		got)
}
