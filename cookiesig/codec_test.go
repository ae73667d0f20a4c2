package cookiesig_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/cookiesig"
	"github.com/campushub/portal/internal/errors"
)

const testKey = "test-signing-key"

func TestSignVerifyRoundTrip(t *testing.T) {
	codec := cookiesig.New(testKey)

	for _, id := range []string{
		"a",
		"0b7c9d5e-1f2a-4b3c-8d9e-0f1a2b3c4d5e",
		"deadbeefdeadbeefdeadbeefdeadbeef",
	} {
		value := codec.Encode(id)
		got, err := codec.Verify(value)
		require.NoError(t, err, "id %q", id)
		require.Equal(t, id, got)
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	codec := cookiesig.New(testKey)
	value := codec.Encode("0b7c9d5e-1f2a-4b3c-8d9e-0f1a2b3c4d5e")

	dot := strings.Index(value, ".")
	sig := value[dot+1:]

	// Flipping any single character of the signature half must invalidate it
	for i := 0; i < len(sig); i++ {
		flipped := []byte(sig)
		if flipped[i] == 'f' {
			flipped[i] = '0'
		} else {
			flipped[i] = 'f'
		}
		if string(flipped) == sig {
			continue
		}
		_, err := codec.Verify(value[:dot+1] + string(flipped))
		require.ErrorIs(t, err, errors.ErrBadSignature, "flipped position %d", i)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	value := cookiesig.New("key-one").Encode("some-session-id")
	_, err := cookiesig.New("key-two").Verify(value)
	require.ErrorIs(t, err, errors.ErrBadSignature)
}

func TestVerifyRejectsMalformedValues(t *testing.T) {
	codec := cookiesig.New(testKey)

	for _, value := range []string{
		"",
		"no-dot-at-all",
		".signature-but-no-id",
		"id-but-no-signature.",
		".",
	} {
		_, err := codec.Verify(value)
		require.ErrorIs(t, err, errors.ErrMalformedCookie, "value %q", value)
	}
}

func TestVerifySplitsOnFirstDot(t *testing.T) {
	codec := cookiesig.New(testKey)
	value := codec.Encode("session-id")

	// Appending garbage after the signature must fail, not be ignored
	_, err := codec.Verify(value + "extra")
	require.Error(t, err)
}

func TestSessionIDFromCookie(t *testing.T) {
	codec := cookiesig.New(testKey)
	value := codec.Encode("my-session")

	require.Equal(t, "my-session", cookiesig.SessionIDFromCookie(value))
	require.Equal(t, "plain", cookiesig.SessionIDFromCookie("plain"))
	require.Equal(t, "", cookiesig.SessionIDFromCookie(""))
}

func TestUAHashIsKeyedAndDeterministic(t *testing.T) {
	codec := cookiesig.New(testKey)

	h1 := codec.UAHash("Mozilla/5.0")
	require.Equal(t, h1, codec.UAHash("Mozilla/5.0"))
	require.NotEqual(t, h1, codec.UAHash("curl/8.0"))
	require.NotEqual(t, h1, cookiesig.New("other-key").UAHash("Mozilla/5.0"))
	require.Len(t, h1, 64) // hex sha256
}
