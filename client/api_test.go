package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession is a SessionManager with scripted renewal behavior.
type fakeSession struct {
	access     string
	newAccess  string
	renewErr   error
	renewCalls int
}

func (s *fakeSession) AccessToken(ctx context.Context) (string, error) {
	return s.access, nil
}

func (s *fakeSession) Renew(ctx context.Context, staleAccess string) (string, error) {
	s.renewCalls++
	if s.renewErr != nil {
		return "", s.renewErr
	}
	s.access = s.newAccess
	return s.newAccess, nil
}

func TestCall_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	c.AttachSession(&fakeSession{access: "current-access"})

	err := c.Call(context.Background(), http.MethodGet, "/appointments/", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer current-access", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestCall_ProceedsUnauthenticatedWithoutCredential(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	c.AttachSession(&fakeSession{access: ""})

	var out []Establishment
	err := c.Call(context.Background(), http.MethodGet, "/establishments/", nil, &out)
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no Authorization header should be sent without a credential")
}

// A call that fails authorization is retried exactly once after a successful
// renewal; the caller observes only the final successful result.
func TestCall_RenewsAndRetriesOnceOn401(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if r.Header.Get("Authorization") != "Bearer fresh-access" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"token expired"}`))
			return
		}
		w.Write([]byte(`{"count":0,"next":null,"results":[]}`))
	}))
	defer server.Close()

	session := &fakeSession{access: "expired-access", newAccess: "fresh-access"}
	c := NewClient(server.URL)
	c.AttachSession(session)

	var out AppointmentPage
	err := c.Call(context.Background(), http.MethodGet, "/appointments/", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, 2, attempts, "original call plus exactly one retry")
	assert.Equal(t, 1, session.renewCalls)
}

// A call that fails authorization twice in a row must not trigger a second
// renewal for the same call.
func TestCall_AtMostOneRetryPerCall(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"still rejected"}`))
	}))
	defer server.Close()

	session := &fakeSession{access: "expired-access", newAccess: "still-rejected-access"}
	c := NewClient(server.URL)
	c.AttachSession(session)

	err := c.Call(context.Background(), http.MethodGet, "/appointments/", nil, nil)

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, session.renewCalls, "a second renewal must not happen for the same call")
}

// When renewal fails, the original call's failure is surfaced to the caller
// and no retry is issued.
func TestCall_RenewalFailureSurfacesToCaller(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	renewErr := errors.New("refresh token rejected")
	session := &fakeSession{access: "expired-access", renewErr: renewErr}
	c := NewClient(server.URL)
	c.AttachSession(session)

	err := c.Call(context.Background(), http.MethodGet, "/appointments/", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, renewErr)
	assert.Equal(t, 1, attempts, "no retry after a failed renewal")
}

func TestCall_OtherStatusesPassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"not found"}`))
	}))
	defer server.Close()

	session := &fakeSession{access: "current-access"}
	c := NewClient(server.URL)
	c.AttachSession(session)

	err := c.Call(context.Background(), http.MethodGet, "/appointments/999/", nil, nil)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, 0, session.renewCalls, "only authorization failures trigger renewal")
	assert.False(t, IsUnauthorized(err))
}

func TestCall_ParsesResponseInto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"status":"confirmed"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)

	var appt Appointment
	err := c.Call(context.Background(), http.MethodGet, "/appointments/7/", nil, &appt)
	require.NoError(t, err)
	assert.Equal(t, 7, appt.ID)
	assert.Equal(t, StatusConfirmed, appt.Status)
}

func TestCall_MalformedResponseJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	c := NewClient(server.URL)

	var appt Appointment
	err := c.Call(context.Background(), http.MethodGet, "/appointments/1/", nil, &appt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
