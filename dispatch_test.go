package fyyur_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fyyur "github.com/rubpy/fyyur-client"
)

//////////////////////////////////////////////////

type recordingNavigator struct {
	mu      sync.Mutex
	targets []string
	err     error
}

func (n *recordingNavigator) Navigate(_ context.Context, target string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.targets = append(n.targets, target)
	return n.err
}

func (n *recordingNavigator) Targets() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.targets...)
}

func awaitOutcome(t *testing.T, ch <-chan fyyur.DeleteOutcome) fyyur.DeleteOutcome {
	t.Helper()

	select {
	case out, ok := <-ch:
		require.True(t, ok, "outcome channel closed without a value")

		_, more := <-ch
		assert.False(t, more, "outcome channel not closed after the outcome")

		return out

	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for outcome")
	}

	return fyyur.DeleteOutcome{}
}

//////////////////////////////////////////////////

func TestDispatch_SuccessNavigatesToRoot(t *testing.T) {
	srv := newVenueServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c, logs := newTestClient(t, srv.URL)
	nav := &recordingNavigator{}

	out := awaitOutcome(t, c.Dispatch(context.Background(), "42", nav))
	require.NoError(t, out.Err)
	assert.True(t, out.Navigated)
	assert.Equal(t, "/", out.Target)
	assert.Equal(t, []string{"/"}, nav.Targets())

	records := logs.Records(t)
	assert.Empty(t, recordsAtLevel(records, "ERROR"))

	info := recordsAtLevel(records, "INFO")
	require.Len(t, info, 1)
	assert.Equal(t, "OK", info[0]["msg"])
	assert.EqualValues(t, http.StatusNoContent, info[0]["status"])
}

func TestDispatch_CustomRedirectPath(t *testing.T) {
	srv := newVenueServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	settings := fyyur.DefaultSettings
	settings.RedirectPath = "/venues"
	c, _ := newTestClient(t, srv.URL, fyyur.WithSettings(settings))
	nav := &recordingNavigator{}

	out := awaitOutcome(t, c.Dispatch(context.Background(), "42", nav))
	require.NoError(t, out.Err)
	assert.Equal(t, []string{"/venues"}, nav.Targets())
}

func TestDispatch_RejectedDoesNotNavigate(t *testing.T) {
	srv := newVenueServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such venue", http.StatusNotFound)
	})
	c, logs := newTestClient(t, srv.URL)
	nav := &recordingNavigator{}

	out := awaitOutcome(t, c.Dispatch(context.Background(), "42", nav))

	var rejected *fyyur.RejectedError
	require.ErrorAs(t, out.Err, &rejected)
	assert.Equal(t, "Not Found", rejected.StatusText)
	assert.False(t, out.Navigated)
	assert.Empty(t, nav.Targets())

	records := logs.Records(t)
	errs := recordsAtLevel(records, "ERROR")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0]["err"], "Not Found")
	assert.Len(t, recordsContaining(t, records, "Not Found"), 1)
}

func TestDispatch_NetworkFailureDoesNotNavigate(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c, logs := newTestClient(t, baseURL)
	nav := &recordingNavigator{}

	var out fyyur.DeleteOutcome
	require.NotPanics(t, func() {
		out = awaitOutcome(t, c.Dispatch(context.Background(), "42", nav))
	})

	require.Error(t, out.Err)
	assert.False(t, out.Navigated)
	assert.Empty(t, nav.Targets())

	records := logs.Records(t)
	assert.Len(t, recordsAtLevel(records, "ERROR"), 1)
	assert.Len(t, recordsContaining(t, records, "cclient.Client.Request"), 1)
}

func TestDispatch_NavigatorFailure(t *testing.T) {
	srv := newVenueServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c, logs := newTestClient(t, srv.URL)
	navErr := errors.New("page unloaded")
	nav := &recordingNavigator{err: navErr}

	out := awaitOutcome(t, c.Dispatch(context.Background(), "42", nav))
	assert.ErrorIs(t, out.Err, navErr)
	assert.False(t, out.Navigated)
	assert.NotNil(t, out.Result)
	assert.Len(t, recordsAtLevel(logs.Records(t), "ERROR"), 1)
}

func TestDispatch_NavigatorPanicIsContained(t *testing.T) {
	srv := newVenueServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c, logs := newTestClient(t, srv.URL)
	nav := fyyur.NavigatorFunc(func(context.Context, string) error {
		panic("boom")
	})

	out := awaitOutcome(t, c.Dispatch(context.Background(), "42", nav))
	require.Error(t, out.Err)
	assert.Contains(t, out.Err.Error(), "boom")
	assert.False(t, out.Navigated)
	assert.Len(t, recordsAtLevel(logs.Records(t), "ERROR"), 1)
}

func TestDispatch_NilNavigator(t *testing.T) {
	srv := newVenueServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c, _ := newTestClient(t, srv.URL)

	out := awaitOutcome(t, c.Dispatch(context.Background(), "42", nil))
	require.NoError(t, out.Err)
	assert.False(t, out.Navigated)
	assert.Len(t, srv.Requests(), 1)
}

func TestDeleteVenueAsync(t *testing.T) {
	srv := newVenueServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c, _ := newTestClient(t, srv.URL)

	out := awaitOutcome(t, c.DeleteVenueAsync(context.Background(), "42"))
	require.NoError(t, out.Err)
	require.NotNil(t, out.Result)
	assert.Equal(t, http.StatusNoContent, out.Result.StatusCode)
	assert.False(t, out.Navigated)
}
