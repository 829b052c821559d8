package buttondown

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

type failingDoer struct {
	calls int
}

func (d *failingDoer) Do(_ *http.Request) (*http.Response, error) {
	d.calls++
	return nil, io.ErrUnexpectedEOF
}

type capturedRequest struct {
	method        string
	path          string
	authorization string
	contentType   string
	body          []byte
}

// newTestServer answers every request with status and records what it received.
func newTestServer(t *testing.T, status int) (*httptest.Server, *[]capturedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		received []capturedRequest
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		mu.Lock()
		received = append(received, capturedRequest{
			method:        r.Method,
			path:          r.URL.Path,
			authorization: r.Header.Get("Authorization"),
			contentType:   r.Header.Get("Content-Type"),
			body:          body,
		})
		mu.Unlock()

		w.WriteHeader(status)
		if status != http.StatusNoContent {
			_, _ = w.Write([]byte(`{"detail":"from test server"}`))
		}
	}))
	t.Cleanup(srv.Close)

	return srv, &received
}

func newTestSubmitter(notifier Notifier, opts ...Option) *Submitter {
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	return New(notifier, opts...)
}

func TestSubmitNotConfigured(t *testing.T) {
	srv, received := newTestServer(t, http.StatusOK)
	notifier := &recordingNotifier{}

	s := newTestSubmitter(notifier, WithClient(srv.Client()), WithEndpoint(srv.URL+"/v1/drafts"))
	res := s.Submit(context.Background(), "title", "body", "")

	assert.Equal(t, NotConfigured, res.Outcome)
	require.ErrorIs(t, res.Err, ErrNotConfigured)
	assert.Zero(t, res.StatusCode)
	assert.Empty(t, *received)
	assert.Equal(t, []string{MsgNotConfigured}, notifier.messages)
}

func TestSubmitStatus(t *testing.T) {
	testCases := []struct {
		name            string
		status          int
		expectedOutcome Outcome
		expectedMessage string
	}{
		{name: "ok", status: http.StatusOK, expectedOutcome: Sent, expectedMessage: MsgSent},
		{name: "created", status: http.StatusCreated, expectedOutcome: Sent, expectedMessage: MsgSent},
		{name: "no content", status: http.StatusNoContent, expectedOutcome: Sent, expectedMessage: MsgSent},
		{name: "unauthorized", status: http.StatusUnauthorized, expectedOutcome: Failed, expectedMessage: MsgFailed},
		{name: "bad request", status: http.StatusBadRequest, expectedOutcome: Failed, expectedMessage: MsgFailed},
		{name: "server error", status: http.StatusInternalServerError, expectedOutcome: Failed, expectedMessage: MsgFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, received := newTestServer(t, tc.status)
			notifier := &recordingNotifier{}

			s := newTestSubmitter(notifier, WithClient(srv.Client()), WithEndpoint(srv.URL+"/v1/drafts"))
			res := s.Submit(context.Background(), "Weekly notes", "# Hello", "abc-123")

			assert.Equal(t, tc.expectedOutcome, res.Outcome)
			assert.Equal(t, tc.status, res.StatusCode)
			assert.Equal(t, []string{tc.expectedMessage}, notifier.messages)
			require.Len(t, *received, 1)

			if tc.expectedOutcome == Sent {
				require.NoError(t, res.Err)
			} else {
				require.ErrorIs(t, res.Err, ErrUnexpectedStatus)
			}
		})
	}
}

func TestSubmitRequestShape(t *testing.T) {
	srv, received := newTestServer(t, http.StatusCreated)

	s := newTestSubmitter(&recordingNotifier{}, WithClient(srv.Client()), WithEndpoint(srv.URL+"/v1/drafts"))
	res := s.Submit(context.Background(), "My note", "some body", "  key with spaces-")
	require.Equal(t, Sent, res.Outcome)

	require.Len(t, *received, 1)
	got := (*received)[0]

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/v1/drafts", got.path)
	assert.Equal(t, "Token   key with spaces-", got.authorization)
	assert.Equal(t, "application/json", got.contentType)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(got.body, &fields))
	assert.Len(t, fields, 2)
	assert.Equal(t, "some body", fields["body"])
	assert.Equal(t, "My note", fields["subject"])
}

func TestSubmitBodyRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		title string
		body  string
	}{
		{name: "empty strings", title: "", body: ""},
		{name: "quotes", title: `say "hi"`, body: `he said "no" and 'yes'`},
		{name: "newlines and tabs", title: "line\none", body: "a\n\tb\r\nc\n"},
		{name: "unicode", title: "Grüße 👋", body: "日本語のテキスト — ünïcödé"},
		{name: "html", title: "<b>bold</b> & co", body: "<script>alert('x')</script>"},
		{name: "backslashes", title: `C:\notes\`, body: `\u0041 is not decoded`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, received := newTestServer(t, http.StatusOK)

			s := newTestSubmitter(&recordingNotifier{}, WithClient(srv.Client()), WithEndpoint(srv.URL))
			res := s.Submit(context.Background(), tc.title, tc.body, "abc-123")
			require.Equal(t, Sent, res.Outcome)
			require.Len(t, *received, 1)

			var parsed Draft
			require.NoError(t, json.Unmarshal((*received)[0].body, &parsed))
			assert.Equal(t, tc.title, parsed.Subject)
			assert.Equal(t, tc.body, parsed.Body)
		})
	}
}

func TestSubmitTransportError(t *testing.T) {
	notifier := &recordingNotifier{}
	doer := &failingDoer{}

	s := newTestSubmitter(notifier, WithClient(doer))

	var res Result
	require.NotPanics(t, func() {
		res = s.Submit(context.Background(), "title", "body", "abc-123")
	})

	assert.Equal(t, Failed, res.Outcome)
	assert.Zero(t, res.StatusCode)
	require.ErrorIs(t, res.Err, io.ErrUnexpectedEOF)
	assert.Equal(t, 1, doer.calls)
	assert.Equal(t, []string{MsgFailed}, notifier.messages)
}

func TestSubmitUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	notifier := &recordingNotifier{}
	s := newTestSubmitter(notifier, WithEndpoint(url))
	res := s.Submit(context.Background(), "title", "body", "abc-123")

	assert.Equal(t, Failed, res.Outcome)
	require.Error(t, res.Err)
	assert.Equal(t, []string{MsgFailed}, notifier.messages)
}

func TestSubmitLogsRejectedResponse(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusUnauthorized)

	var logs safeBuffer
	s := New(&recordingNotifier{},
		WithClient(srv.Client()),
		WithEndpoint(srv.URL),
		WithLogger(zerolog.New(&logs)),
	)
	res := s.Submit(context.Background(), "title", "body", "bad-key")
	require.Equal(t, Failed, res.Outcome)

	out := logs.String()
	assert.Contains(t, out, `"status_code":401`)
	assert.Contains(t, out, "from test server")
	assert.NotContains(t, out, "bad-key")
}

func TestSubmitConcurrentCallsAreIndependent(t *testing.T) {
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	notifier := &recordingNotifier{}
	s := newTestSubmitter(notifier, WithClient(srv.Client()), WithEndpoint(srv.URL))

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, Sent, s.Submit(context.Background(), "t", "b", "k").Outcome)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, []string{MsgSent, MsgSent}, notifier.messages)
}

func TestSubmitCountsOutcomes(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK)

	reg := prometheus.NewRegistry()
	counter := NewOutcomeCounter(reg)

	s := newTestSubmitter(&recordingNotifier{},
		WithClient(srv.Client()),
		WithEndpoint(srv.URL),
		WithOutcomeCounter(counter),
	)

	s.Submit(context.Background(), "t", "b", "k")
	s.Submit(context.Background(), "t", "b", "k")
	s.Submit(context.Background(), "t", "b", "")

	assert.InDelta(t, 2, testutil.ToFloat64(counter.WithLabelValues(Sent.String())), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(counter.WithLabelValues(NotConfigured.String())), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(counter.WithLabelValues(Failed.String())), 0)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "not_configured", NotConfigured.String())
	assert.Equal(t, "sent", Sent.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

type safeBuffer struct {
	mu  sync.Mutex
	buf []byte
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}

func TestSubmitInvalidUTF8(t *testing.T) {
	srv, received := newTestServer(t, http.StatusCreated)

	var logs safeBuffer
	s := New(&recordingNotifier{},
		WithClient(srv.Client()),
		WithEndpoint(srv.URL),
		WithLogger(zerolog.New(&logs)),
	)
	res := s.Submit(context.Background(), "menu", "caf\xe9", "abc-123")
	require.Equal(t, Sent, res.Outcome)

	assert.Contains(t, logs.String(), "not valid UTF-8")

	require.Len(t, *received, 1)
	var parsed Draft
	require.NoError(t, json.Unmarshal((*received)[0].body, &parsed))
	assert.Equal(t, "caf\uFFFD", parsed.Body)
}

func TestSubmitValidUTF8DoesNotWarn(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusCreated)

	var logs safeBuffer
	s := New(&recordingNotifier{},
		WithClient(srv.Client()),
		WithEndpoint(srv.URL),
		WithLogger(zerolog.New(&logs)),
	)
	require.Equal(t, Sent, s.Submit(context.Background(), "menu", "café", "abc-123").Outcome)

	assert.NotContains(t, logs.String(), "not valid UTF-8")
}
