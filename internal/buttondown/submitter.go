package buttondown

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// maxLoggedBody caps how much of a failed response body ends up in the log.
	maxLoggedBody = 1 << 20
)

type (
	// Doer sends an HTTP request. *http.Client satisfies it.
	Doer interface {
		Do(req *http.Request) (*http.Response, error)
	}

	// Notifier shows a short message to the user.
	Notifier interface {
		Notify(message string)
	}

	// Option configures a Submitter.
	Option func(*Submitter)
)

// Submitter creates drafts on Buttondown.
type Submitter struct {
	client   Doer
	notifier Notifier
	logger   zerolog.Logger
	endpoint string
	outcomes *prometheus.CounterVec
}

// WithClient sets the HTTP client used for the request.
func WithClient(c Doer) Option {
	return func(s *Submitter) {
		s.client = c
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Submitter) {
		s.logger = l
	}
}

// WithEndpoint overrides the drafts URL.
func WithEndpoint(url string) Option {
	return func(s *Submitter) {
		s.endpoint = url
	}
}

// WithOutcomeCounter counts every submission by outcome.
func WithOutcomeCounter(c *prometheus.CounterVec) Option {
	return func(s *Submitter) {
		s.outcomes = c
	}
}

// New returns a Submitter reporting to notifier.
// Without options it uses http.DefaultClient, the global zerolog logger and DraftsURL.
func New(notifier Notifier, opts ...Option) *Submitter {
	s := &Submitter{
		client:   http.DefaultClient,
		notifier: notifier,
		logger:   log.Logger,
		endpoint: DraftsURL,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Submit sends title and body as a new draft using apiKey.
// It issues at most one request and always notifies the user exactly once.
func (s *Submitter) Submit(ctx context.Context, title, body, apiKey string) Result {
	res := s.submit(ctx, title, body, apiKey)

	switch res.Outcome {
	case Sent:
		s.notify(MsgSent)
	case NotConfigured:
		s.notify(MsgNotConfigured)
	default:
		s.notify(MsgFailed)
	}

	if s.outcomes != nil {
		s.outcomes.WithLabelValues(res.Outcome.String()).Inc()
	}

	return res
}

func (s *Submitter) submit(ctx context.Context, title, body, apiKey string) Result {
	if apiKey == "" {
		s.logger.Debug().Msg("no api key configured, draft not sent")

		return Result{Outcome: NotConfigured, Err: ErrNotConfigured}
	}

	if !utf8.ValidString(body) || !utf8.ValidString(title) {
		s.logger.Warn().Msg("note is not valid UTF-8, invalid bytes are sent as U+FFFD")
	}

	req, err := s.newRequest(ctx, Draft{Body: body, Subject: title}, apiKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("could not build draft request")

		return Result{Outcome: Failed, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.endpoint).Msg("sending draft failed")

		return Result{Outcome: Failed, Err: errors.Wrap(err, "send draft")}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))

		s.logger.Error().
			Int("status_code", resp.StatusCode).
			Str("status", resp.Status).
			Interface("header", resp.Header).
			Bytes("body", raw).
			AnErr("read_error", readErr).
			Msg("buttondown rejected draft")

		return Result{
			Outcome:    Failed,
			StatusCode: resp.StatusCode,
			Err:        errors.Wrapf(ErrUnexpectedStatus, "status %d", resp.StatusCode),
		}
	}

	// drain so the connection can be reused, the content is not used
	_, _ = io.Copy(io.Discard, resp.Body)

	s.logger.Info().Int("status_code", resp.StatusCode).Str("subject", title).Msg("draft sent")

	return Result{Outcome: Sent, StatusCode: resp.StatusCode}
}

func (s *Submitter) newRequest(ctx context.Context, d Draft, apiKey string) (*http.Request, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(err, "encode draft")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &buf)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	req.Header.Set("Authorization", "Token "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func (s *Submitter) notify(msg string) {
	if s.notifier != nil {
		s.notifier.Notify(msg)
	}
}
