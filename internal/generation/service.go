package generation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-study/internal/domain"
)

// OutcomeSuccess is the outcome label recorded for successful generations.
const OutcomeSuccess = "success"

// Recorder observes finished generation requests. outcome is OutcomeSuccess
// or the string form of the failure's ErrorKind.
type Recorder interface {
	ObserveGeneration(mode domain.StudyMode, outcome string, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveGeneration(domain.StudyMode, string, time.Duration) {}

// Result is a successfully generated artifact plus request metadata.
type Result struct {
	ID          uuid.UUID
	Topic       string
	Mode        domain.StudyMode
	Artifact    domain.Artifact
	GeneratedAt time.Time
}

// Service is the single entry point for study-material generation.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	client   Client
	logger   *slog.Logger
	recorder Recorder
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder installs a Recorder for generation outcomes.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// NewService creates a Service that sends requests through client.
//
// Parameters:
//   - client: The remote generation client
//   - logger: A structured logger for operation logging
//   - opts: Optional settings such as WithRecorder
//
// Returns:
//   - A properly initialized Service or an error if a dependency is missing
func NewService(client Client, logger *slog.Logger, opts ...Option) (*Service, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	s := &Service{
		client:   client,
		logger:   logger,
		recorder: noopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate produces study material for topic in the given mode.
//
// The credential is checked first, then the topic and mode; none of these
// failures reach the remote client. Otherwise exactly one remote call is
// made and its reply is decoded by the mode's pipeline.
//
// Parameters:
//   - ctx: Context passed through to the remote client
//   - credential: The caller's provider API key; never logged or retained
//   - topic: The subject to study, substituted verbatim into the prompt
//   - mode: The study mode selecting prompt, schema and decoder
//
// Returns:
//   - A Result holding exactly one artifact
//   - A *ClassifiedError on any failure
func (s *Service) Generate(
	ctx context.Context,
	credential string,
	topic string,
	mode domain.StudyMode,
) (*Result, error) {
	start := s.now()
	id := uuid.New()
	log := s.logger.With("generation_id", id.String(), "mode", string(mode))

	result, err := s.generate(ctx, log, credential, topic, mode)
	elapsed := s.now().Sub(start)

	if err != nil {
		classified := Classify(err)
		s.recorder.ObserveGeneration(mode, string(classified.Kind), elapsed)
		log.WarnContext(ctx, "study material generation failed",
			"error_kind", string(classified.Kind),
			"duration_ms", elapsed.Milliseconds())
		return nil, classified
	}

	result.ID = id
	s.recorder.ObserveGeneration(mode, OutcomeSuccess, elapsed)
	log.InfoContext(ctx, "study material generated",
		"topic_length", len(topic),
		"duration_ms", elapsed.Milliseconds())
	return result, nil
}

func (s *Service) generate(
	ctx context.Context,
	log *slog.Logger,
	credential string,
	topic string,
	mode domain.StudyMode,
) (*Result, error) {
	if credential == "" {
		return nil, ErrMissingCredential
	}

	p, ok := pipelines[mode]
	if !ok {
		return nil, ErrUnsupportedMode
	}

	prompt, err := BuildPrompt(topic, mode)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "sending generation request",
		"prompt_length", len(prompt.Text),
		"structured", prompt.Schema != nil)

	raw, err := s.client.Send(ctx, Request{
		Credential: credential,
		Prompt:     prompt.Text,
		Schema:     prompt.Schema,
	})
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "received generation response", "response_length", len(raw))

	artifact, err := p.decode(raw)
	if err != nil {
		return nil, err
	}

	return &Result{
		Topic:       topic,
		Mode:        mode,
		Artifact:    artifact,
		GeneratedAt: s.now().UTC(),
	}, nil
}
