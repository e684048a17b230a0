package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sqlgen/ai"
	"sqlgen/dialect"
	"sqlgen/models"
	"sqlgen/observability"
)

// ErrMissingParameter is returned when the request has no query text.
var ErrMissingParameter = errors.New(`missing "q" parameter`)

const NoSQLPlaceholder = "/* No SQL generated */"

// ErrorPlaceholder formats a generation failure as a SQL comment.
func ErrorPlaceholder(err error) string {
	return fmt.Sprintf("/* Error: %s */", err.Error())
}

type SQLService struct {
	registry  *dialect.Registry
	generator ai.Generator
	logger    *slog.Logger
}

func NewSQLService(registry *dialect.Registry, generator ai.Generator, logger *slog.Logger) *SQLService {
	if registry == nil {
		registry = dialect.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLService{
		registry:  registry,
		generator: generator,
		logger:    logger,
	}
}

func (s *SQLService) Registry() *dialect.Registry {
	return s.registry
}

// GenerateSQL asks the model for SQL in the requested dialect. Model failures
// are not returned as errors; they come back as a placeholder comment with
// Failed set. The only error is ErrMissingParameter.
func (s *SQLService) GenerateSQL(ctx context.Context, req models.GenerationRequest) (models.GenerationResult, error) {
	if req.Query == "" {
		return models.GenerationResult{}, ErrMissingParameter
	}

	entry := s.registry.Resolve(req.Dialect)
	prompt := ai.BuildSQLPrompt(entry.Instruction, req.Query)

	s.logger.DebugContext(ctx, "generating sql",
		slog.String("dialect", entry.Key),
		slog.Int("prompt_length", len(prompt)),
	)

	start := time.Now()
	raw, err := s.generator.Generate(ctx, prompt)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		observability.ObserveGeneration(entry.Key, observability.OutcomeError, elapsed)
		s.logger.ErrorContext(ctx, "generation error",
			slog.String("trace_id", observability.TraceIDFromContext(ctx)),
			slog.String("dialect", entry.Key),
			slog.Any("error", err),
		)
		return models.GenerationResult{
			SQL:     ErrorPlaceholder(err),
			Dialect: entry.Key,
			Failed:  true,
		}, nil
	}

	sql := ai.CleanSQL(raw)
	if sql == "" {
		observability.ObserveGeneration(entry.Key, observability.OutcomeEmpty, elapsed)
		sql = NoSQLPlaceholder
	} else {
		observability.ObserveGeneration(entry.Key, observability.OutcomeOK, elapsed)
	}

	return models.GenerationResult{
		SQL:     sql,
		Dialect: entry.Key,
	}, nil
}
