package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/pkg/assistant/prompt"
	"spi-eshop-be/pkg/assistant/response"
	"spi-eshop-be/pkg/department"
	"spi-eshop-be/pkg/llm"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 1
	DefaultBackoff    = 250 * time.Millisecond

	MsgQueryRequired   = "Search query is required"
	MsgMessageRequired = "Message is required"
	MsgUnavailable     = "I apologize, but I encountered an error. Please try again or contact support."

	logModule = "AIAssistant"
)

type Failure string

const (
	FailureNone                Failure = ""
	FailureEmptyQuery          Failure = "EMPTY_QUERY"
	FailureUpstreamUnavailable Failure = "UPSTREAM_UNAVAILABLE"
)

// Result is what search and chat callers receive. Message is never empty.
type Result struct {
	Success     bool     `json:"success"`
	Department  *string  `json:"department"`
	SubCategory *string  `json:"subCategory"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
	Degraded    bool     `json:"degraded,omitempty"`
	Failure     Failure  `json:"failure,omitempty"`
}

// AnswerCache stores successful search results by normalized query.
type AnswerCache interface {
	Get(key string) (Result, bool)
	Set(key string, res Result)
}

type Config struct {
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
	Cache      AnswerCache
	Logger     logger.ILogger
	// Transcript receives prompts and raw replies; defaults to Logger.
	Transcript logger.ILogger
}

type Orchestrator struct {
	catalog     *department.Catalog
	interpreter *response.Interpreter
	provider    llm.LLMProvider
	timeout     time.Duration
	maxRetries  int
	backoff     time.Duration
	cache       AnswerCache
	logger      logger.ILogger
	transcript  logger.ILogger
}

func NewOrchestrator(catalog *department.Catalog, provider llm.LLMProvider, cfg Config) *Orchestrator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.MaxRetries > DefaultMaxRetries {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNopLogger()
	}
	if cfg.Transcript == nil {
		cfg.Transcript = cfg.Logger
	}

	return &Orchestrator{
		catalog:     catalog,
		interpreter: response.NewInterpreter(catalog),
		provider:    provider,
		timeout:     cfg.Timeout,
		maxRetries:  cfg.MaxRetries,
		backoff:     cfg.Backoff,
		cache:       cfg.Cache,
		logger:      cfg.Logger,
		transcript:  cfg.Transcript,
	}
}

func (o *Orchestrator) Catalog() *department.Catalog {
	return o.catalog
}

// Search answers a one-shot catalog query.
func (o *Orchestrator) Search(ctx context.Context, query string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return rejected(MsgQueryRequired)
	}

	key := NormalizeQuery(query)
	if o.cache != nil {
		if cached, ok := o.cache.Get(key); ok {
			o.logger.Debug(logModule, "Answer cache hit", map[string]interface{}{"query": key})
			return cloneResult(cached)
		}
	}

	matched := o.catalog.Match(query)
	promptText := prompt.Build(o.catalog, query, matched)

	raw, err := o.call(ctx, "search", func(ctx context.Context) (string, error) {
		return o.provider.Generate(ctx, promptText)
	})
	if err != nil {
		return o.degraded(query, matched, err)
	}

	res := o.interpreted(raw, matched)
	if o.cache != nil {
		o.cache.Set(key, cloneResult(res))
	}
	return res
}

// Chat answers a conversational turn. History is supplied by the caller and never stored here.
func (o *Orchestrator) Chat(ctx context.Context, message string, history []llm.Message) Result {
	message = strings.TrimSpace(message)
	if message == "" {
		return rejected(MsgMessageRequired)
	}

	matched := o.catalog.Match(message)
	messages := prompt.BuildChat(o.catalog, message, matched, history)

	raw, err := o.call(ctx, "chat", func(ctx context.Context) (string, error) {
		return o.provider.Chat(ctx, messages)
	})
	if err != nil {
		return o.degraded(message, matched, err)
	}

	return o.interpreted(raw, matched)
}

// call runs fn under the configured deadline, retrying transient failures up to maxRetries times.
func (o *Orchestrator) call(ctx context.Context, channel string, fn func(context.Context) (string, error)) (string, error) {
	if o.provider == nil {
		return "", errors.New("no language model configured")
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= o.maxRetries; attempt++ {
		if attempt > 0 {
			o.logger.Warn(logModule, "Retrying upstream call", map[string]interface{}{
				"channel": channel,
				"attempt": attempt + 1,
				"error":   lastErr.Error(),
			})
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(o.backoff):
			}
		}

		start := time.Now()
		raw, err := fn(ctx)
		if err == nil {
			o.transcript.Info(logModule, "Upstream reply", map[string]interface{}{
				"channel":  channel,
				"attempt":  attempt + 1,
				"duration": time.Since(start).String(),
				"raw":      raw,
			})
			return raw, nil
		}

		lastErr = err
		if ctx.Err() != nil || !llm.IsTransient(err) {
			break
		}
	}

	return "", lastErr
}

func (o *Orchestrator) interpreted(raw string, matched *department.Department) Result {
	r := o.interpreter.Interpret(raw, matched)
	return Result{
		Success:     true,
		Department:  r.Department,
		SubCategory: r.SubCategory,
		Message:     r.Message,
		Suggestions: r.Suggestions,
	}
}

func (o *Orchestrator) degraded(input string, matched *department.Department, err error) Result {
	o.logger.Error(logModule, "Upstream language model unavailable", map[string]interface{}{
		"input": input,
		"error": err.Error(),
	})

	res := Result{
		Success:     false,
		Message:     MsgUnavailable,
		Suggestions: []string{},
		Degraded:    true,
		Failure:     FailureUpstreamUnavailable,
	}
	if matched != nil {
		code := matched.Code
		res.Department = &code
	}
	return res
}

func rejected(msg string) Result {
	return Result{
		Success:     false,
		Message:     msg,
		Suggestions: []string{},
		Failure:     FailureEmptyQuery,
	}
}

// NormalizeQuery lower-cases and collapses whitespace; used as the answer cache key.
func NormalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

func cloneResult(r Result) Result {
	out := r
	out.Suggestions = append([]string{}, r.Suggestions...)
	if r.Department != nil {
		d := *r.Department
		out.Department = &d
	}
	if r.SubCategory != nil {
		s := *r.SubCategory
		out.SubCategory = &s
	}
	return out
}
