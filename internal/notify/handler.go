package notify

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// DefaultTimeout bounds a single notification delivery.
const DefaultTimeout = 5 * time.Second

// Handler gates and dispatches notifications. Permission is decided once by
// RequestPermission; until it is granted, Notify does nothing.
type Handler struct {
	config  Config
	sender  Sender
	logger  *zap.Logger
	timeout time.Duration

	mu      sync.Mutex
	granted bool
	denied  error
	wg      sync.WaitGroup

	// environment probes, replaced in tests
	ciCheck          func() bool
	interactiveCheck func() bool
}

// NewHandler creates a handler with the sender for config.Backend.
func NewHandler(config Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return NewHandlerWithSender(config, NewSender(config.Backend, logger), logger)
}

// NewHandlerWithSender creates a handler with a custom sender.
func NewHandlerWithSender(config Config, sender Sender, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		config:           config,
		sender:           sender,
		logger:           logger.Named("notify"),
		timeout:          DefaultTimeout,
		ciCheck:          isCI,
		interactiveCheck: isInteractive,
	}
}

// Config returns the handler's notification configuration
func (h *Handler) Config() Config {
	return h.config
}

// Granted reports whether RequestPermission succeeded.
func (h *Handler) Granted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.granted
}

// DenyReason returns why the last RequestPermission failed, or nil.
func (h *Handler) DenyReason() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.denied
}

// Permission denial reasons, reported by RequestPermission through the log.
var (
	ErrDisabled       = errors.New("notifications disabled in config")
	ErrCI             = errors.New("running in CI")
	ErrNotInteractive = errors.New("no terminal attached")
	ErrUnavailable    = errors.New("no notification tool available")
)

// RequestPermission decides once whether notifications may be sent.
// It is called at startup; the outcome is logged and never fatal.
func (h *Handler) RequestPermission() bool {
	err := h.checkPermission()

	h.mu.Lock()
	h.granted = err == nil
	h.denied = err
	h.mu.Unlock()

	if err != nil {
		h.logger.Info("notification permission denied", zap.Error(err))
		return false
	}
	h.logger.Info("notification permission granted",
		zap.String("backend", string(h.config.Backend)),
		zap.String("output", string(h.config.Output)),
		zap.String("platform", Platform()),
	)
	return true
}

func (h *Handler) checkPermission() error {
	if !h.config.Enabled {
		return ErrDisabled
	}
	if h.ciCheck() {
		return ErrCI
	}
	if !h.interactiveCheck() {
		return ErrNotInteractive
	}

	visual := h.config.Output.Visual() && h.sender.VisualAvailable()
	sound := h.config.Output.Sound() && h.sender.SoundAvailable()
	if !visual && !sound {
		return ErrUnavailable
	}
	return nil
}

// Notify sends a phase notification without blocking the caller.
func (h *Handler) Notify(title, body string) {
	if !h.Granted() {
		h.logger.Debug("notification suppressed", zap.String("title", title))
		return
	}

	n := Notification{Title: title, Body: body}
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.dispatch(n)
	}()
}

// Wait blocks until every in-flight notification has finished or timed out.
func (h *Handler) Wait() {
	h.wg.Wait()
}

// dispatch delivers n within the handler timeout. Failures are logged and
// never propagate.
func (h *Handler) dispatch(n Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	if err := h.sendNotification(ctx, n); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			h.logger.Warn("notification timed out", zap.String("title", n.Title), zap.Duration("timeout", h.timeout))
			return
		}
		h.logger.Warn("notification delivery failed", zap.String("title", n.Title), zap.Error(err))
		return
	}
	h.logger.Debug("notification delivered", zap.String("title", n.Title))
}

// sendNotification delivers n on every channel the configured output asks
// for. A failure on one channel does not skip the other.
func (h *Handler) sendNotification(ctx context.Context, n Notification) error {
	var errs []error
	if h.config.Output.Visual() {
		errs = append(errs, h.sender.SendVisual(ctx, n))
	}
	if h.config.Output.Sound() {
		errs = append(errs, h.sender.SendSound(ctx, h.config.SoundFile))
	}
	return errors.Join(errs...)
}

// isCI checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
		"TF_BUILD",            // Azure DevOps
		"BITBUCKET_PIPELINES", // Bitbucket
		"CODEBUILD_BUILD_ID",  // AWS CodeBuild
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// isInteractive checks if the session has a TTY on stdout, stderr, or stdin.
func isInteractive() bool {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return true
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}
