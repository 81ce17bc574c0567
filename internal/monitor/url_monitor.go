package monitor

import (
	"context"
	"net/http"
	"sync"
	"time"

	customerrors "github.com/axellelanca/linkboard/internal/errors"
	"github.com/axellelanca/linkboard/internal/repository"
	"go.uber.org/zap"
)

// UrlMonitor periodically checks that submitted links are still reachable.
// It remembers the last state of every link and logs transitions.
type UrlMonitor struct {
	linkRepo    repository.LinkRepository
	interval    time.Duration
	knownStates map[uint]bool // link ID -> reachable
	mu          sync.Mutex
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewUrlMonitor creates a monitor that checks every link once per interval.
func NewUrlMonitor(linkRepo repository.LinkRepository, interval time.Duration, logger *zap.Logger) *UrlMonitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UrlMonitor{
		linkRepo:    linkRepo,
		interval:    interval,
		knownStates: make(map[uint]bool),
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: &http.Transport{DisableKeepAlives: true},
		},
		logger: logger.Named("monitor"),
	}
}

// Start runs an immediate check, then one per interval, until ctx is cancelled.
func (m *UrlMonitor) Start(ctx context.Context) {
	m.logger.Info("starting link monitor", zap.Duration("interval", m.interval))
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.checkUrls(ctx)
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("link monitor stopped")
			return
		case <-ticker.C:
			m.checkUrls(ctx)
		}
	}
}

// State reports the last known reachability of a link.
func (m *UrlMonitor) State(linkID uint) (reachable, known bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reachable, known = m.knownStates[linkID]
	return reachable, known
}

func (m *UrlMonitor) checkUrls(ctx context.Context) {
	links, err := m.linkRepo.ListLinks(ctx)
	if err != nil {
		m.logger.Error("failed to retrieve links for monitoring", zap.Error(err))
		return
	}

	for _, link := range links {
		if ctx.Err() != nil {
			return
		}
		currentState := m.isUrlAccessible(ctx, link.URL)

		m.mu.Lock()
		previousState, exists := m.knownStates[link.ID]
		m.knownStates[link.ID] = currentState
		m.mu.Unlock()

		if !exists {
			m.logger.Debug("initial link state",
				zap.Uint("id", link.ID), zap.String("url", link.URL), zap.String("state", formatState(currentState)))
			continue
		}
		if currentState != previousState {
			m.logger.Warn("link state changed",
				zap.Uint("id", link.ID),
				zap.String("url", link.URL),
				zap.String("from", formatState(previousState)),
				zap.String("to", formatState(currentState)))
		}
	}
}

// isUrlAccessible sends a HEAD request; 2xx and 3xx count as reachable.
func (m *UrlMonitor) isUrlAccessible(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		m.logger.Debug("check failed", zap.Error(customerrors.ErrURLCheckFailed{URL: url, Reason: err.Error()}))
		return false
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.Debug("check failed", zap.Error(customerrors.ErrURLCheckFailed{URL: url, Reason: err.Error()}))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

func formatState(accessible bool) string {
	if accessible {
		return "REACHABLE"
	}
	return "UNREACHABLE"
}
