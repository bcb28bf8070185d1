package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and cache events as debug log lines.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnReadStart(_ context.Context, path string) {
	h.logger.Debug("read start", "path", path)
}

func (h *LogHooks) OnReadComplete(_ context.Context, path string, atoms int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("read failed", "path", path, "error", err)
		return
	}
	h.logger.Debug("read done", "path", path, "atoms", atoms, "took", d)
}

func (h *LogHooks) OnPlaceStart(_ context.Context, atoms int) {
	h.logger.Debug("place start", "atoms", atoms)
}

func (h *LogHooks) OnPlaceComplete(_ context.Context, movers, failures int, d time.Duration) {
	h.logger.Debug("place done", "movers", movers, "failures", failures, "took", d)
}

func (h *LogHooks) OnGraphStart(_ context.Context, algorithm string, movers int) {
	h.logger.Debug("graph start", "algorithm", algorithm, "movers", movers)
}

func (h *LogHooks) OnGraphComplete(_ context.Context, algorithm string, edges, components int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("graph failed", "algorithm", algorithm, "error", err)
		return
	}
	h.logger.Debug("graph done", "algorithm", algorithm, "edges", edges, "components", components, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
