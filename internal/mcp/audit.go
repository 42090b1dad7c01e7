package mcp

import (
	"context"
	"log/slog"
	"time"
)

// auditTool logs one tool invocation: name, duration, outcome, and any
// extra key/value attributes. Failures log at warn, successes at info.
func (s *Server) auditTool(ctx context.Context, tool string, start time.Time, err error, attrs ...any) {
	attrs = append([]any{
		"tool", tool,
		"duration_ms", time.Since(start).Milliseconds(),
	}, attrs...)

	if err != nil {
		s.logger.Log(ctx, slog.LevelWarn, "tool call failed", append(attrs, "error", err.Error())...)
		return
	}
	s.logger.Log(ctx, slog.LevelInfo, "tool call", attrs...)
}
