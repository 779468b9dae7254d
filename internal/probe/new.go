package probe

import (
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

type implProber struct {
	binary     string
	executor   executor.Executor
	logger     logger.Logger
	onFallback func()
}

// New creates a Prober that shells out to ffprobe at binaryPath.
// onFallback, if non-nil, is called every time the default rate is used.
func New(binaryPath string, exec executor.Executor, log logger.Logger, onFallback func()) Prober {
	if binaryPath == "" {
		binaryPath = "ffprobe"
	}
	return &implProber{
		binary:     binaryPath,
		executor:   exec,
		logger:     log,
		onFallback: onFallback,
	}
}
