package reflectx

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(zap.NewNop())
}

// SetLogger installs the logger used for cache diagnostics. Passing nil
// restores the default no-op logger. Safe to call from multiple goroutines.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	pkgLogger.Store(l.Named("reflectx"))
}

func logger() *zap.Logger { return pkgLogger.Load() }
