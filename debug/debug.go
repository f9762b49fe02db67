//go:build debug

package debug

import (
	"fmt"

	"go.uber.org/zap"
)

const Enabled = true

func Log(format string, args ...interface{}) {
	zap.L().Debug(fmt.Sprintf(format, args...))
}
