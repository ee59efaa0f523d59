package system

import (
	"github.com/milk9111/catjump/logger"
	"go.uber.org/zap"
)

// presence tracks whether a system's actors resolved on the last frame so
// a missing actor is logged once per transition instead of every frame.
type presence struct {
	system  string
	missing bool
}

func (p *presence) observe(ok bool) bool {
	if ok == !p.missing {
		return ok
	}
	p.missing = !ok
	if ok {
		logger.L().Debug("actors available", zap.String("system", p.system))
	} else {
		logger.L().Debug("actor missing, skipping frame", zap.String("system", p.system))
	}
	return ok
}
