package utils

import (
	"time"

	"go.uber.org/zap"

	"github.com/unboxd/nftmkt"
)

// Logging is a decorator to log messages as they pass through
type Logging struct {
	logger *zap.Logger
}

var _ nftmkt.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging(logger *zap.Logger) Logging {
	return Logging{logger: logger}
}

// Check logs error -> warn, success -> debug
func (l Logging) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx, next nftmkt.Checker) (*nftmkt.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	l.log("check", tx, start, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (l Logging) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx, next nftmkt.Deliverer) (*nftmkt.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	l.log("deliver", tx, start, err, false)
	return res, err
}

func (l Logging) log(phase string, tx nftmkt.Tx, start time.Time, err error, lowPrio bool) {
	fields := []zap.Field{
		zap.String("phase", phase),
		zap.Duration("duration", time.Since(start)),
	}
	if msg, merr := tx.GetMsg(); merr == nil {
		fields = append(fields, zap.String("path", msg.Path()))
	}

	switch {
	case err != nil && lowPrio:
		l.logger.Warn(err.Error(), fields...)
	case err != nil:
		l.logger.Error(err.Error(), fields...)
	case lowPrio:
		l.logger.Debug("ok", fields...)
	default:
		l.logger.Info("ok", fields...)
	}
}
