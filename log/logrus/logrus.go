package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/IvanBrykalov/sharedcache/cache"
)

// Logger adapts a *logrus.Logger to cache.Logger.
type Logger struct{ L *logrus.Logger }

func (l Logger) Debug(msg string, f cache.Fields) { l.L.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f cache.Fields)  { l.L.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f cache.Fields)  { l.L.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f cache.Fields) { l.L.WithFields(logrus.Fields(f)).Error(msg) }

var _ cache.Logger = Logger{}
