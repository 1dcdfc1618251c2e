// Package modkit provides module wiring and core deps
package modkit

import (
	"forword/internal/platform/config"
	"forword/internal/platform/logger"
	"forword/internal/platform/store/pg"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
	PG  *pg.PG // nil unless a module needs postgres
}

// Logger returns Log, or a component logger named after the module when unset
func (d Deps) Logger(name string) *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Named(name)
}
