// Package domain holds the filter API request and response shapes and its ports
package domain

import (
	"time"

	"forword/internal/core/filter"
)

// TextInput is the body shared by search, normalize and find
type TextInput struct {
	Text string `json:"text" validate:"max=1048576"`
}

// ReplaceInput is the replace body; a missing token means the configured one
type ReplaceInput struct {
	Text  string  `json:"text"  validate:"max=1048576"`
	Token *string `json:"token" validate:"omitempty,max=64,nocontrol"`
}

// SearchResult answers search
type SearchResult struct {
	Found bool `json:"found"`
}

// ReplaceResult answers replace
type ReplaceResult struct {
	Text string `json:"text"`
}

// NormalizeResult answers normalize
type NormalizeResult struct {
	Normalized string `json:"normalized"`
}

// FindResult answers find
type FindResult struct {
	Hits []filter.Hit `json:"hits"`
}

// DictionaryInfo describes the filter currently serving requests
type DictionaryInfo struct {
	Generation  string              `json:"generation"`
	Source      string              `json:"source"`
	Patterns    int                 `json:"patterns"`
	Nodes       int                 `json:"nodes"`
	Token       string              `json:"token"`
	BuiltAt     time.Time           `json:"built_at"`
	Diagnostics []filter.Diagnostic `json:"diagnostics"`
}

// ReloadResult reports a successful swap
type ReloadResult struct {
	DictionaryInfo
	Previous string `json:"previous"`
}

// Describe summarizes f
func Describe(f *filter.Filter) DictionaryInfo {
	d := f.Diagnostics()
	if d == nil {
		d = []filter.Diagnostic{}
	}
	return DictionaryInfo{
		Generation:  f.Generation().String(),
		Source:      f.Source(),
		Patterns:    f.Patterns(),
		Nodes:       f.Nodes(),
		Token:       f.Token(),
		BuiltAt:     f.BuiltAt(),
		Diagnostics: d,
	}
}
