// Package metrics は進捗操作とHTTPリクエストの計測フックを提供します。
package metrics

import "time"

// Recorder は計測フックのインターフェースです。
// 計測を無効にする場合は NoopRecorder を注入する。
type Recorder interface {
	IncProgressInitialized()
	IncDayCompleted(dayNumber int)
	IncReplayEntered()
	IncProgressReset()
	// IncReplaceConflict は楽観ロックの競合 (再試行のきっかけ) を数える
	IncReplaceConflict()
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
}

// NoopRecorder は何もしない Recorder です
type NoopRecorder struct{}

func (NoopRecorder) IncProgressInitialized()                              {}
func (NoopRecorder) IncDayCompleted(int)                                  {}
func (NoopRecorder) IncReplayEntered()                                    {}
func (NoopRecorder) IncProgressReset()                                    {}
func (NoopRecorder) IncReplaceConflict()                                  {}
func (NoopRecorder) ObserveHTTPRequest(string, string, int, time.Duration) {}
