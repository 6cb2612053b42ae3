package logger

import (
	"context"
	"log"
)

const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger    *log.Logger
	level     string
	color     bool
	component string
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) With(component string) Logger {
	c := *l
	if c.component != "" {
		component = c.component + "/" + component
	}
	c.component = component
	return &c
}

func (l *implLogger) prefix(tag, color string) string {
	p := "[" + tag + "] "
	if l.color {
		p = color + p + colorReset
	}
	if l.component != "" {
		p += l.component + ": "
	}
	return p
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.logger.Printf(l.prefix("DEBUG", colorGray)+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.logger.Printf(l.prefix("INFO", colorBlue)+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.logger.Printf(l.prefix("WARN", colorYellow)+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.logger.Printf(l.prefix("ERROR", colorRed)+msg, args...)
	}
}
