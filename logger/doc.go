// Package logger provides structured logging for consulkit, backed by zerolog.
//
// The consul client logs operation outcomes through a *Logger; library users
// can pass their own configured instance or rely on NewDefault. A nil-safe
// Nop logger is available for callers that want silence.
package logger
