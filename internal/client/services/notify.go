package services

import "context"

// Level distinguishes confirmations from complaints in user notifications.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notifier shows a short-lived message to the user.
type Notifier interface {
	Notify(ctx context.Context, level Level, msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, level Level, msg string)

func (f NotifierFunc) Notify(ctx context.Context, level Level, msg string) {
	f(ctx, level, msg)
}
