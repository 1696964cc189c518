package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeySurveyID  contextKey = "survey_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithSurveyID adds a survey ID to the context
func WithSurveyID(ctx context.Context, surveyID string) context.Context {
	return context.WithValue(ctx, ContextKeySurveyID, surveyID)
}

// SurveyIDFromContext extracts the survey ID from context
func SurveyIDFromContext(ctx context.Context) string {
	if surveyID, ok := ctx.Value(ContextKeySurveyID).(string); ok {
		return surveyID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
