package ledger

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

const feedbackSeparator = "-----------------------------"

// FeedbackLedger is the append-only durable store of free-text customer
// feedback. Entries are multi-line blocks; Clear is the only destructive
// operation in the system and the shell gates it behind the admin check.
type FeedbackLedger struct {
	mu   sync.Mutex
	path string
}

// NewFeedbackLedger creates a feedback ledger backed by the file at path.
func NewFeedbackLedger(path string) *FeedbackLedger {
	return &FeedbackLedger{path: path}
}

// Append durably records one timestamped feedback entry.
func (l *FeedbackLedger) Append(ctx context.Context, customerName, text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open feedback ledger: %w", err)
	}
	defer f.Close()

	entry := fmt.Sprintf("Customer: %s\nFeedback: %s\nDate/Time: %s\n%s\n",
		customerName, text, time.Now().Format(timestampLayout), feedbackSeparator)
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("append feedback entry: %w", err)
	}
	return nil
}

// ReadAll returns every raw line in append order. A missing file is an empty
// history, not an error.
func (l *FeedbackLedger) ReadAll(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return readLines(l.path, "feedback ledger")
}

// Clear truncates the store to empty.
func (l *FeedbackLedger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.WriteFile(l.path, nil, 0o644); err != nil {
		return fmt.Errorf("clear feedback ledger: %w", err)
	}
	return nil
}
