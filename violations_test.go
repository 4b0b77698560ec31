package weburl

import (
	"fmt"
	"testing"

	"github.com/weburl/weburl/logging"
)

type capturedLog struct {
	Classification logging.Classification
	Message        string
}

type captureLogger struct {
	entries []capturedLog
}

func (l *captureLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	l.entries = append(l.entries, capturedLog{classification, fmt.Sprintf(format, v...)})
}

func TestLogViolations(t *testing.T) {
	logger := &captureLogger{}
	opts := Options{ViolationHandler: LogViolations(logger)}
	if _, err := opts.Parse("http://user@example.com/"); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := 1, len(logger.entries); e != a {
		t.Fatalf("expect %v log entries, got %v", e, a)
	}
	entry := logger.entries[0]
	if e, a := logging.Warn, entry.Classification; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	expect := "url syntax violation: " + ViolationEmbeddedCredentials.Description()
	if e, a := expect, entry.Message; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestViolationDescriptions(t *testing.T) {
	violations := []SyntaxViolation{
		ViolationBackslash,
		ViolationC0SpaceIgnored,
		ViolationTabOrNewlineIgnored,
		ViolationExpectedDoubleSlash,
		ViolationExpectedFileDoubleSlash,
		ViolationEmbeddedCredentials,
		ViolationUnencodedAtSign,
		ViolationNonURLCodePoint,
		ViolationPercentDecode,
		ViolationFileWithHostAndWindowsDrive,
	}
	seen := map[string]SyntaxViolation{}
	for _, v := range violations {
		desc := v.Description()
		if desc == "" || desc == "unknown syntax violation" {
			t.Errorf("expect a description for violation %d", v)
		}
		if prev, ok := seen[desc]; ok {
			t.Errorf("expect distinct descriptions, %d and %d share %q", prev, v, desc)
		}
		seen[desc] = v
	}
}
