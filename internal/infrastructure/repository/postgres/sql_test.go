package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
)

func TestIsBindParameterMismatch(t *testing.T) {
	t.Run("matches bind mismatch error", func(t *testing.T) {
		err := fakeErr("pq: bind message supplies 2 parameters, but prepared statement \"\" requires 1 (08P01)")
		if !isBindParameterMismatch(err) {
			t.Fatalf("expected true for bind mismatch error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation matches does not exist")
		if isBindParameterMismatch(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsUnnamedPreparedStatementMissing(t *testing.T) {
	t.Run("matches statement missing message", func(t *testing.T) {
		err := fakeErr("pq: unnamed prepared statement does not exist (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for statement missing error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation matches does not exist")
		if isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsDependencyFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "no rows", err: fmt.Errorf("get racha: %w", sql.ErrNoRows), want: false},
		{name: "cancelled", err: fmt.Errorf("select matches: %w", context.Canceled), want: false},
		{name: "connection refused", err: fakeErr("dial tcp 127.0.0.1:5432: connect: connection refused"), want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDependencyFailure(tc.err); got != tc.want {
				t.Fatalf("IsDependencyFailure(%v)=%v want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestNullHelpers(t *testing.T) {
	if got := nullStringValue(sql.NullString{String: " team-leoes ", Valid: true}); got != "team-leoes" {
		t.Fatalf("unexpected string: %q", got)
	}
	if got := nullStringValue(sql.NullString{}); got != "" {
		t.Fatalf("expected empty string for null, got %q", got)
	}
	if got := nullIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil for null score, got %d", *got)
	}
	if got := nullIntPtr(sql.NullInt64{Int64: 3, Valid: true}); got == nil || *got != 3 {
		t.Fatalf("unexpected score: %v", got)
	}
	if got := toNullString("  "); got.Valid {
		t.Fatalf("expected blank string to be null")
	}
	three := 3
	if got := toNullInt(&three); !got.Valid || got.Int64 != 3 {
		t.Fatalf("unexpected null int: %+v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
