//go:build integration

// Package tests contains integration tests that run against a live PostgreSQL database.
//
// These tests require a local Postgres, for example:
//
//	docker run -d --name sqlpeek-test \
//	  -e POSTGRES_PASSWORD=postgres -e POSTGRES_DB=sqlpeek \
//	  -p 5498:5432 \
//	  postgres:17
//
// Run with: go test -tags integration ./tests/
package tests

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/sqlpeek/sqlpeek/internal/connection"
	"github.com/sqlpeek/sqlpeek/internal/models"
	"github.com/sqlpeek/sqlpeek/internal/verifier"
)

func testConn(t *testing.T, ctx context.Context) *pgx.Conn {
	t.Helper()
	conn, err := connection.Connect(ctx, connection.Config{
		Host: "localhost", Port: 5498, DBName: "sqlpeek",
		User: "postgres", Password: "postgres",
	})
	if err != nil {
		t.Skipf("Test database not available: %v", err)
	}
	return conn
}

func TestVerifyLiteralAliases(t *testing.T) {
	ctx := context.Background()
	conn := testConn(t, ctx)
	defer conn.Close(ctx)

	report, err := verifier.Verify(ctx, conn, "SELECT 1 AS one, 2 AS two", verifier.Options{Database: "sqlpeek"})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if report.Outcome != models.OutcomeMatch {
		t.Errorf("outcome = %s, diff = %+v", report.Outcome, report.Diff)
	}
}

func TestVerifyFunctionLowercasing(t *testing.T) {
	ctx := context.Background()
	conn := testConn(t, ctx)
	defer conn.Close(ctx)

	// Postgres names an unaliased count(*) column "count"; the function rule
	// predicts the same lower-cased name.
	report, err := verifier.Verify(ctx, conn, "SELECT COUNT(*)", verifier.Options{Database: "sqlpeek"})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if report.Outcome != models.OutcomeMatch {
		t.Errorf("outcome = %s, diff = %+v", report.Outcome, report.Diff)
	}
}

func TestVerifyReportsServerVersion(t *testing.T) {
	ctx := context.Background()
	conn := testConn(t, ctx)
	defer conn.Close(ctx)

	report, err := verifier.Verify(ctx, conn, "SELECT 1 AS one", verifier.Options{Database: "sqlpeek"})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if report.ServerVer == "" {
		t.Error("server version should be populated")
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	ctx := context.Background()
	conn := testConn(t, ctx)
	defer conn.Close(ctx)

	// The engine cannot know the server names a bare literal "?column?".
	report, err := verifier.Verify(ctx, conn, "SELECT 1 + 1", verifier.Options{Database: "sqlpeek"})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if report.Outcome != models.OutcomeMismatch {
		t.Errorf("outcome = %s, want MISMATCH", report.Outcome)
	}
}

func TestReadOnlySession(t *testing.T) {
	ctx := context.Background()
	conn := testConn(t, ctx)
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, "CREATE TABLE sqlpeek_probe_guard (id int)"); err == nil {
		t.Error("write should be rejected in a read-only session")
	}
}
