package repositories

import (
	"strings"
	"testing"

	"gate-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

type capturedStatement struct {
	sql      string
	preloads []string
}

// dryRunDB builds the SQL for every statement without executing anything, so
// the repository's query shapes can be asserted without a database.
func dryRunDB(t *testing.T, captured *[]capturedStatement) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	record := func(tx *gorm.DB) {
		preloads := make([]string, 0, len(tx.Statement.Preloads))
		for name := range tx.Statement.Preloads {
			preloads = append(preloads, name)
		}
		*captured = append(*captured, capturedStatement{
			sql:      tx.Statement.SQL.String(),
			preloads: preloads,
		})
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_query", record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("capture_update", record))

	return db
}

func TestListPreloadsWeighment(t *testing.T) {
	var captured []capturedStatement
	repo := NewGateEntryRepository(dryRunDB(t, &captured))

	_, err := repo.List(ListEntryFilter{EntryType: models.EntryTypeRawMaterial})
	require.NoError(t, err)

	require.NotEmpty(t, captured)
	assert.Contains(t, captured[0].preloads, "Weighment")
}

func TestLockStampsActorInGuardedStatement(t *testing.T) {
	var captured []capturedStatement
	db := dryRunDB(t, &captured)
	repo := NewGateEntryRepository(db)

	// A dry run affects no rows, so the guard reports the entry as locked.
	err := repo.Lock(db, 42, 7)
	var lockedErr *models.LockedEntryError
	require.ErrorAs(t, err, &lockedErr)

	require.NotEmpty(t, captured)
	sql := captured[0].sql
	assert.Contains(t, sql, "id = ? AND is_locked = ?")
	assert.Contains(t, sql, "updated_by")
	assert.Contains(t, sql, "is_locked")
}

func TestTransitionStatusIsOneConditionalStatement(t *testing.T) {
	var captured []capturedStatement
	db := dryRunDB(t, &captured)
	repo := NewGateEntryRepository(db)

	// The dry run affects no rows, so the guarded update reports a failure
	// after building its statement.
	err := repo.TransitionStatus(db, 42, models.EntryStatusDraft, models.EntryStatusInProgress)
	require.Error(t, err)

	require.NotEmpty(t, captured)
	assert.Contains(t, captured[0].sql, "id = ? AND is_locked = ? AND status = ?")
}

func TestTransitionStatusValidatesBeforeWriting(t *testing.T) {
	var captured []capturedStatement
	db := dryRunDB(t, &captured)
	repo := NewGateEntryRepository(db)

	err := repo.TransitionStatus(db, 42, models.EntryStatusDraft, models.EntryStatusCompleted)
	var transitionErr *models.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Empty(t, captured, "an invalid transition must not reach the database")
}

func TestGuardedUpdateConditionalOnLockFlag(t *testing.T) {
	var captured []capturedStatement
	db := dryRunDB(t, &captured)
	repo := NewGateEntryRepository(db)

	_ = repo.GuardedUpdate(db, 42, map[string]interface{}{"remarks": "resealed"})

	require.NotEmpty(t, captured)
	var updates []string
	for _, stmt := range captured {
		if strings.Contains(stmt.sql, "UPDATE") {
			updates = append(updates, stmt.sql)
		}
	}
	require.NotEmpty(t, updates)
	assert.Contains(t, updates[0], "id = ? AND is_locked = ?")
}
