package notes_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quillhq/quill/internal/database/models"
	"github.com/quillhq/quill/internal/notes"
	"github.com/quillhq/quill/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := notes.NewService(db)
	tenant := testutil.CreateTestTenant(t, db, models.PlanFree)
	user := testutil.CreateTestUser(t, db, tenant, models.RoleMember)

	t.Run("creates note attributed to tenant and user", func(t *testing.T) {
		note, err := svc.Create(context.Background(), tenant.ID, user.ID, notes.CreateInput{
			Title:   "first",
			Content: "hello",
		})
		require.NoError(t, err)
		assert.Equal(t, tenant.ID, note.TenantID)
		assert.Equal(t, user.ID, note.UserID)
		assert.NotEqual(t, uuid.Nil, note.ID)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := svc.Create(context.Background(), tenant.ID, user.ID, notes.CreateInput{
			Title:   "   ",
			Content: "hello",
		})
		assert.Equal(t, notes.ErrEmptyTitle, err)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := svc.Create(context.Background(), tenant.ID, user.ID, notes.CreateInput{
			Title:   "title",
			Content: "",
		})
		assert.Equal(t, notes.ErrEmptyContent, err)
	})
}

func TestService_Quota(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := notes.NewService(db)
	tenant := testutil.CreateTestTenant(t, db, models.PlanFree)
	user := testutil.CreateTestUser(t, db, tenant, models.RoleAdmin)

	ctx := context.Background()

	// Fill the free plan to its limit.
	for i := 0; i < models.FreePlanNoteLimit; i++ {
		_, err := svc.Create(ctx, tenant.ID, user.ID, notes.CreateInput{
			Title:   "note",
			Content: "body",
		})
		require.NoError(t, err)
	}

	t.Run("free tenant at the limit is denied", func(t *testing.T) {
		_, err := svc.Create(ctx, tenant.ID, user.ID, notes.CreateInput{
			Title:   "one too many",
			Content: "body",
		})
		assert.Equal(t, notes.ErrQuotaExceeded, err)
	})

	t.Run("deleting a note frees quota", func(t *testing.T) {
		var victim models.Note
		require.NoError(t, db.Where("tenant_id = ?", tenant.ID).First(&victim).Error)
		require.NoError(t, svc.Delete(ctx, tenant.ID, victim.ID))

		created, err := svc.Create(ctx, tenant.ID, user.ID, notes.CreateInput{
			Title:   "replacement",
			Content: "body",
		})
		require.NoError(t, err)

		// Back at the limit again.
		_, err = svc.Create(ctx, tenant.ID, user.ID, notes.CreateInput{
			Title:   "denied",
			Content: "body",
		})
		assert.Equal(t, notes.ErrQuotaExceeded, err)
		assert.NotNil(t, created)
	})

	t.Run("upgrade to pro lifts the limit", func(t *testing.T) {
		require.NoError(t, db.Model(tenant).Update("plan", models.PlanPro).Error)

		_, err := svc.Create(ctx, tenant.ID, user.ID, notes.CreateInput{
			Title:   "fourth",
			Content: "body",
		})
		require.NoError(t, err)
	})
}

// The quota check and the insert are two separate statements. This test pins
// the policy decision itself; it deliberately does not try to prove the
// check-then-insert pair atomic, because it is not meant to be.
func TestService_CanCreateNote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := notes.NewService(db)

	t.Run("pro tenant is always allowed", func(t *testing.T) {
		tenant := testutil.CreateTestTenant(t, db, models.PlanPro)
		user := testutil.CreateTestUser(t, db, tenant, models.RoleMember)
		for i := 0; i < models.FreePlanNoteLimit+2; i++ {
			testutil.CreateTestNote(t, db, tenant.ID, user.ID, "n")
		}

		allowed, err := svc.CanCreateNote(context.Background(), tenant)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("free tenant allowed strictly below the limit", func(t *testing.T) {
		tenant := testutil.CreateTestTenant(t, db, models.PlanFree)
		user := testutil.CreateTestUser(t, db, tenant, models.RoleMember)

		for i := 0; i < models.FreePlanNoteLimit; i++ {
			allowed, err := svc.CanCreateNote(context.Background(), tenant)
			require.NoError(t, err)
			assert.True(t, allowed, "note %d should be allowed", i+1)
			testutil.CreateTestNote(t, db, tenant.ID, user.ID, "n")
		}

		allowed, err := svc.CanCreateNote(context.Background(), tenant)
		require.NoError(t, err)
		assert.False(t, allowed)
	})
}

func TestService_TenantIsolation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := notes.NewService(db)
	ctx := context.Background()

	acme := testutil.CreateTestTenant(t, db, models.PlanPro)
	acmeUser := testutil.CreateTestUser(t, db, acme, models.RoleAdmin)
	globex := testutil.CreateTestTenant(t, db, models.PlanPro)
	globexUser := testutil.CreateTestUser(t, db, globex, models.RoleAdmin)

	acmeNote := testutil.CreateTestNote(t, db, acme.ID, acmeUser.ID, "acme secret")
	_ = globexUser

	t.Run("get from another tenant reads as missing", func(t *testing.T) {
		_, err := svc.Get(ctx, globex.ID, acmeNote.ID)
		assert.Equal(t, notes.ErrNoteNotFound, err)
	})

	t.Run("update from another tenant reads as missing", func(t *testing.T) {
		title := "defaced"
		_, err := svc.Update(ctx, globex.ID, acmeNote.ID, notes.UpdateInput{Title: &title})
		assert.Equal(t, notes.ErrNoteNotFound, err)

		// Unchanged for the owner.
		got, err := svc.Get(ctx, acme.ID, acmeNote.ID)
		require.NoError(t, err)
		assert.Equal(t, "acme secret", got.Title)
	})

	t.Run("delete from another tenant reads as missing", func(t *testing.T) {
		err := svc.Delete(ctx, globex.ID, acmeNote.ID)
		assert.Equal(t, notes.ErrNoteNotFound, err)

		_, err = svc.Get(ctx, acme.ID, acmeNote.ID)
		require.NoError(t, err)
	})

	t.Run("list only shows own tenant", func(t *testing.T) {
		listed, err := svc.List(ctx, globex.ID)
		require.NoError(t, err)
		assert.Empty(t, listed)

		listed, err = svc.List(ctx, acme.ID)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})
}

func TestService_List_Ordering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := notes.NewService(db)

	tenant := testutil.CreateTestTenant(t, db, models.PlanPro)
	user := testutil.CreateTestUser(t, db, tenant, models.RoleMember)

	older := testutil.CreateTestNote(t, db, tenant.ID, user.ID, "older")
	newer := testutil.CreateTestNote(t, db, tenant.ID, user.ID, "newer")

	// Force distinct update times; creations in the same test tick can tie.
	now := time.Now()
	require.NoError(t, db.Model(older).Update("updated_at", now.Add(-time.Hour)).Error)
	require.NoError(t, db.Model(newer).Update("updated_at", now).Error)

	listed, err := svc.List(context.Background(), tenant.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "newer", listed[0].Title)
	assert.Equal(t, "older", listed[1].Title)
}

func TestService_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := notes.NewService(db)
	ctx := context.Background()

	tenant := testutil.CreateTestTenant(t, db, models.PlanPro)
	user := testutil.CreateTestUser(t, db, tenant, models.RoleMember)
	note := testutil.CreateTestNote(t, db, tenant.ID, user.ID, "original")

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		title := "renamed"
		updated, err := svc.Update(ctx, tenant.ID, note.ID, notes.UpdateInput{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Title)
		assert.Equal(t, "content of original", updated.Content)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		updated, err := svc.Update(ctx, tenant.ID, note.ID, notes.UpdateInput{})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Title)
	})

	t.Run("present-but-empty field is rejected", func(t *testing.T) {
		empty := ""
		_, err := svc.Update(ctx, tenant.ID, note.ID, notes.UpdateInput{Content: &empty})
		assert.Equal(t, notes.ErrEmptyContent, err)
	})

	t.Run("unknown id fails", func(t *testing.T) {
		title := "x"
		_, err := svc.Update(ctx, tenant.ID, uuid.New(), notes.UpdateInput{Title: &title})
		assert.Equal(t, notes.ErrNoteNotFound, err)
	})
}

func TestService_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := notes.NewService(db)
	ctx := context.Background()

	tenant := testutil.CreateTestTenant(t, db, models.PlanPro)
	user := testutil.CreateTestUser(t, db, tenant, models.RoleMember)
	note := testutil.CreateTestNote(t, db, tenant.ID, user.ID, "doomed")

	require.NoError(t, svc.Delete(ctx, tenant.ID, note.ID))

	t.Run("second delete reports not found, not a crash", func(t *testing.T) {
		err := svc.Delete(ctx, tenant.ID, note.ID)
		assert.Equal(t, notes.ErrNoteNotFound, err)
	})

	t.Run("deleted note no longer readable", func(t *testing.T) {
		_, err := svc.Get(ctx, tenant.ID, note.ID)
		assert.Equal(t, notes.ErrNoteNotFound, err)
	})
}
