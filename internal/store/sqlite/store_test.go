package sqlite_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prismaglow/chatproxy/internal/domain"
	"github.com/prismaglow/chatproxy/internal/store/sqlite"
)

func openTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve organization for a member", func(t *testing.T) {
		store := openTestStore(t)

		require.NoError(t, store.UpsertOrganization(ctx, domain.Organization{ID: "org-1", Slug: "acme"}))
		require.NoError(t, store.AddMember(ctx, "org-1", "user-1", "MEMBER"))

		org, err := store.Authorize(ctx, "acme", "user-1")

		require.NoError(t, err)
		require.Equal(t, "org-1", org.ID)
		require.Equal(t, "acme", org.Slug)
	})

	t.Run("should return ErrOrgNotFound for unknown slug", func(t *testing.T) {
		store := openTestStore(t)

		org, err := store.Authorize(ctx, "ghost", "user-1")

		require.ErrorIs(t, err, domain.ErrOrgNotFound)
		require.Nil(t, org)
	})

	t.Run("should return ErrNotMember for non-members", func(t *testing.T) {
		store := openTestStore(t)

		require.NoError(t, store.UpsertOrganization(ctx, domain.Organization{ID: "org-1", Slug: "acme"}))

		org, err := store.Authorize(ctx, "acme", "stranger")

		require.ErrorIs(t, err, domain.ErrNotMember)
		require.Nil(t, org)
	})
}

func TestStore_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist events in insertion order", func(t *testing.T) {
		store := openTestStore(t)

		first := &domain.DebugEvent{
			RequestID: "chatcmpl-1",
			Endpoint:  domain.EndpointCreate,
			Metadata: domain.DebugMetadata{
				QuotaTag: "team-quota",
				Extras:   map[string]any{"orgSlug": "acme", "streaming": true},
			},
			RequestPayload: json.RawMessage(`{"model":"gpt-4.1"}`),
		}
		second := &domain.DebugEvent{
			RequestID: "chatcmpl-2",
			Endpoint:  domain.EndpointDelete,
			Metadata:  domain.DebugMetadata{Extras: map[string]any{"orgSlug": "acme"}},
		}

		require.NoError(t, store.Append(ctx, first))
		require.NoError(t, store.Append(ctx, second))

		events, err := store.ListEvents(ctx)
		require.NoError(t, err)
		require.Len(t, events, 2)

		require.Equal(t, "chatcmpl-1", events[0].RequestID)
		require.Equal(t, domain.EndpointCreate, events[0].Endpoint)
		require.Equal(t, "team-quota", events[0].Metadata.QuotaTag)
		require.Equal(t, "acme", events[0].Metadata.Extras["orgSlug"])
		require.Equal(t, true, events[0].Metadata.Extras["streaming"])
		require.JSONEq(t, `{"model":"gpt-4.1"}`, string(events[0].RequestPayload))
		require.False(t, events[0].CreatedAt.IsZero())

		require.Equal(t, "chatcmpl-2", events[1].RequestID)
		require.Empty(t, events[1].RequestPayload)
	})

	t.Run("should reject nil events", func(t *testing.T) {
		store := openTestStore(t)

		require.Error(t, store.Append(ctx, nil))
	})
}
