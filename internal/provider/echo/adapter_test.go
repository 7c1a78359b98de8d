package echo_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prismaglow/chatproxy/internal/domain"
	"github.com/prismaglow/chatproxy/internal/provider/echo"
)

func payloadWith(store bool, messages ...map[string]any) map[string]any {
	anyMessages := make([]any, len(messages))
	for i, message := range messages {
		anyMessages[i] = any(message)
	}
	return map[string]any{
		"model":    "gpt-4.1",
		"store":    store,
		"messages": anyMessages,
	}
}

func contentOf(t *testing.T, completion *domain.Completion) string {
	t.Helper()

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	require.NoError(t, json.Unmarshal(completion.Raw, &parsed))
	require.NotEmpty(t, parsed.Choices)
	return parsed.Choices[0].Message.Content
}

func TestCreate_EchoesMessages(t *testing.T) {
	provider := echo.NewProvider()
	ctx := context.Background()

	completion, err := provider.Create(ctx, payloadWith(false,
		map[string]any{"role": "user", "content": "Hello world"},
	))

	require.NoError(t, err)
	require.NotNil(t, completion)
	require.NotEmpty(t, completion.ID)
	require.Equal(t, "[user]: Hello world\n", contentOf(t, completion))
}

func TestCreate_MultipleMessages(t *testing.T) {
	provider := echo.NewProvider()
	ctx := context.Background()

	completion, err := provider.Create(ctx, payloadWith(false,
		map[string]any{"role": "system", "content": "You are helpful"},
		map[string]any{"role": "user", "content": "Hello world"},
	))

	require.NoError(t, err)
	require.Equal(t, "[system]: You are helpful\n[user]: Hello world\n", contentOf(t, completion))
}

func TestCreateStream_YieldsWordChunks(t *testing.T) {
	provider := echo.NewProvider()
	ctx := context.Background()

	stream, err := provider.CreateStream(ctx, payloadWith(false,
		map[string]any{"role": "user", "content": "Hello world"},
	))

	require.NoError(t, err)
	require.NotNil(t, stream)
	defer stream.Close()

	var builder strings.Builder
	count := 0
	for stream.Next() {
		chunk := stream.Current()
		require.NotEmpty(t, chunk.ID)

		var parsed struct {
			Choices []struct {
				Delta struct {
					Content string `json:"content"`
				} `json:"delta"`
			} `json:"choices"`
		}
		require.NoError(t, json.Unmarshal(chunk.Raw, &parsed))
		builder.WriteString(parsed.Choices[0].Delta.Content)
		count++
	}

	require.NoError(t, stream.Err())
	require.Equal(t, 3, count) // "[user]:" "Hello" "world"
	require.Equal(t, "[user]: Hello world", builder.String())
}

func TestCreateStream_CloseStopsIteration(t *testing.T) {
	provider := echo.NewProvider()
	ctx := context.Background()

	stream, err := provider.CreateStream(ctx, payloadWith(false,
		map[string]any{"role": "user", "content": "one two three four five"},
	))
	require.NoError(t, err)

	require.True(t, stream.Next())
	require.NoError(t, stream.Close())
	require.False(t, stream.Next())

	// Close is idempotent.
	require.NoError(t, stream.Close())
}

func TestStoredCompletionLifecycle(t *testing.T) {
	provider := echo.NewProvider()
	ctx := context.Background()

	created, err := provider.Create(ctx, payloadWith(true,
		map[string]any{"role": "user", "content": "keep me"},
	))
	require.NoError(t, err)

	t.Run("retrieve", func(t *testing.T) {
		completion, err := provider.Retrieve(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, completion.ID)
	})

	t.Run("update metadata", func(t *testing.T) {
		completion, err := provider.Update(ctx, created.ID, map[string]string{"reviewed": "true"})
		require.NoError(t, err)

		var parsed struct {
			Metadata map[string]string `json:"metadata"`
		}
		require.NoError(t, json.Unmarshal(completion.Raw, &parsed))
		require.Equal(t, "true", parsed.Metadata["reviewed"])
	})

	t.Run("list messages", func(t *testing.T) {
		page, err := provider.ListMessages(ctx, created.ID, domain.MessageFilter{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := provider.Delete(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		_, err = provider.Retrieve(ctx, created.ID)
		var upstream *domain.UpstreamError
		require.ErrorAs(t, err, &upstream)
		require.Equal(t, 404, upstream.StatusCode)
	})
}

func TestList_Pagination(t *testing.T) {
	provider := echo.NewProvider()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		completion, err := provider.Create(ctx, payloadWith(true,
			map[string]any{"role": "user", "content": "entry"},
		))
		require.NoError(t, err)
		ids = append(ids, completion.ID)
	}

	page, err := provider.List(ctx, domain.ListFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.True(t, page.HasMore)
	require.NotNil(t, page.NextCursor)
	require.Equal(t, ids[1], *page.NextCursor)

	rest, err := provider.List(ctx, domain.ListFilter{Limit: 2, After: *page.NextCursor})
	require.NoError(t, err)
	require.Len(t, rest.Items, 1)
	require.False(t, rest.HasMore)
	require.Nil(t, rest.NextCursor)
}

func TestRetrieve_UnstoredCompletion(t *testing.T) {
	provider := echo.NewProvider()
	ctx := context.Background()

	completion, err := provider.Retrieve(ctx, "echo-999")

	require.Error(t, err)
	require.Nil(t, completion)

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, 404, upstream.StatusCode)
}
