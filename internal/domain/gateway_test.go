package domain_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prismaglow/chatproxy/internal/domain"
	"github.com/prismaglow/chatproxy/internal/mocks"
)

func authorizedOrg(directory *mocks.MockDirectory, orgSlug, userID string) {
	directory.EXPECT().
		Authorize(mock.Anything, orgSlug, userID).
		Return(&domain.Organization{ID: "org-1", Slug: orgSlug}, nil)
}

func TestGatewayService_Create(t *testing.T) {
	t.Run("should forward request and record debug event with completion id", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{
			OrgSlug: "acme",
			Payload: map[string]any{"model": "gpt-4.1", "messages": []any{}},
		}

		authorizedOrg(mockDirectory, "acme", "user-1")

		mockAPI.EXPECT().
			Create(mock.Anything, req.Payload).
			Return(&domain.Completion{ID: "chatcmpl-123"}, nil)

		var recorded *domain.DebugEvent
		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, event *domain.DebugEvent) {
				recorded = event
			}).
			Once()

		completion, err := gateway.Create(context.Background(), "user-1", req)

		require.NoError(t, err)
		require.Equal(t, "chatcmpl-123", completion.ID)
		require.NotNil(t, recorded)
		require.Equal(t, "chatcmpl-123", recorded.RequestID)
		require.Equal(t, domain.EndpointCreate, recorded.Endpoint)
		require.Equal(t, "acme", recorded.Metadata.Extras["orgSlug"])
		require.NotContains(t, recorded.Metadata.Extras, "streaming")
	})

	t.Run("should record debug event with synthesized id on upstream failure", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{
			OrgSlug: "acme",
			Payload: map[string]any{"model": "gpt-4.1"},
		}

		authorizedOrg(mockDirectory, "acme", "user-1")

		mockAPI.EXPECT().
			Create(mock.Anything, req.Payload).
			Return(nil, errors.New("upstream down"))

		var recorded *domain.DebugEvent
		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, event *domain.DebugEvent) {
				recorded = event
			}).
			Once()

		completion, err := gateway.Create(context.Background(), "user-1", req)

		require.Error(t, err)
		require.Nil(t, completion)
		require.NotNil(t, recorded)
		require.True(t, strings.HasPrefix(recorded.RequestID, "synthetic_"))
	})

	t.Run("should not call upstream or record when authorization fails", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{
			OrgSlug: "acme",
			Payload: map[string]any{"model": "gpt-4.1"},
		}

		mockDirectory.EXPECT().
			Authorize(mock.Anything, "acme", "stranger").
			Return(nil, domain.ErrNotMember)

		completion, err := gateway.Create(context.Background(), "stranger", req)

		require.ErrorIs(t, err, domain.ErrNotMember)
		require.Nil(t, completion)
	})

	t.Run("should reject empty org slug without directory lookup", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{Payload: map[string]any{"model": "gpt-4.1"}}

		completion, err := gateway.Create(context.Background(), "user-1", req)

		require.ErrorIs(t, err, domain.ErrOrgNotFound)
		require.Nil(t, completion)
	})
}

func TestGatewayService_Metadata(t *testing.T) {
	t.Run("should merge configured and request tags and fall back to default quota tag", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{
			Tags:     []string{"proxy", "prod"},
			QuotaTag: "default-quota",
		})

		req := &domain.ProxyRequest{
			OrgSlug:  "acme",
			Tags:     []string{"chat-ui"},
			Metadata: map[string]string{"feature": "assistant"},
			Payload:  map[string]any{"model": "gpt-4.1"},
		}

		authorizedOrg(mockDirectory, "acme", "user-1")

		mockAPI.EXPECT().
			Create(mock.Anything, req.Payload).
			Return(&domain.Completion{ID: "chatcmpl-1"}, nil)

		var recorded *domain.DebugEvent
		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, event *domain.DebugEvent) {
				recorded = event
			}).
			Once()

		_, err := gateway.Create(context.Background(), "user-1", req)

		require.NoError(t, err)
		require.Equal(t, "default-quota", recorded.Metadata.QuotaTag)
		require.Equal(t, []string{"proxy", "prod", "chat-ui"}, recorded.Metadata.Extras["tags"])
		require.Equal(t, map[string]string{"feature": "assistant"}, recorded.Metadata.Extras["metadata"])
	})

	t.Run("should prefer request quota tag over default", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{
			QuotaTag: "default-quota",
		})

		req := &domain.ProxyRequest{
			OrgSlug:  "acme",
			QuotaTag: "team-quota",
			Payload:  map[string]any{"model": "gpt-4.1"},
		}

		authorizedOrg(mockDirectory, "acme", "user-1")

		mockAPI.EXPECT().
			Create(mock.Anything, req.Payload).
			Return(&domain.Completion{ID: "chatcmpl-1"}, nil)

		var recorded *domain.DebugEvent
		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, event *domain.DebugEvent) {
				recorded = event
			}).
			Once()

		_, err := gateway.Create(context.Background(), "user-1", req)

		require.NoError(t, err)
		require.Equal(t, "team-quota", recorded.Metadata.QuotaTag)
	})
}

func TestGatewayService_RecordStreamCall(t *testing.T) {
	t.Run("should record stream event with given id and streaming flag", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{
			OrgSlug: "acme",
			Payload: map[string]any{"model": "gpt-4.1", "stream": true},
		}

		var recorded *domain.DebugEvent
		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, event *domain.DebugEvent) {
				recorded = event
			}).
			Once()

		gateway.RecordStreamCall(context.Background(), req, "chatcmpl-stream-1")

		require.NotNil(t, recorded)
		require.Equal(t, "chatcmpl-stream-1", recorded.RequestID)
		require.Equal(t, domain.EndpointCreate, recorded.Endpoint)
		require.Equal(t, true, recorded.Metadata.Extras["streaming"])
	})

	t.Run("should synthesize id when the stream yielded no chunks", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{
			OrgSlug: "acme",
			Payload: map[string]any{"model": "gpt-4.1", "stream": true},
		}

		var recorded *domain.DebugEvent
		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, event *domain.DebugEvent) {
				recorded = event
			}).
			Once()

		gateway.RecordStreamCall(context.Background(), req, "")

		require.NotNil(t, recorded)
		require.True(t, strings.HasPrefix(recorded.RequestID, "synthetic_"))
	})

	t.Run("should record even when the request context is canceled", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{
			OrgSlug: "acme",
			Payload: map[string]any{"model": "gpt-4.1", "stream": true},
		}

		var recordedCtx context.Context
		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, _ *domain.DebugEvent) {
				recordedCtx = ctx
			}).
			Once()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		gateway.RecordStreamCall(ctx, req, "chatcmpl-stream-1")

		require.NotNil(t, recordedCtx)
		require.NoError(t, recordedCtx.Err())
	})
}

func TestGatewayService_Retrieve(t *testing.T) {
	t.Run("should record debug event even when upstream fails", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{OrgSlug: "acme"}

		authorizedOrg(mockDirectory, "acme", "user-1")

		mockAPI.EXPECT().
			Retrieve(mock.Anything, "chatcmpl-404").
			Return(nil, &domain.UpstreamError{StatusCode: 404, Message: "not found"})

		var recorded *domain.DebugEvent
		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, event *domain.DebugEvent) {
				recorded = event
			}).
			Once()

		completion, err := gateway.Retrieve(context.Background(), "user-1", req, "chatcmpl-404")

		require.Error(t, err)
		require.Nil(t, completion)
		require.Equal(t, "chatcmpl-404", recorded.RequestID)
		require.Equal(t, domain.EndpointRetrieve, recorded.Endpoint)
	})
}

func TestGatewayService_Delete(t *testing.T) {
	t.Run("should return deletion flag and tag the event with the delete endpoint", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{OrgSlug: "acme"}

		authorizedOrg(mockDirectory, "acme", "user-1")

		mockAPI.EXPECT().
			Delete(mock.Anything, "chatcmpl-9").
			Return(true, nil)

		var recorded *domain.DebugEvent
		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, event *domain.DebugEvent) {
				recorded = event
			}).
			Once()

		deleted, err := gateway.Delete(context.Background(), "user-1", req, "chatcmpl-9")

		require.NoError(t, err)
		require.True(t, deleted)
		require.Equal(t, domain.EndpointDelete, recorded.Endpoint)
	})
}

func TestGatewayService_List(t *testing.T) {
	t.Run("should pass the page through untouched", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{OrgSlug: "acme"}
		filter := domain.ListFilter{Limit: 2, Model: "gpt-4.1"}

		cursor := "chatcmpl-2"
		upstream := &domain.Page{HasMore: true, NextCursor: &cursor}

		authorizedOrg(mockDirectory, "acme", "user-1")

		mockAPI.EXPECT().
			List(mock.Anything, filter).
			Return(upstream, nil)

		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Once()

		page, err := gateway.List(context.Background(), "user-1", req, filter)

		require.NoError(t, err)
		require.Same(t, upstream, page)
	})
}

func TestGatewayService_ListMessages(t *testing.T) {
	t.Run("should tag the event with the messages endpoint", func(t *testing.T) {
		mockAPI := mocks.NewMockCompletionAPI(t)
		mockDirectory := mocks.NewMockDirectory(t)
		mockRecorder := mocks.NewMockDebugRecorder(t)

		gateway := domain.NewGatewayService(mockAPI, mockDirectory, mockRecorder, domain.RequestDefaults{})

		req := &domain.ProxyRequest{OrgSlug: "acme"}
		filter := domain.MessageFilter{Order: "asc"}

		authorizedOrg(mockDirectory, "acme", "user-1")

		mockAPI.EXPECT().
			ListMessages(mock.Anything, "chatcmpl-7", filter).
			Return(&domain.Page{}, nil)

		var recorded *domain.DebugEvent
		mockRecorder.EXPECT().
			Record(mock.Anything, mock.Anything).
			Run(func(_ context.Context, event *domain.DebugEvent) {
				recorded = event
			}).
			Once()

		_, err := gateway.ListMessages(context.Background(), "user-1", req, "chatcmpl-7", filter)

		require.NoError(t, err)
		require.Equal(t, domain.EndpointListMessages, recorded.Endpoint)
		require.Equal(t, "chatcmpl-7", recorded.RequestID)
	})
}
