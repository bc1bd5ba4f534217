package services

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/chatstream/pkg/models"
	testdb "github.com/codeready-toolchain/chatstream/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLHash(t *testing.T) {
	h := URLHash("https://go.dev/doc/effective_go")
	assert.Len(t, h, 16)
	assert.Equal(t, h, URLHash("https://go.dev/doc/effective_go"))
	assert.NotEqual(t, h, URLHash("https://go.dev/doc/effective_go#channels"))
	// sha256("") prefix
	assert.Equal(t, "e3b0c44298fc1c14", URLHash(""))
}

func TestSourceDomain(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "https://www.Example.com/a", want: "example.com"},
		{url: "http://go.dev:8080/doc", want: "go.dev"},
		{url: "", wantErr: true},
		{url: "ftp://example.com/file", wantErr: true},
		{url: "/relative/path", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := sourceDomain(tt.url)
			if tt.wantErr {
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResourceService_Sources(t *testing.T) {
	client := testdb.NewTestClient(t)
	interactions := NewInteractionService(client.Client)
	svc := NewResourceService(client.Client)
	ctx := context.Background()

	interaction := createTestInteraction(t, interactions, "sess-src")

	src, created, err := svc.CreateSource(ctx, interaction.ID, models.CreateSourceRequest{
		URL: "https://www.example.com/article", Title: "Article",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "example.com", src.Domain)
	assert.Equal(t, URLHash("https://www.example.com/article"), src.URLHash)

	dup, created, err := svc.CreateSource(ctx, interaction.ID, models.CreateSourceRequest{
		URL: "https://www.example.com/article", Title: "Different title",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, src.ID, dup.ID)
	assert.Equal(t, "Article", dup.Title)

	_, _, err = svc.CreateSource(ctx, interaction.ID, models.CreateSourceRequest{URL: "https://go.dev/"})
	require.NoError(t, err)

	list, err := svc.ListSources(ctx, interaction.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, src.ID, list[0].ID)

	_, _, err = svc.CreateSource(ctx, "missing-interaction", models.CreateSourceRequest{URL: "https://go.dev/"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResourceService_Artifacts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewResourceService(client.Client)
	ctx := context.Background()

	a, created, err := svc.CreateArtifact(ctx, "sess-art", models.CreateArtifactRequest{
		ArtifactKey: "report", Title: "Report", ContentType: "text/markdown", Content: "# Report",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "sess-art", a.SessionID)

	dup, created, err := svc.CreateArtifact(ctx, "sess-art", models.CreateArtifactRequest{ArtifactKey: "report"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, a.ID, dup.ID)

	// Same key in another session is a distinct artifact.
	_, created, err = svc.CreateArtifact(ctx, "sess-other", models.CreateArtifactRequest{ArtifactKey: "report"})
	require.NoError(t, err)
	assert.True(t, created)

	list, err := svc.ListArtifacts(ctx, "sess-art")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, _, err = svc.CreateArtifact(ctx, "sess-art", models.CreateArtifactRequest{})
	assert.True(t, IsValidationError(err))
}
