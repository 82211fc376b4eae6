//go:build unit

package artifact_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"acacia-booking/internal/infra/artifact"
	"acacia-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRender(t *testing.T) {
	dir := t.TempDir()
	store := artifact.NewFileStore(config.ArtifactConfig{Dir: dir})

	doc := artifact.TicketDocument{
		TicketNumber: "TKT-ABCDE12345",
		Kind:         "room",
		CustomerName: "Ada Wong",
		Email:        "ada@example.com",
		Summary:      "Room 101, 2026-03-10 to 2026-03-12",
		IssuedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	path, err := store.Render(doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "TKT-ABCDE12345.pdf"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "TKT-ABCDE12345")
	assert.Contains(t, string(content), "Ada Wong")
	assert.Contains(t, string(content), "Room 101, 2026-03-10 to 2026-03-12")
}

func TestFileStoreRenderCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tickets")
	store := artifact.NewFileStore(config.ArtifactConfig{Dir: dir})

	path, err := store.Render(artifact.TicketDocument{TicketNumber: "TKT-0000000001"})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
