package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-browser/recall/internal/core/domain"
)

func TestIndexCmd_Use(t *testing.T) {
	assert.Equal(t, "index [url | records.json]", indexCmd.Use)
}

func TestIndexCmd_Short(t *testing.T) {
	assert.Equal(t, "Index browsing records", indexCmd.Short)
}

func TestIndexCmd_HasTypeFlag(t *testing.T) {
	flag := indexCmd.Flags().Lookup("type")
	require.NotNil(t, flag, "type flag should exist")
	assert.Equal(t, "t", flag.Shorthand)
	assert.Equal(t, "history", flag.DefValue)
}

func TestIndexCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"index"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestIndexCmd_IndexesSingleURL(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "--title", "Example", "https://example.com/page"})
	defer func() {
		rootCmd.SetArgs(nil)
		indexTitle = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexed https://example.com/page")
	assert.Equal(t, 1, documentStore.Stats().Total)

	id := domain.DocumentID(domain.DocumentTypeHistory, "https://example.com/page")
	doc, ok := documentStore.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Example", doc.Title)
}

func TestIndexCmd_IndexesBatchFromFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"type":"history","url":"https://a.example","title":"A"},
		{"type":"tab","url":"https://b.example","title":"B"}
	]`), 0600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexed 2 records")
	assert.Equal(t, 2, documentStore.Stats().Total)
}

func TestIndexCmd_RejectsUnknownType(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"index", "--type", "popup", "https://example.com"})
	defer func() {
		rootCmd.SetArgs(nil)
		indexType = "history"
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}
