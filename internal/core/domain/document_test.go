package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentType_Valid(t *testing.T) {
	assert.True(t, DocumentTypeHistory.Valid())
	assert.True(t, DocumentTypeTab.Valid())
	assert.True(t, DocumentTypeBookmark.Valid())
	assert.False(t, DocumentType("download").Valid())
	assert.False(t, DocumentType("").Valid())
}

func TestDocumentType_ExpiryWindow(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, DocumentTypeHistory.ExpiryWindow())
	assert.Equal(t, 30*24*time.Hour, DocumentTypeTab.ExpiryWindow())
	assert.Equal(t, 30*24*time.Hour, DocumentTypeBookmark.ExpiryWindow())
}

func TestDocument_IsExpired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		docType DocumentType
		age     time.Duration
		want    bool
	}{
		{"fresh history", DocumentTypeHistory, time.Hour, false},
		{"history at six days", DocumentTypeHistory, 6 * 24 * time.Hour, false},
		{"history past seven days", DocumentTypeHistory, 7*24*time.Hour + time.Minute, true},
		{"tab at seven days", DocumentTypeTab, 7 * 24 * time.Hour, false},
		{"tab past thirty days", DocumentTypeTab, 30*24*time.Hour + time.Minute, true},
		{"bookmark at 29 days", DocumentTypeBookmark, 29 * 24 * time.Hour, false},
		{"bookmark past thirty days", DocumentTypeBookmark, 31 * 24 * time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{Type: tt.docType, Timestamp: now.Add(-tt.age)}
			assert.Equal(t, tt.want, doc.IsExpired(now))
		})
	}
}

func TestDocumentID_Deterministic(t *testing.T) {
	a := DocumentID(DocumentTypeHistory, "https://example.com/page")
	b := DocumentID(DocumentTypeHistory, "https://example.com/page")
	assert.Equal(t, a, b, "same (type, url) must map to the same ID")

	require.Len(t, a, 16)
}

func TestDocumentID_DistinguishesTypeAndURL(t *testing.T) {
	history := DocumentID(DocumentTypeHistory, "https://example.com")
	tab := DocumentID(DocumentTypeTab, "https://example.com")
	other := DocumentID(DocumentTypeHistory, "https://example.org")

	assert.NotEqual(t, history, tab, "same URL, different type")
	assert.NotEqual(t, history, other, "same type, different URL")
}

func TestNewIndex(t *testing.T) {
	idx := NewIndex()
	assert.Empty(t, idx.Documents)
	assert.Equal(t, SchemaVersion, idx.Version)
}
