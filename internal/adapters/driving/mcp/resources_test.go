package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

func TestServer_handleStatsResource(t *testing.T) {
	ports, _, search, _ := testPorts()
	search.stats = domain.IndexStats{DocumentCount: 12, ContactCount: 3, EstimatedSizeMB: 0.005}
	server, err := NewServer(ports)
	require.NoError(t, err)

	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uriScheme + "stats"},
	}
	result, err := server.handleStatsResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	content := result.Contents[0]
	assert.Equal(t, "rolo://stats", content.URI)
	assert.Equal(t, "application/json", content.MIMEType)

	var stats IndexStatsOutput
	require.NoError(t, json.Unmarshal([]byte(content.Text), &stats))
	assert.Equal(t, 12, stats.DocumentCount)
	assert.Equal(t, 3, stats.ContactCount)
}
