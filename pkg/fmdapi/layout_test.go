package fmdapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FetchesLayoutSchema(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, testBase+"/layouts/Contacts", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		writeEnvelope(w, map[string]any{
			"fieldMetaData": []map[string]any{
				{"name": "Name", "type": "normal", "result": "text", "notEmpty": true},
				{"name": "Age", "type": "normal", "result": "number", "numeric": true},
			},
			"portalMetaData": map[string]any{
				"Phones": []map[string]any{
					{"name": "Phones::Number", "type": "normal", "result": "text"},
				},
			},
		})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	meta, err := client.Metadata(context.Background(), MetadataParams{})
	require.NoError(t, err)

	require.Len(t, meta.FieldMetaData, 2)
	assert.Equal(t, "Name", meta.FieldMetaData[0].Name)
	assert.True(t, meta.FieldMetaData[0].NotEmpty)
	assert.True(t, meta.FieldMetaData[1].Numeric)
	require.Contains(t, meta.PortalMetaData, "Phones")
	assert.Equal(t, "Phones::Number", meta.PortalMetaData["Phones"][0].Name)
}

func TestLayouts_ListsDatabaseLayouts(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		require.Equal(t, testBase+"/layouts", r.URL.Path)
		writeEnvelope(w, map[string]any{
			"layouts": []map[string]any{
				{"name": "Contacts"},
				{
					"name":     "Admin",
					"isFolder": true,
					"folderLayoutNames": []map[string]any{
						{"name": "Users"},
					},
				},
			},
		})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	layouts, err := client.Layouts(context.Background())
	require.NoError(t, err)

	require.Len(t, layouts, 2)
	assert.Equal(t, "Contacts", layouts[0].Name)
	assert.True(t, layouts[1].IsFolder)
	require.Len(t, layouts[1].FolderLayoutNames, 1)
	assert.Equal(t, "Users", layouts[1].FolderLayoutNames[0].Name)
}

func TestRunScript_PassesParam(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		require.Equal(t, testBase+"/layouts/Contacts/script/Nightly%20Cleanup", r.URL.EscapedPath())
		assert.Equal(t, "dry-run", r.URL.Query().Get("script.param"))
		writeEnvelope(w, map[string]any{"scriptError": "0", "scriptResult": "12 rows"})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	res, err := client.RunScript(context.Background(), ScriptParams{
		Name:  "Nightly Cleanup",
		Param: "dry-run",
	})
	require.NoError(t, err)
	assert.Equal(t, "0", res.Error)
	assert.Equal(t, "12 rows", res.Result)
}

func TestRunScript_RequiresName(t *testing.T) {
	client := testClient(t, "https://fms.invalid")
	_, err := client.RunScript(context.Background(), ScriptParams{})
	assert.ErrorIs(t, err, ErrNoScript)
}
