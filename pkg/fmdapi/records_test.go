package fmdapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_RenamesPagingAndSortParams(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		q := r.URL.Query()
		assert.Equal(t, "10", q.Get("_limit"))
		assert.Equal(t, "5", q.Get("_offset"))
		assert.Equal(t, `["Name"]`, q.Get("_sort"), "bare sort value must be wrapped in a sequence")
		assert.False(t, q.Has("limit"))
		assert.False(t, q.Has("offset"))
		assert.False(t, q.Has("sort"))
		writeEnvelope(w, map[string]any{"data": []any{}})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	_, err := client.List(context.Background(), ListParams{Limit: 10, Offset: 5, Sort: "Name"})
	require.NoError(t, err)
}

func TestList_AbsentParamsAreNotInjected(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, testBase+"/layouts/Contacts/records", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		writeEnvelope(w, map[string]any{"data": []any{}})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	_, err := client.List(context.Background(), ListParams{})
	require.NoError(t, err)
}

func TestList_SortSliceIsEncodedAsIs(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		var sort []SortField
		require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("_sort")), &sort))
		require.Len(t, sort, 2)
		assert.Equal(t, SortField{FieldName: "Last", SortOrder: "descend"}, sort[0])
		assert.Equal(t, SortField{FieldName: "First"}, sort[1])
		writeEnvelope(w, map[string]any{"data": []any{}})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	_, err := client.List(context.Background(), ListParams{
		Sort: []SortField{
			{FieldName: "Last", SortOrder: "descend"},
			{FieldName: "First"},
		},
	})
	require.NoError(t, err)
}

func TestList_PassthroughParams(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		assert.Equal(t, "MyScript", r.URL.Query().Get("script"))
		writeEnvelope(w, map[string]any{"data": []any{}})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	_, err := client.List(context.Background(), ListParams{
		Params: map[string]string{"script": "MyScript"},
	})
	require.NoError(t, err)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	// Minimal in-memory record store keyed by record id.
	records := map[string]map[string]any{}

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == testBase+"/sessions":
			loginOK(w)
		case r.Method == http.MethodPost && r.URL.Path == testBase+"/layouts/Contacts/records":
			var body struct {
				FieldData map[string]any `json:"fieldData"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			records["101"] = body.FieldData
			writeEnvelope(w, map[string]any{"recordId": "101", "modId": "0"})
		case r.Method == http.MethodGet && r.URL.Path == testBase+"/layouts/Contacts/records/101":
			writeEnvelope(w, map[string]any{
				"data": []map[string]any{
					{"recordId": "101", "modId": "0", "fieldData": records["101"]},
				},
			})
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	ctx := context.Background()

	created, err := client.Create(ctx, CreateParams{
		FieldData: map[string]any{"Name": "Ada", "Email": "ada@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "101", created.RecordID)

	set, err := client.Get(ctx, GetParams{RecordID: created.RecordID})
	require.NoError(t, err)
	require.Len(t, set.Data, 1)
	assert.Equal(t, "Ada", set.Data[0].FieldData["Name"])
	assert.Equal(t, "ada@example.com", set.Data[0].FieldData["Email"])
}

func TestCreate_MergesExtraIntoBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "fieldData")
		assert.Contains(t, body, "portalData")
		assert.Equal(t, "AfterCreate", body["script"])
		writeEnvelope(w, map[string]any{"recordId": "1", "modId": "0"})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	_, err := client.Create(context.Background(), CreateParams{
		FieldData: map[string]any{"Name": "Ada"},
		Extra: map[string]any{
			"portalData": map[string]any{"Phones": []any{}},
			"script":     "AfterCreate",
			"fieldData":  "must not clobber", // reserved key is dropped
		},
	})
	require.NoError(t, err)
}

func TestUpdate_PatchesRecord(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, testBase+"/layouts/Contacts/records/42", r.URL.Path)
		var body struct {
			FieldData map[string]any `json:"fieldData"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Lovelace", body.FieldData["Last"])
		writeEnvelope(w, map[string]any{"modId": "3"})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	res, err := client.Update(context.Background(), UpdateParams{
		RecordID:  "42",
		FieldData: map[string]any{"Last": "Lovelace"},
	})
	require.NoError(t, err)
	assert.Equal(t, "3", res.ModID)
}

func TestDelete_IssuesDelete(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, testBase+"/layouts/Contacts/records/42", r.URL.Path)
		writeEnvelope(w, map[string]any{})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	err := client.Delete(context.Background(), DeleteParams{RecordID: "42"})
	require.NoError(t, err)
}

func TestDuplicate_PostsToRecordPath(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testBase+"/layouts/Contacts/records/42", r.URL.Path)
		writeEnvelope(w, map[string]any{"recordId": "43", "modId": "0"})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	res, err := client.Duplicate(context.Background(), DuplicateParams{RecordID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "43", res.RecordID)
}

func TestOperations_ExplicitLayoutOverridesDefault(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == testBase+"/sessions" {
			loginOK(w)
			return
		}
		assert.Equal(t, testBase+"/layouts/Invoices/records", r.URL.Path)
		writeEnvelope(w, map[string]any{"data": []any{}})
	}))
	defer mockServer.Close()

	client := testClient(t, mockServer.URL)
	_, err := client.List(context.Background(), ListParams{Layout: "Invoices"})
	require.NoError(t, err)
}

func TestOperations_MissingLayoutFailsBeforeNetwork(t *testing.T) {
	var requests int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		loginOK(w)
	}))
	defer mockServer.Close()

	client, err := New(&Config{
		Server:   mockServer.URL,
		Database: "TestDB",
		Username: "tester",
		Password: "secret",
		// no default layout
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = client.List(ctx, ListParams{})
	assert.ErrorIs(t, err, ErrNoLayout)
	_, err = client.Create(ctx, CreateParams{})
	assert.ErrorIs(t, err, ErrNoLayout)
	_, err = client.Find(ctx, FindParams{Query: map[string]any{"a": "b"}})
	assert.ErrorIs(t, err, ErrNoLayout)

	assert.Zero(t, atomic.LoadInt32(&requests), "layout resolution must fail before any network call")
}
