package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kridsada-n/acctrack/internal/settings"
	"github.com/kridsada-n/acctrack/internal/sqlite"
	"github.com/kridsada-n/acctrack/pkg/types"
)

func newTestServer(t *testing.T) (*Server, *sqlite.Store) {
	t.Helper()

	store := sqlite.New()
	require.NoError(t, store.Open(t.TempDir()))
	t.Cleanup(func() { store.Close() })

	mgr, err := settings.NewManager(t.TempDir())
	require.NoError(t, err)

	return New(store, mgr, t.TempDir()), store
}

// request issues a JSON request against the app and decodes the body
// into a generic map. A nil body sends an empty request.
func request(t *testing.T, s *Server, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := map[string]any{}
	if len(raw) > 0 && resp.StatusCode != http.StatusNoContent {
		// getStorageSettings legitimately returns null.
		if string(raw) != "null" {
			require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
		} else {
			result = nil
		}
	}
	return resp.StatusCode, result
}

func TestBusinessDataEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	// Before any save the profile reads as an empty object.
	code, body := request(t, s, http.MethodGet, "/api/getBusinessData", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body)

	code, body = request(t, s, http.MethodPost, "/api/saveBusinessData", map[string]any{
		"businessType": "juristic",
		"businessName": "Widget Works Co., Ltd.",
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	code, body = request(t, s, http.MethodGet, "/api/getBusinessData", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "juristic", body["businessType"])
	assert.Equal(t, "default", body["id"])
}

func TestSaveBusinessDataRejectsIncomplete(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := request(t, s, http.MethodPost, "/api/saveBusinessData", map[string]any{
		"businessName": "No Type",
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestProductEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := request(t, s, http.MethodPost, "/api/saveProduct", map[string]any{
		"name":      "Widget",
		"unitPrice": 25.5,
		"stock":     10,
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)

	code, body = request(t, s, http.MethodGet, "/api/getProducts", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])
	data, _ := body["data"].([]any)
	require.Len(t, data, 1)
	product := data[0].(map[string]any)
	assert.Equal(t, "Widget", product["name"])

	code, body = request(t, s, http.MethodPost, "/api/updateProduct", map[string]any{
		"id":        id,
		"unitPrice": 30,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	_, body = request(t, s, http.MethodGet, "/api/getProducts", nil)
	product = body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, 30.0, product["unitPrice"])
	assert.Equal(t, "Widget", product["name"])

	code, body = request(t, s, http.MethodPost, "/api/deleteProduct", map[string]any{"id": id})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	_, body = request(t, s, http.MethodGet, "/api/getProducts", nil)
	assert.Empty(t, body["data"])
}

func TestQuotationWireShape(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := request(t, s, http.MethodPost, "/api/saveQuotation", map[string]any{
		"quotationNumber": "QT-2026-001",
		"customerName":    "Acme Trading",
		"items": []map[string]any{
			{"description": "Widget", "quantity": 3, "unitPrice": 100, "amount": 300},
		},
		"subtotal": 300,
		"vat":      21,
		"total":    321,
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"], "error: %v", body["error"])

	code, body = request(t, s, http.MethodGet, "/api/getQuotations", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	q := data[0].(map[string]any)
	// The wire shape keeps the original field names.
	assert.Equal(t, "QT-2026-001", q["quotationNumber"])
	assert.Equal(t, 21.0, q["vat"])
	assert.Equal(t, "draft", q["status"])
	items := q["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].(map[string]any)["description"])
}

func TestDuplicateQuotationReportsError(t *testing.T) {
	s, _ := newTestServer(t)

	payload := map[string]any{
		"quotationNumber": "QT-1",
		"customerName":    "Acme",
		"items":           []map[string]any{},
	}
	_, body := request(t, s, http.MethodPost, "/api/saveQuotation", payload)
	require.Equal(t, true, body["success"])

	code, body := request(t, s, http.MethodPost, "/api/saveQuotation", payload)
	// Failures are payloads, never transport faults.
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestContactDataEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := request(t, s, http.MethodGet, "/api/getContactData", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["data"])

	code, body = request(t, s, http.MethodPost, "/api/saveContactData", map[string]any{
		"houseNumber": "99/1",
		"subDistrict": "Suthep",
		"district":    "Mueang",
		"province":    "Chiang Mai",
		"country":     "Thailand",
		"postalCode":  "50200",
		"phoneNumber": "081-234-5678",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "default", body["id"])

	_, body = request(t, s, http.MethodGet, "/api/getContactData", nil)
	data := body["data"].(map[string]any)
	assert.Equal(t, "50200", data["postalCode"])
}

func TestStorageSettingsEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	// Null before any save signals first-time setup to the client.
	code, body := request(t, s, http.MethodGet, "/api/getStorageSettings", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Nil(t, body)

	code, body = request(t, s, http.MethodPost, "/api/saveStorageSettings", map[string]any{
		"storageType":    "sqlite",
		"autoBackup":     true,
		"backupInterval": 24,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	_, body = request(t, s, http.MethodGet, "/api/getStorageSettings", nil)
	assert.Equal(t, "sqlite", body["storageType"])
	assert.Equal(t, 24.0, body["backupInterval"])
}

func TestRecentFoldersEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/addToRecentFolders",
		bytes.NewReader([]byte(`{"folderPath":"/books/2026"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/getRecentFolders", nil)
	resp, err = s.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var folders []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&folders))
	assert.Equal(t, []string{"/books/2026"}, folders)
}

func TestCheckFolderForExistingData(t *testing.T) {
	s, store := newTestServer(t)

	code, body := request(t, s, http.MethodPost, "/api/checkFolderForExistingData", map[string]any{
		"folderPath": t.TempDir(),
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["hasData"])

	code, body = request(t, s, http.MethodPost, "/api/checkFolderForExistingData", map[string]any{
		"folderPath": store.Path(),
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["hasData"])
	assert.Equal(t, 6.0, body["tableCount"])
}

func TestRelocateStorage(t *testing.T) {
	s, store := newTestServer(t)

	_, body := request(t, s, http.MethodPost, "/api/saveProduct", map[string]any{
		"name": "Widget", "unitPrice": 1,
	})
	require.Equal(t, true, body["success"])

	newDir := t.TempDir()
	code, body := request(t, s, http.MethodPost, "/api/relocateStorage", map[string]any{
		"storageType":  "sqlite",
		"databasePath": newDir,
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"], "error: %v", body["error"])
	assert.Equal(t, newDir, store.Path())

	// The new location starts empty; the old data stays behind.
	_, body = request(t, s, http.MethodGet, "/api/getProducts", nil)
	assert.Empty(t, body["data"])

	_, body = request(t, s, http.MethodGet, "/api/getStorageSettings", nil)
	assert.Equal(t, newDir, body["databasePath"])
}

func TestClosedStoreNeverFaults(t *testing.T) {
	s, store := newTestServer(t)
	require.NoError(t, store.Close())

	code, body := request(t, s, http.MethodPost, "/api/saveProduct", map[string]any{
		"name": "Widget", "unitPrice": 1,
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], types.ErrNotInitialized.Error())

	code, body = request(t, s, http.MethodGet, "/api/getProducts", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestKeyedFileEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := request(t, s, http.MethodPost, "/api/saveFile", map[string]any{
		"id":   "ui-preferences",
		"data": map[string]any{"theme": "dark"},
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	code, body = request(t, s, http.MethodGet, "/api/readFile/ui-preferences", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dark", body["theme"])

	// Unknown keys read as an empty object.
	code, body = request(t, s, http.MethodGet, "/api/readFile/unknown", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body)
}
