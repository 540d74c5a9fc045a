package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts-backend/internal/domains/contact"
	"contacts-backend/internal/domains/contact/repository"
	"contacts-backend/internal/domains/contact/service"
	"contacts-backend/internal/shared/response"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewContactHandler(service.NewContactService(repository.NewMemoryRepository()))

	router := gin.New()
	api := router.Group("/api")
	contacts := api.Group("/contacts")
	{
		contacts.GET("", h.ListContacts)
		contacts.GET("/export", h.ExportContacts)
		contacts.GET("/:id", h.GetContact)
		contacts.POST("", h.CreateContact)
		contacts.PUT("/:id", h.UpdateContact)
		contacts.DELETE("/:id", h.DeleteContact)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func contactBody(email, role string) string {
	return fmt.Sprintf(`{
		"name": "Jane Doe",
		"type": "PERSON",
		"email": %q,
		"phone": "+1 (555) 123-4567",
		"address": "42 Main Street",
		"role": %q
	}`, email, role)
}

func TestCreateContactEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/contacts", contactBody("jane@example.com", "CUSTOMER"))
	require.Equal(t, http.StatusCreated, w.Code)

	var dto contact.ContactDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	require.NotNil(t, dto.ContactID)
	assert.Equal(t, contact.TypePerson, dto.Type)
	assert.Equal(t, contact.RoleCustomer, dto.Role)
	assert.False(t, dto.CreatedAt.IsZero())
}

func TestCreateContactCaseInsensitiveEnums(t *testing.T) {
	router := newTestRouter()

	body := `{
		"name": "Acme Corp",
		"type": "company",
		"email": "sales@acme.test",
		"phone": "+84 28 1234 567",
		"address": "1 Industrial Way",
		"role": "Both"
	}`
	w := doRequest(t, router, http.MethodPost, "/api/contacts", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var dto contact.ContactDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, contact.TypeCompany, dto.Type)
	assert.Equal(t, contact.RoleBoth, dto.Role)
}

func TestCreateContactRejectsInvalidEnum(t *testing.T) {
	router := newTestRouter()

	// Unknown role bị reject ngay lúc binding
	w := doRequest(t, router, http.MethodPost, "/api/contacts", contactBody("jane@example.com", "ADMIN"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateContactValidationError(t *testing.T) {
	router := newTestRouter()

	body := `{
		"name": "J",
		"type": "PERSON",
		"email": "jane@example.com",
		"phone": "+1 (555) 123-4567",
		"address": "42 Main Street",
		"role": "CUSTOMER"
	}`
	w := doRequest(t, router, http.MethodPost, "/api/contacts", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errBody response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, http.StatusBadRequest, errBody.Status)
	assert.Equal(t, "BAD_REQUEST", errBody.Error)
	assert.Equal(t, "/api/contacts", errBody.Path)
	assert.NotEmpty(t, errBody.Timestamp)
	assert.Contains(t, errBody.Reason, "name")
}

func TestCreateContactDuplicateConflict(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/contacts", contactBody("jane@example.com", "CUSTOMER"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/contacts", contactBody("jane@example.com", "CUSTOMER"))
	require.Equal(t, http.StatusConflict, w.Code)

	var errBody response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, "CONFLICT", errBody.Error)
	assert.Contains(t, errBody.Reason, "jane@example.com")
}

func TestGetContactEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/contacts", contactBody("jane@example.com", "CUSTOMER"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created contact.ContactDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/contacts/%d", *created.ContactID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var dto contact.ContactDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, "jane@example.com", dto.Email)
}

func TestGetContactNotFound(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/contacts/404", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var errBody response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, "NOT_FOUND", errBody.Error)
	assert.Equal(t, "Contact not found", errBody.Reason)
}

func TestGetContactInvalidID(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/contacts/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateContactEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/contacts", contactBody("jane@example.com", "BOTH"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created contact.ContactDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := fmt.Sprintf("/api/contacts/%d", *created.ContactID)

	// Thu hẹp BOTH => 400
	w = doRequest(t, router, http.MethodPut, path, contactBody("jane@example.com", "CUSTOMER"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPut, path, contactBody("jane.doe@example.com", "BOTH"))
	require.Equal(t, http.StatusOK, w.Code)

	var updated contact.ContactDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "jane.doe@example.com", updated.Email)

	// Update một id không tồn tại
	w = doRequest(t, router, http.MethodPut, "/api/contacts/404", contactBody("x@example.com", "CUSTOMER"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteContactEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/contacts", contactBody("jane@example.com", "CUSTOMER"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created contact.ContactDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := fmt.Sprintf("/api/contacts/%d", *created.ContactID)

	w = doRequest(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// Idempotent: xóa lần hai vẫn 204
	w = doRequest(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListContactsEndpoint(t *testing.T) {
	router := newTestRouter()

	for i := 1; i <= 20; i++ {
		w := doRequest(t, router, http.MethodPost, "/api/contacts",
			contactBody(fmt.Sprintf("c%02d@example.com", i), "CUSTOMER"))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Defaults: page=1, size=15
	w := doRequest(t, router, http.MethodGet, "/api/contacts", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page contact.PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(20), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 15, page.PageSize)
	assert.Len(t, page.Content, 15)

	w = doRequest(t, router, http.MethodGet, "/api/contacts?page=2&size=15", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Content, 5)

	// Search filter
	w = doRequest(t, router, http.MethodGet, "/api/contacts?search=c01", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.TotalElements)

	// Paging params không hợp lệ
	w = doRequest(t, router, http.MethodGet, "/api/contacts?page=0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/contacts?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportContactsEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/contacts", contactBody("jane@example.com", "CUSTOMER"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, router, http.MethodPost, "/api/contacts", contactBody("john@example.com", "SUPPLIER"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/contacts/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "contacts.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "contactId,name,type,email,phone,address,role,createdAt", lines[0])
	assert.Contains(t, w.Body.String(), "jane@example.com")
	assert.Contains(t, w.Body.String(), "john@example.com")
}
