package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linq/acme-integration/internal/application/integration"
	"github.com/linq/acme-integration/internal/domain/contact"
	"github.com/linq/acme-integration/internal/infrastructure/acme"
	"github.com/linq/acme-integration/internal/interfaces/http/dto"
	"github.com/linq/acme-integration/internal/interfaces/http/middleware"
	"github.com/linq/acme-integration/internal/testutil"
)

type contactFixture struct {
	router *gin.Engine
	store  *acme.Service
}

func newContactFixture(t *testing.T) *contactFixture {
	t.Helper()
	store := acme.NewService()
	svc := integration.NewContactService(store)
	h := NewContactHandler(svc)
	m := NewMappingHandler(svc)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/mapping/schema", m.Schema)

	protected := router.Group("/contacts", middleware.BearerAuth(middleware.TokenResolver(staticResolver{})))
	protected.POST("", h.Create)
	protected.GET("", h.List)
	protected.GET("/stats", h.Stats)
	protected.GET("/:id", h.Get)
	protected.PATCH("/:id/status", h.UpdateStatus)
	protected.DELETE("/:id", h.Delete)

	return &contactFixture{router: router, store: store}
}

type staticResolver struct{}

func (staticResolver) Resolve(string) (string, error) { return "demo_user", nil }

func (f *contactFixture) do(method, path, body string) *httptest.ResponseRecorder {
	return testutil.Serve(f.router, method, path, "linq-demo-token", body)
}

const johnDoe = `{"firstName":"John","lastName":"Doe","email":"john.doe@example.com"}`

func (f *contactFixture) create(t *testing.T, body string) string {
	t.Helper()
	w := f.do(http.MethodPost, "/contacts", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return testutil.DecodeJSON[integration.CreateResult](t, w).ContactID
}

func TestContactHandler_Create(t *testing.T) {
	f := newContactFixture(t)

	w := f.do(http.MethodPost, "/contacts", johnDoe)

	require.Equal(t, http.StatusOK, w.Code)
	res := testutil.DecodeJSON[integration.CreateResult](t, w)
	assert.True(t, res.Success)
	assert.Regexp(t, `^acme_[0-9a-f]{8}$`, res.ContactID)
	assert.Equal(t, "Contact successfully created in AcmeCRM by user demo_user", res.Message)

	rec, ok := f.store.Get(res.ContactID)
	require.True(t, ok)
	assert.Equal(t, "John", rec.Contact.FirstName)
	assert.Equal(t, contact.StatusActive, rec.Status)
}

func TestContactHandler_Create_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{"invalid email", `{"firstName":"John","lastName":"Doe","email":"nope"}`, http.StatusBadRequest, dto.ErrCodeValidation, "email"},
		{"missing first name", `{"lastName":"Doe","email":"john@example.com"}`, http.StatusBadRequest, dto.ErrCodeValidation, "firstName"},
		{"phone too long", `{"firstName":"John","lastName":"Doe","email":"john@example.com","phone":"` + strings.Repeat("1", 21) + `"}`, http.StatusBadRequest, dto.ErrCodeValidation, "phone"},
		{"malformed json", `{"firstName":`, http.StatusBadRequest, dto.ErrCodeInvalidJSON, ""},
		{"wrong type", `{"firstName":5}`, http.StatusBadRequest, dto.ErrCodeInvalidJSON, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContactFixture(t)

			w := f.do(http.MethodPost, "/contacts", tt.body)

			resp := testutil.AssertErrorResponse(t, w, tt.wantStatus, tt.wantCode)
			if tt.wantField != "" {
				require.Len(t, resp.Error.Details, 1)
				assert.Equal(t, tt.wantField, resp.Error.Details[0].Field)
			}
			assert.Empty(t, f.store.List(), "nothing is stored on rejection")
		})
	}
}

func TestContactHandler_ListAndGet(t *testing.T) {
	f := newContactFixture(t)
	first := f.create(t, johnDoe)
	f.create(t, `{"firstName":"Jane","lastName":"Roe","email":"jane@example.com","company":"Acme"}`)

	w := f.do(http.MethodGet, "/contacts", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := testutil.DecodeJSON[[]contact.LinqContact](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "John", list[0].FirstName)
	assert.Equal(t, "Acme", list[1].Company)

	w = f.do(http.MethodGet, "/contacts/"+first, "")
	require.Equal(t, http.StatusOK, w.Code)
	view := testutil.DecodeJSON[map[string]any](t, w)
	assert.Equal(t, first, view["id"])
	assert.Equal(t, "active", view["status"])
	assert.Equal(t, "john.doe@example.com", view["email"])
	assert.Regexp(t, `Z$`, view["created_at"])
	assert.NotContains(t, view, "phone")
}

func TestContactHandler_List_Empty(t *testing.T) {
	f := newContactFixture(t)

	w := f.do(http.MethodGet, "/contacts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestContactHandler_NotFound(t *testing.T) {
	f := newContactFixture(t)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/contacts/acme_00000000", ""},
		{http.MethodDelete, "/contacts/acme_00000000", ""},
		{http.MethodPatch, "/contacts/acme_00000000/status", `{"status":"inactive"}`},
	} {
		w := f.do(tc.method, tc.path, tc.body)
		resp := testutil.AssertErrorResponse(t, w, http.StatusNotFound, dto.ErrCodeNotFound)
		assert.Equal(t, "Contact acme_00000000 not found", resp.Error.Message)
	}
}

func TestContactHandler_StatusLifecycle(t *testing.T) {
	f := newContactFixture(t)
	id := f.create(t, johnDoe)
	f.create(t, johnDoe)

	w := f.do(http.MethodPatch, "/contacts/"+id+"/status", `{"status":"inactive"}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(http.MethodGet, "/contacts/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"user": "demo_user",
		"acmecrm_stats": {"total_contacts": 2, "active_contacts": 1, "inactive_contacts": 1},
		"integration_status": "active"
	}`, w.Body.String())

	w = f.do(http.MethodDelete, "/contacts/"+id, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	w = f.do(http.MethodDelete, "/contacts/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactHandler_UpdateStatus_RequiresStatus(t *testing.T) {
	f := newContactFixture(t)
	id := f.create(t, johnDoe)

	w := f.do(http.MethodPatch, "/contacts/"+id+"/status", `{}`)

	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, dto.ErrCodeValidation)
}

func TestMappingHandler_Schema(t *testing.T) {
	f := newContactFixture(t)

	w := testutil.Serve(f.router, http.MethodGet, "/mapping/schema", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	schema := testutil.DecodeJSON[contact.MappingSchema](t, w)
	assert.Equal(t, "acme_phone_number", schema.LinqToAcme["phone"])
	assert.Equal(t, "company", schema.AcmeToLinq["acme_company_name"])
	assert.Equal(t, contact.SchemaDescription, schema.Description)
}
