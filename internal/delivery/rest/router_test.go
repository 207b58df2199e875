package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"employee-directory/internal/app/service"
	"employee-directory/internal/domain"
	"employee-directory/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T, dbPath string) *testServer {
	t.Helper()
	store := sqlite.NewStore(dbPath, time.Second)
	svc := service.NewEmployeeService(sqlite.NewSqliteEmployeeRepo(store), nil)
	h, err := NewRouter(NewHandler(svc, zap.NewNop()), zap.NewNop())
	require.NoError(t, err)
	return &testServer{t: t, handler: h}
}

// createTestServer поднимает роутер поверх свежей базы во временном каталоге.
func createTestServer(t *testing.T) *testServer {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.db")
	require.NoError(t, sqlite.NewStore(path, time.Second).EnsureSchema(context.Background()))
	return newTestServer(t, path)
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) list() []domain.Employee {
	s.t.Helper()
	rec := s.do(http.MethodGet, "/employees", "")
	require.Equal(s.t, http.StatusOK, rec.Code)
	var employees []domain.Employee
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &employees))
	return employees
}

func TestIndexPage(t *testing.T) {
	s := createTestServer(t)

	rec := s.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Employee Directory")

	rec = s.do(http.MethodGet, "/static/script.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "loadEmployees")
}

func TestListEmpty(t *testing.T) {
	s := createTestServer(t)

	rec := s.do(http.MethodGet, "/employees", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCrudScenario(t *testing.T) {
	s := createTestServer(t)

	rec := s.do(http.MethodPost, "/employees", `{"name":"Ada","email":"ada@x.com","role":"Engineer"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Employee added"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/employees", "")
	assert.JSONEq(t, `[{"id":1,"name":"Ada","email":"ada@x.com","role":"Engineer"}]`, rec.Body.String())

	rec = s.do(http.MethodPut, "/employees/1", `{"name":"Ada L.","email":"ada@x.com","role":"Lead Engineer"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Employee updated"}`, rec.Body.String())
	assert.Equal(t, []domain.Employee{{ID: 1, Name: "Ada L.", Email: "ada@x.com", Role: "Lead Engineer"}}, s.list())

	rec = s.do(http.MethodDelete, "/employees/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Employee deleted"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/employees", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPostAssignsFreshIDs(t *testing.T) {
	s := createTestServer(t)
	seen := map[int64]bool{}

	for _, name := range []string{"Ada", "Grace", "Linus"} {
		rec := s.do(http.MethodPost, "/employees", `{"name":"`+name+`","email":"e@x.com","role":"Engineer"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var matches []domain.Employee
		for _, e := range s.list() {
			if e.Name == name {
				matches = append(matches, e)
			}
		}
		require.Len(t, matches, 1)
		assert.False(t, seen[matches[0].ID])
		seen[matches[0].ID] = true
	}
}

func TestPutLeavesOthersUnchanged(t *testing.T) {
	s := createTestServer(t)
	s.do(http.MethodPost, "/employees", `{"name":"Ada","email":"ada@x.com","role":"Engineer"}`)
	s.do(http.MethodPost, "/employees", `{"name":"Grace","email":"grace@x.com","role":"Admiral"}`)

	rec := s.do(http.MethodPut, "/employees/2", `{"name":"Grace H.","email":"gh@x.com","role":"Rear Admiral"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []domain.Employee{
		{ID: 1, Name: "Ada", Email: "ada@x.com", Role: "Engineer"},
		{ID: 2, Name: "Grace H.", Email: "gh@x.com", Role: "Rear Admiral"},
	}, s.list())
}

func TestMissingFieldsRejected(t *testing.T) {
	s := createTestServer(t)
	s.do(http.MethodPost, "/employees", `{"name":"Ada","email":"ada@x.com","role":"Engineer"}`)
	before := s.list()

	bodies := []string{
		`{"email":"ada@x.com","role":"Engineer"}`,
		`{"name":"Ada","role":"Engineer"}`,
		`{"name":"Ada","email":"ada@x.com"}`,
		`{"name":"","email":"ada@x.com","role":"Engineer"}`,
		`{"name":"Ada","email":"  ","role":"Engineer"}`,
		`not json`,
		``,
	}
	for _, body := range bodies {
		rec := s.do(http.MethodPost, "/employees", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "POST %q", body)
		assert.Contains(t, rec.Body.String(), `"error"`)

		rec = s.do(http.MethodPut, "/employees/1", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "PUT %q", body)
	}
	assert.Equal(t, before, s.list())
}

func TestMissingIDIsNoop(t *testing.T) {
	s := createTestServer(t)
	s.do(http.MethodPost, "/employees", `{"name":"Ada","email":"ada@x.com","role":"Engineer"}`)
	before := s.list()

	rec := s.do(http.MethodPut, "/employees/99", `{"name":"X","email":"x@x.com","role":"Y"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Employee updated"}`, rec.Body.String())

	for i := 0; i < 2; i++ {
		rec = s.do(http.MethodDelete, "/employees/99", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Employee deleted"}`, rec.Body.String())
	}
	assert.Equal(t, before, s.list())
}

func TestRepeatedDelete(t *testing.T) {
	s := createTestServer(t)
	s.do(http.MethodPost, "/employees", `{"name":"Ada","email":"ada@x.com","role":"Engineer"}`)

	first := s.do(http.MethodDelete, "/employees/1", "")
	second := s.do(http.MethodDelete, "/employees/1", "")
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestNonIntegerIDNotFound(t *testing.T) {
	s := createTestServer(t)

	for _, path := range []string{"/employees/abc", "/employees/0", "/employees/-1", "/employees/1.5", "/employees/99999999999999999999"} {
		rec := s.do(http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)

		rec = s.do(http.MethodPut, path, `{"name":"Ada","email":"ada@x.com","role":"Engineer"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/nope", "").Code)
}

func TestStorageFailureIsGeneric(t *testing.T) {
	s := newTestServer(t, filepath.Join(t.TempDir(), "missing", "employees.db"))

	rec := s.do(http.MethodGet, "/employees", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/employees", `{"name":"Ada","email":"ada@x.com","role":"Engineer"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "missing")
}

func TestRequestID(t *testing.T) {
	s := createTestServer(t)

	rec := s.do(http.MethodGet, "/employees", "")
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestLeadingZeroID(t *testing.T) {
	s := createTestServer(t)
	s.do(http.MethodPost, "/employees", `{"name":"Ada","email":"ada@x.com","role":"Engineer"}`)

	rec := s.do(http.MethodPut, "/employees/01", `{"name":"Ada L.","email":"ada@x.com","role":"Lead Engineer"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []domain.Employee{{ID: 1, Name: "Ada L.", Email: "ada@x.com", Role: "Lead Engineer"}}, s.list())

	rec = s.do(http.MethodDelete, "/employees/001", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, s.list())

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/employees/00", "").Code)
}

func TestBodyKeysAreExact(t *testing.T) {
	s := createTestServer(t)

	bodies := []string{
		`{"NAME":"Up","EMAIL":"u@x.com","ROLE":"R"}`,
		`{"Name":"Ada","email":"ada@x.com","role":"Engineer"}`,
		`{"name":"Ada","email":"ada@x.com","role":"Engineer"} trailing`,
		`{"name":"Ada","email":"ada@x.com","role":"Engineer"}{"name":"Bob"}`,
		`{"name":1,"email":"ada@x.com","role":"Engineer"}`,
		`null`,
		`[]`,
	}
	for _, body := range bodies {
		rec := s.do(http.MethodPost, "/employees", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Empty(t, s.list())

	rec := s.do(http.MethodPost, "/employees", `{"name":"Ada","email":"ada@x.com","role":"Engineer","team":"core"}`+"\n")
	assert.Equal(t, http.StatusCreated, rec.Code)
}
