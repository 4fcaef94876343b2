package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibu-groceries/kgl-api/internal/application/auth"
	"github.com/karibu-groceries/kgl-api/internal/application/usecase"
	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
	"github.com/karibu-groceries/kgl-api/internal/infrastructure/memory"
	apphttp "github.com/karibu-groceries/kgl-api/internal/interfaces/http"
)

type fakeReceipts struct{}

func (fakeReceipts) GenerateSaleReceipt(_ context.Context, s *entity.Sale) ([]byte, error) {
	return []byte("%PDF-1.4 " + s.ID), nil
}

func newTestApp(t *testing.T, loginLimit int) *fiber.App {
	t.Helper()
	users := memory.NewUserRepository()
	sales := memory.NewSaleRepository()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProcurementUC:  usecase.NewProcurementUseCase(memory.NewProcurementRepository()),
		SaleUC:         usecase.NewSaleUseCase(sales),
		ReceiptUC:      usecase.NewReceiptUseCase(sales, fakeReceipts{}),
		UserUC:         usecase.NewUserUseCase(users),
		AuthUC:         auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		JWTSecret:      testJWTSecret,
		LoginRateLimit: loginLimit,
	})
	return app
}

// call sends a JSON request and decodes the JSON response into a map.
func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func tomatoesBody() map[string]interface{} {
	return map[string]interface{}{
		"produceName":  "Tomatoes",
		"produceType":  "Fresh",
		"date":         "2026-02-14",
		"time":         "10:30",
		"tonnage":      1500,
		"cost":         150000,
		"dealerName":   "John Traders",
		"branch":       "Maganjo",
		"contact":      "0700123456",
		"sellingPrice": 200000,
	}
}

func TestProcurementRoutes_Lifecycle(t *testing.T) {
	app := newTestApp(t, -1)
	manager := tokenForRole(t, entity.RoleManager)

	status, body := call(t, app, http.MethodGet, "/api/procurements", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])

	status, body = call(t, app, http.MethodPost, "/api/procurements", manager, tomatoesBody())
	require.Equal(t, http.StatusCreated, status, body)
	created := body["createdRecord"].(map[string]interface{})
	id := created["id"].(string)
	assert.Equal(t, "Maganjo", created["branch"])
	assert.Equal(t, float64(1500), created["tonnage"])

	status, body = call(t, app, http.MethodGet, "/api/procurements/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, id, body["Record"].(map[string]interface{})["id"])

	status, body = call(t, app, http.MethodGet, "/api/procurements", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["AllRecords"], 1)

	status, body = call(t, app, http.MethodPatch, "/api/procurements/"+id, manager, map[string]interface{}{"sellingPrice": 220000})
	require.Equal(t, http.StatusOK, status, body)
	updated := body["updatedRecord"].(map[string]interface{})
	assert.Equal(t, float64(220000), updated["sellingPrice"])
	assert.Equal(t, "Tomatoes", updated["produceName"])

	status, body = call(t, app, http.MethodDelete, "/api/procurements/"+id, manager, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(220000), body["deletedRecord"].(map[string]interface{})["sellingPrice"])

	status, _ = call(t, app, http.MethodGet, "/api/procurements/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = call(t, app, http.MethodDelete, "/api/procurements/"+id, manager, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProcurementRoutes_Validation(t *testing.T) {
	app := newTestApp(t, -1)
	manager := tokenForRole(t, entity.RoleManager)

	in := tomatoesBody()
	in["tonnage"] = 999
	status, body := call(t, app, http.MethodPost, "/api/procurements", manager, in)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["details"], "tonnage")

	in = tomatoesBody()
	in["branch"] = "Kampala"
	status, body = call(t, app, http.MethodPost, "/api/procurements", manager, in)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["details"], "branch")

	in = tomatoesBody()
	in["produceName"] = 42
	status, body = call(t, app, http.MethodPost, "/api/procurements", manager, in)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	in = tomatoesBody()
	in["tonnage"] = json.Number("999.99999999999999999")
	status, body = call(t, app, http.MethodPost, "/api/procurements", manager, in)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, "tonnage must be at least 1000", body["details"])

	status, body = call(t, app, http.MethodGet, "/api/procurements/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ID", body["code"])
}

func TestProcurementRoutes_Guards(t *testing.T) {
	app := newTestApp(t, -1)

	status, _ := call(t, app, http.MethodPost, "/api/procurements", "", tomatoesBody())
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := call(t, app, http.MethodPost, "/api/procurements", tokenForRole(t, entity.RoleSalesAgent), tomatoesBody())
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestUserRoutes_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t, -1)

	status, body := call(t, app, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"username": "Alex",
		"email":    "alex@kgl.ug",
		"password": "s3cret!",
		"role":     "Manager",
		"status":   "Active",
	})
	require.Equal(t, http.StatusCreated, status, body)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Alex", user["username"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")

	status, body = call(t, app, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email": "alex@kgl.ug", "password": "s3cret!",
	})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Login successful", body["message"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// The issued token opens manager-only routes.
	status, _ = call(t, app, http.MethodPost, "/api/procurements", "Bearer "+token, tomatoesBody())
	assert.Equal(t, http.StatusCreated, status)

	status, body = call(t, app, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email": "alex@kgl.ug", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Empty(t, body["token"])

	status, _ = call(t, app, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email": "nobody@kgl.ug", "password": "s3cret!",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestUserRoutes_ManageUsers(t *testing.T) {
	app := newTestApp(t, -1)

	status, body := call(t, app, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"username": "Peter", "email": "peter@kgl.ug", "password": "pw", "role": "SalesAgent", "status": "Active",
	})
	require.Equal(t, http.StatusCreated, status)
	id := body["user"].(map[string]interface{})["id"].(string)

	status, _ = call(t, app, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	agent := tokenForRole(t, entity.RoleSalesAgent)
	status, body = call(t, app, http.MethodGet, "/api/users", agent, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["users"], 1)

	status, _ = call(t, app, http.MethodPatch, "/api/users/"+id, agent, map[string]interface{}{"status": "Inactive"})
	assert.Equal(t, http.StatusForbidden, status)

	manager := tokenForRole(t, entity.RoleManager)
	status, body = call(t, app, http.MethodPatch, "/api/users/"+id, manager, map[string]interface{}{"status": "Inactive"})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Inactive", body["updatedUser"].(map[string]interface{})["status"])

	status, body = call(t, app, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email": "peter@kgl.ug", "password": "pw",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])

	status, body = call(t, app, http.MethodDelete, "/api/users/"+id, manager, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, id, body["deletedUser"].(map[string]interface{})["id"])

	status, _ = call(t, app, http.MethodGet, "/api/users/"+id, manager, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSaleRoutes(t *testing.T) {
	app := newTestApp(t, -1)
	agent := tokenForRole(t, entity.RoleSalesAgent)
	manager := tokenForRole(t, entity.RoleManager)
	sale := map[string]interface{}{
		"saleType":    "Cash",
		"produceName": "Beans",
		"tonnage":     200,
		"amountPaid":  500000,
		"buyerName":   "Mary",
	}

	status, _ := call(t, app, http.MethodPost, "/api/sales", manager, sale)
	assert.Equal(t, http.StatusForbidden, status)

	status, body := call(t, app, http.MethodPost, "/api/sales", agent, sale)
	require.Equal(t, http.StatusCreated, status, body)
	id := body["sale"].(map[string]interface{})["id"].(string)
	assert.NotContains(t, body["sale"], "amountDue")

	status, body = call(t, app, http.MethodPatch, "/api/sales/"+id, agent, map[string]interface{}{"amountDue": 10})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	status, body = call(t, app, http.MethodPatch, "/api/sales/"+id, manager, map[string]interface{}{"buyerName": "Mary K."})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Mary K.", body["updatedSale"].(map[string]interface{})["buyerName"])

	status, _ = call(t, app, http.MethodGet, "/api/sales", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	status, body = call(t, app, http.MethodGet, "/api/sales", agent, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["sales"], 1)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/"+id+"/receipt", nil)
	req.Header.Set("Authorization", agent)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "sale-"+id+".pdf")
	pdf, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.4 "+id, string(pdf))

	status, body = call(t, app, http.MethodDelete, "/api/sales/"+id, manager, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, id, body["deletedSale"].(map[string]interface{})["id"])

	status, _ = call(t, app, http.MethodGet, "/api/sales/"+id, agent, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestLoginRateLimit(t *testing.T) {
	app := newTestApp(t, 2)
	creds := map[string]interface{}{"email": "ghost@kgl.ug", "password": "x"}

	for i := 0; i < 2; i++ {
		status, _ := call(t, app, http.MethodPost, "/api/users/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, status)
	}
	status, body := call(t, app, http.MethodPost, "/api/users/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "RATE_LIMITED", body["code"])
}

func TestMalformedBody(t *testing.T) {
	app := newTestApp(t, -1)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginValidationMessage(t *testing.T) {
	app := newTestApp(t, -1)

	status, body := call(t, app, http.MethodPost, "/api/users/login", "", map[string]interface{}{"password": "x"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, "Error logging in", body["message"])
	assert.Equal(t, "email is required", body["details"])
}
