package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Seem1019/RealEstateApi/internal/model"
	"github.com/Seem1019/RealEstateApi/internal/repository"
	"github.com/Seem1019/RealEstateApi/internal/service"
)

func testServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})

	if err := db.AutoMigrate(
		&model.Owner{},
		&model.Property{},
		&model.PropertyImage{},
		&model.PropertyTrace{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := zap.NewNop()
	propertyRepo := repository.NewPropertyRepository(db, log)
	ownerRepo := repository.NewOwnerRepository(db, log)
	propertyHandler := NewPropertyHandler(service.NewPropertyService(propertyRepo, log), 20)
	ownerHandler := NewOwnerHandler(service.NewOwnerService(ownerRepo, log))

	e := echo.New()
	e.GET("/health", Health)
	e.POST("/api/properties", propertyHandler.Create)
	e.GET("/api/properties", propertyHandler.List)
	e.POST("/api/properties/:id/images", propertyHandler.AddImage)
	e.PATCH("/api/properties/:id/price", propertyHandler.ChangePrice)
	e.PUT("/api/properties/:id", propertyHandler.Update)
	e.GET("/api/properties/:id/details", propertyHandler.GetDetails)
	e.GET("/api/properties/owner/:ownerId/properties", propertyHandler.GetByOwner)
	e.POST("/api/owners", ownerHandler.Create)
	e.GET("/api/owners/:id", ownerHandler.Get)
	return e, db
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func seedHandlerOwner(t *testing.T, db *gorm.DB) *model.Owner {
	t.Helper()
	owner, err := model.NewOwner("Jane Doe", "1 Main St", time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC), nil)
	if err != nil {
		t.Fatalf("new owner: %v", err)
	}
	if err := db.Create(owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	return owner
}

func TestCreatePropertyEndpoint(t *testing.T) {
	e, db := testServer(t)
	seedHandlerOwner(t, db)

	rec := doRequest(t, e, http.MethodPost, "/api/properties",
		`{"name":"Test","address":"Addr","price":100,"code_internal":"Code","year":2020,"owner_id":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var property model.Property
	if err := json.Unmarshal(rec.Body.Bytes(), &property); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if property.ID == 0 || property.Price != 100 {
		t.Errorf("property = %+v", property)
	}
}

func TestCreatePropertyEndpointValidation(t *testing.T) {
	e, db := testServer(t)
	seedHandlerOwner(t, db)

	rec := doRequest(t, e, http.MethodPost, "/api/properties",
		`{"name":"","address":"Addr","price":-5,"code_internal":"Code","year":2020,"owner_id":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"name", "price"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q does not mention %q", body, want)
		}
	}
}

func TestCreatePropertyEndpointConflict(t *testing.T) {
	e, db := testServer(t)
	seedHandlerOwner(t, db)

	payload := `{"name":"Test","address":"Addr","price":100,"code_internal":"Code","year":2020,"owner_id":1}`
	if rec := doRequest(t, e, http.MethodPost, "/api/properties", payload); rec.Code != http.StatusCreated {
		t.Fatalf("first create: %d", rec.Code)
	}
	rec := doRequest(t, e, http.MethodPost, "/api/properties", payload)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
}

func TestChangePriceEndpoint(t *testing.T) {
	e, db := testServer(t)
	seedHandlerOwner(t, db)

	rec := doRequest(t, e, http.MethodPost, "/api/properties",
		`{"name":"Test","address":"Addr","price":100,"code_internal":"Code","year":2020,"owner_id":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}
	var property model.Property
	if err := json.Unmarshal(rec.Body.Bytes(), &property); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doRequest(t, e, http.MethodPatch, "/api/properties/1/price", `{"new_price":200}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, e, http.MethodGet, "/api/properties/1/details", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("details: %d", rec.Code)
	}
	var details model.Property
	if err := json.Unmarshal(rec.Body.Bytes(), &details); err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if details.Price != 200 {
		t.Errorf("price = %v, want 200", details.Price)
	}
	if len(details.Traces) != 1 || details.Traces[0].Value != 200 || details.Traces[0].Tax != 0 {
		t.Errorf("traces = %+v, want one with value 200 tax 0", details.Traces)
	}
}

func TestNotFoundEndpoints(t *testing.T) {
	e, _ := testServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"details", http.MethodGet, "/api/properties/999/details", ""},
		{"price", http.MethodPatch, "/api/properties/999/price", `{"new_price":100}`},
		{"image", http.MethodPost, "/api/properties/999/images", `{"file":"a.jpg"}`},
		{"update", http.MethodPut, "/api/properties/999", `{"name":"X"}`},
		{"owner", http.MethodGet, "/api/owners/999", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, e, tt.method, tt.path, tt.body)
			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestListEndpointBadFilter(t *testing.T) {
	e, _ := testServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/properties?min_price=500&max_price=100&page_size=101", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"min_price", "page_size"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q does not mention %q", body, want)
		}
	}
}

func TestListEndpointPagedResult(t *testing.T) {
	e, db := testServer(t)
	seedHandlerOwner(t, db)

	for _, payload := range []string{
		`{"name":"One","address":"A","price":100,"code_internal":"L-1","year":2010,"owner_id":1}`,
		`{"name":"Two","address":"B","price":200,"code_internal":"L-2","year":2012,"owner_id":1}`,
		`{"name":"Three","address":"C","price":300,"code_internal":"L-3","year":2014,"owner_id":1}`,
	} {
		if rec := doRequest(t, e, http.MethodPost, "/api/properties", payload); rec.Code != http.StatusCreated {
			t.Fatalf("create: %d", rec.Code)
		}
	}

	rec := doRequest(t, e, http.MethodGet, "/api/properties?page_number=2&page_size=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var result model.PagedResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.TotalCount != 3 {
		t.Errorf("total = %d, want 3", result.TotalCount)
	}
	if len(result.Items) != 1 || result.Items[0].CodeInternal != "L-3" {
		t.Errorf("items = %+v, want the third property", result.Items)
	}
	if result.PageNumber != 2 || result.PageSize != 2 {
		t.Errorf("page echo = %d/%d, want 2/2", result.PageNumber, result.PageSize)
	}
}

func TestGetByOwnerEndpoint(t *testing.T) {
	e, db := testServer(t)
	seedHandlerOwner(t, db)

	rec := doRequest(t, e, http.MethodGet, "/api/properties/owner/1/properties", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var properties []model.Property
	if err := json.Unmarshal(rec.Body.Bytes(), &properties); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(properties) != 0 {
		t.Errorf("properties = %d, want 0", len(properties))
	}
}

func TestInvalidIDParam(t *testing.T) {
	e, _ := testServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/properties/abc/details", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	e, _ := testServer(t)

	rec := doRequest(t, e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
