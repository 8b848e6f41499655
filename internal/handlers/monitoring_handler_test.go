package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "crimemap/internal/errors"
	"crimemap/internal/models"
	"crimemap/internal/pagination"
	"crimemap/internal/services"
)

// --- mock monitoring service ---

type mockMonitoringService struct {
	createMonitoringDataFn  func(input services.CreateMonitoringDataInput) (*models.MonitoringData, error)
	fetchWithRelationsFn    func(categoryID *uint) ([]models.MonitoringData, error)
	getMonitoringDataByIDFn func(id uint) (*models.MonitoringData, error)
	listMonitoringDataFn    func(page pagination.PageRequest) (*pagination.PageResponse[models.MonitoringData], error)
	deleteMonitoringDataFn  func(id uint) error
}

func (m *mockMonitoringService) CreateMonitoringData(input services.CreateMonitoringDataInput) (*models.MonitoringData, error) {
	if m.createMonitoringDataFn != nil {
		return m.createMonitoringDataFn(input)
	}
	return &models.MonitoringData{}, nil
}

func (m *mockMonitoringService) FetchWithRelations(categoryID *uint) ([]models.MonitoringData, error) {
	if m.fetchWithRelationsFn != nil {
		return m.fetchWithRelationsFn(categoryID)
	}
	return []models.MonitoringData{}, nil
}

func (m *mockMonitoringService) GetMonitoringDataByID(id uint) (*models.MonitoringData, error) {
	if m.getMonitoringDataByIDFn != nil {
		return m.getMonitoringDataByIDFn(id)
	}
	return &models.MonitoringData{}, nil
}

func (m *mockMonitoringService) ListMonitoringData(page pagination.PageRequest) (*pagination.PageResponse[models.MonitoringData], error) {
	if m.listMonitoringDataFn != nil {
		return m.listMonitoringDataFn(page)
	}
	resp := pagination.NewPageResponse([]models.MonitoringData{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockMonitoringService) DeleteMonitoringData(id uint) error {
	if m.deleteMonitoringDataFn != nil {
		return m.deleteMonitoringDataFn(id)
	}
	return nil
}

var _ services.MonitoringServicer = (*mockMonitoringService)(nil)

func setupMonitoringRouter(handler *MonitoringHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/monitoring-data", handler.CreateMonitoringData)
	auth.GET("/monitoring-data", handler.ListMonitoringData)
	auth.GET("/monitoring-data/:id", handler.GetMonitoringDataByID)
	auth.DELETE("/monitoring-data/:id", handler.DeleteMonitoringData)
	return r
}

func TestMonitoringHandler_CreateMonitoringData(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var captured services.CreateMonitoringDataInput
		monSvc := &mockMonitoringService{
			createMonitoringDataFn: func(input services.CreateMonitoringDataInput) (*models.MonitoringData, error) {
				captured = input
				return &models.MonitoringData{
					Base:          models.Base{ID: 1},
					ProvinsiID:    input.ProvinsiID,
					CategoryID:    input.CategoryID,
					SeverityLevel: input.SeverityLevel,
				}, nil
			},
		}
		handler := NewMonitoringHandler(monSvc)
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "POST", "/monitoring-data",
			`{"provinsi_id":1,"category_id":2,"severity_level":"high","status":"open","description":"Penggerebekan sabu"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.ProvinsiID != 1 || captured.CategoryID != 2 {
			t.Errorf("unexpected input: %+v", captured)
		}
		if captured.SeverityLevel != models.SeverityHigh {
			t.Errorf("expected severity high, got %s", captured.SeverityLevel)
		}
	})

	t.Run("returns 400 on missing severity", func(t *testing.T) {
		handler := NewMonitoringHandler(&mockMonitoringService{})
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "POST", "/monitoring-data", `{"provinsi_id":1,"category_id":2}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid severity", func(t *testing.T) {
		handler := NewMonitoringHandler(&mockMonitoringService{})
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "POST", "/monitoring-data",
			`{"provinsi_id":1,"category_id":2,"severity_level":"extreme"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid status", func(t *testing.T) {
		handler := NewMonitoringHandler(&mockMonitoringService{})
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "POST", "/monitoring-data",
			`{"provinsi_id":1,"category_id":2,"severity_level":"low","status":"closed"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on mismatched region", func(t *testing.T) {
		monSvc := &mockMonitoringService{
			createMonitoringDataFn: func(_ services.CreateMonitoringDataInput) (*models.MonitoringData, error) {
				return nil, apperrors.ErrRegionMismatch
			},
		}
		handler := NewMonitoringHandler(monSvc)
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "POST", "/monitoring-data",
			`{"provinsi_id":1,"kabupaten_kota_id":5,"category_id":2,"severity_level":"low"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "REGION_MISMATCH")
	})

	t.Run("returns 404 on unknown category", func(t *testing.T) {
		monSvc := &mockMonitoringService{
			createMonitoringDataFn: func(_ services.CreateMonitoringDataInput) (*models.MonitoringData, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		handler := NewMonitoringHandler(monSvc)
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "POST", "/monitoring-data",
			`{"provinsi_id":1,"category_id":999,"severity_level":"low"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestMonitoringHandler_ListMonitoringData(t *testing.T) {
	t.Run("returns 200 with paginated records", func(t *testing.T) {
		monSvc := &mockMonitoringService{
			listMonitoringDataFn: func(page pagination.PageRequest) (*pagination.PageResponse[models.MonitoringData], error) {
				resp := pagination.NewPageResponse([]models.MonitoringData{
					{Base: models.Base{ID: 1}},
					{Base: models.Base{ID: 2}},
				}, page.Page, page.PageSize, 2)
				return &resp, nil
			},
		}
		handler := NewMonitoringHandler(monSvc)
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "GET", "/monitoring-data", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 records, got %d", len(data))
		}
	})

	t.Run("applies pagination defaults", func(t *testing.T) {
		var captured pagination.PageRequest
		monSvc := &mockMonitoringService{
			listMonitoringDataFn: func(page pagination.PageRequest) (*pagination.PageResponse[models.MonitoringData], error) {
				captured = page
				resp := pagination.NewPageResponse([]models.MonitoringData{}, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		}
		handler := NewMonitoringHandler(monSvc)
		r := setupMonitoringRouter(handler)

		doRequest(r, "GET", "/monitoring-data", "")

		if captured.Page != 1 || captured.PageSize != 20 {
			t.Errorf("expected defaults page=1 page_size=20, got page=%d page_size=%d", captured.Page, captured.PageSize)
		}
	})

	t.Run("returns 400 on invalid page size", func(t *testing.T) {
		handler := NewMonitoringHandler(&mockMonitoringService{})
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "GET", "/monitoring-data?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestMonitoringHandler_GetMonitoringDataByID(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		monSvc := &mockMonitoringService{
			getMonitoringDataByIDFn: func(id uint) (*models.MonitoringData, error) {
				return &models.MonitoringData{Base: models.Base{ID: id}, Description: "Penggerebekan"}, nil
			},
		}
		handler := NewMonitoringHandler(monSvc)
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "GET", "/monitoring-data/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		monSvc := &mockMonitoringService{
			getMonitoringDataByIDFn: func(_ uint) (*models.MonitoringData, error) {
				return nil, apperrors.ErrMonitoringDataNotFound
			},
		}
		handler := NewMonitoringHandler(monSvc)
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "GET", "/monitoring-data/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on non-numeric id", func(t *testing.T) {
		handler := NewMonitoringHandler(&mockMonitoringService{})
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "GET", "/monitoring-data/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestMonitoringHandler_DeleteMonitoringData(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewMonitoringHandler(&mockMonitoringService{})
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "DELETE", "/monitoring-data/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] != "Monitoring data deleted successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		monSvc := &mockMonitoringService{
			deleteMonitoringDataFn: func(_ uint) error {
				return apperrors.ErrMonitoringDataNotFound
			},
		}
		handler := NewMonitoringHandler(monSvc)
		r := setupMonitoringRouter(handler)

		rec := doRequest(r, "DELETE", "/monitoring-data/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
