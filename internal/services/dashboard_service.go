package services

import (
	"crimemap/internal/models"
	"crimemap/internal/stats"
)

// DashboardData is the full payload handed to the presentation layer. The
// JSON keys are the contract the frontend consumes and must not change.
type DashboardData struct {
	MonitoringData   []models.MonitoringData `json:"monitoringData"`
	SelectedCategory *models.Category        `json:"selectedCategory"`
	Categories       []models.Category       `json:"categories"`
	Statistics       *stats.Statistics       `json:"statistics"`
	RecentActivities []models.MonitoringData `json:"recentActivities"`
}

// dashboardService orchestrates the dashboard: filter resolution, record
// retrieval, and the aggregation pass. It keeps the aggregation engine free
// of storage concerns.
type dashboardService struct {
	categories CategoryServicer
	monitoring MonitoringServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(categories CategoryServicer, monitoring MonitoringServicer) DashboardServicer {
	return &dashboardService{categories: categories, monitoring: monitoring}
}

// GetDashboard builds the dashboard payload for an optional category slug.
// A slug that matches no category leaves selectedCategory nil and does not
// narrow the record set; the statistics silently degrade to the unfiltered
// view.
func (s *dashboardService) GetDashboard(categorySlug string) (*DashboardData, error) {
	var selectedCategory *models.Category
	if categorySlug != "" {
		category, err := s.categories.FindCategoryBySlug(categorySlug)
		if err != nil {
			return nil, err
		}
		selectedCategory = category
	}

	var categoryID *uint
	if selectedCategory != nil {
		categoryID = &selectedCategory.ID
	}

	records, err := s.monitoring.FetchWithRelations(categoryID)
	if err != nil {
		return nil, err
	}

	totalCategories, err := s.categories.CountCategories()
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.GetCategories()
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.MonitoringData{}
	}

	return &DashboardData{
		MonitoringData:   records,
		SelectedCategory: selectedCategory,
		Categories:       categories,
		Statistics:       stats.Aggregate(records, selectedCategory, totalCategories),
		RecentActivities: stats.Recent(records, stats.RecentLimit),
	}, nil
}
