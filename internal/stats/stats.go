// Package stats computes the dashboard statistics bundle from a set of
// monitoring records. It is pure computation: no storage access, no shared
// state, deterministic for identical input ordering.
package stats

import (
	"sort"

	"crimemap/internal/models"
)

// UnknownLabel is the group key for records whose owning relation failed to
// resolve, e.g. a category deleted after the record was created.
const UnknownLabel = "Unknown"

// RecentLimit is the number of records returned as recent activities.
const RecentLimit = 5

// Statistics is the aggregated bundle rendered by the dashboard.
type Statistics struct {
	TotalData          int       `json:"totalData"`
	TotalProvinsi      int       `json:"totalProvinsi"`
	TotalKabupatenKota int       `json:"totalKabupatenKota"`
	TotalKecamatan     int       `json:"totalKecamatan"`
	TotalSubCategories int64     `json:"totalSubCategories"`
	DataBySubCategory  *CountMap `json:"dataBySubCategory"`
	DataByProvinsi     *CountMap `json:"dataByProvinsi"`
	DataBySeverity     *CountMap `json:"dataBySeverity"`
	DataByStatus       *CountMap `json:"dataByStatus"`
}

// Aggregate computes the statistics bundle for the given records.
//
// records must already be restricted to the selected category when
// selectedCategory is non-nil; Aggregate never re-filters. totalCategories is
// the number of Category rows in reference data and is reported as
// totalSubCategories when no category filter is active.
//
// Distinct region counts treat an absent (null) identifier as one additional
// group. Grouping is by display name, so two distinct entities sharing a name
// conflate into one group; that mirrors the dashboard's historical behavior.
func Aggregate(records []models.MonitoringData, selectedCategory *models.Category, totalCategories int64) *Statistics {
	s := &Statistics{
		TotalData:         len(records),
		DataBySubCategory: NewCountMap(),
		DataByProvinsi:    NewCountMap(),
		DataBySeverity:    NewCountMap(),
		DataByStatus:      NewCountMap(),
	}

	provinsiIDs := make(map[uint]struct{})
	for _, r := range records {
		provinsiIDs[r.ProvinsiID] = struct{}{}
	}
	s.TotalProvinsi = len(provinsiIDs)
	s.TotalKabupatenKota = distinctOptional(records, func(r models.MonitoringData) *uint { return r.KabupatenKotaID })
	s.TotalKecamatan = distinctOptional(records, func(r models.MonitoringData) *uint { return r.KecamatanID })

	if selectedCategory != nil {
		s.TotalSubCategories = int64(distinctOptional(records, func(r models.MonitoringData) *uint { return r.SubCategoryID }))
	} else {
		s.TotalSubCategories = totalCategories
	}

	for _, r := range records {
		if selectedCategory != nil {
			s.DataBySubCategory.Add(subCategoryName(r))
		} else {
			s.DataBySubCategory.Add(categoryName(r))
		}
		s.DataByProvinsi.Add(provinsiName(r))
		s.DataBySeverity.Add(string(r.SeverityLevel))
		s.DataByStatus.Add(string(r.Status))
	}

	return s
}

// Recent returns the limit most recent records by creation time, newest
// first. Ties keep the original relative order of the input. The input slice
// is not modified.
func Recent(records []models.MonitoringData, limit int) []models.MonitoringData {
	sorted := make([]models.MonitoringData, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// distinctOptional counts distinct values of a nullable identifier, with all
// null values forming a single extra group.
func distinctOptional(records []models.MonitoringData, key func(models.MonitoringData) *uint) int {
	seen := make(map[uint]struct{})
	sawNull := false
	for _, r := range records {
		id := key(r)
		if id == nil {
			sawNull = true
			continue
		}
		seen[*id] = struct{}{}
	}
	n := len(seen)
	if sawNull {
		n++
	}
	return n
}

func categoryName(r models.MonitoringData) string {
	if r.Category == nil {
		return UnknownLabel
	}
	return r.Category.Name
}

func subCategoryName(r models.MonitoringData) string {
	if r.SubCategory == nil {
		return UnknownLabel
	}
	return r.SubCategory.Name
}

func provinsiName(r models.MonitoringData) string {
	if r.Provinsi == nil {
		return UnknownLabel
	}
	return r.Provinsi.Nama
}
