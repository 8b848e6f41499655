package stats

import (
	"encoding/json"
	"testing"
	"time"

	"crimemap/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func record(opts ...func(*models.MonitoringData)) models.MonitoringData {
	r := models.MonitoringData{
		ProvinsiID:    1,
		Provinsi:      &models.Provinsi{Base: models.Base{ID: 1}, Nama: "Jawa Barat"},
		CategoryID:    1,
		Category:      &models.Category{Base: models.Base{ID: 1}, Name: "Kriminalitas", Slug: "kriminalitas"},
		SeverityLevel: models.SeverityLow,
		Status:        models.StatusOpen,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func withProvinsi(id uint, nama string) func(*models.MonitoringData) {
	return func(r *models.MonitoringData) {
		r.ProvinsiID = id
		r.Provinsi = &models.Provinsi{Base: models.Base{ID: id}, Nama: nama}
	}
}

func withCreatedAt(t time.Time) func(*models.MonitoringData) {
	return func(r *models.MonitoringData) { r.CreatedAt = t }
}

func withSubCategory(id uint, name string) func(*models.MonitoringData) {
	return func(r *models.MonitoringData) {
		r.SubCategoryID = uintPtr(id)
		r.SubCategory = &models.SubCategory{Base: models.Base{ID: id}, CategoryID: r.CategoryID, Name: name}
	}
}

func TestAggregate_TotalData(t *testing.T) {
	records := []models.MonitoringData{record(), record(), record()}

	s := Aggregate(records, nil, 0)

	if s.TotalData != 3 {
		t.Errorf("expected totalData 3, got %d", s.TotalData)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	s := Aggregate(nil, nil, 0)

	if s.TotalData != 0 {
		t.Errorf("expected totalData 0, got %d", s.TotalData)
	}
	if s.TotalProvinsi != 0 || s.TotalKabupatenKota != 0 || s.TotalKecamatan != 0 {
		t.Errorf("expected zero region counts, got %d/%d/%d", s.TotalProvinsi, s.TotalKabupatenKota, s.TotalKecamatan)
	}
	if s.DataByStatus.Len() != 0 || s.DataBySeverity.Len() != 0 || s.DataByProvinsi.Len() != 0 || s.DataBySubCategory.Len() != 0 {
		t.Error("expected all grouping maps to be empty")
	}

	// Structural fields must encode as {} and never null
	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("failed to marshal statistics: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("failed to unmarshal statistics: %v", err)
	}
	for _, field := range []string{"dataBySubCategory", "dataByProvinsi", "dataBySeverity", "dataByStatus"} {
		if string(decoded[field]) != "{}" {
			t.Errorf("expected %s to encode as {}, got %s", field, decoded[field])
		}
	}

	if got := Recent(nil, RecentLimit); len(got) != 0 {
		t.Errorf("expected no recent activities, got %d", len(got))
	}
}

func TestAggregate_DistinctProvinsi(t *testing.T) {
	records := []models.MonitoringData{
		record(withProvinsi(1, "Jawa Barat")),
		record(withProvinsi(1, "Jawa Barat")),
		record(withProvinsi(2, "Jawa Timur")),
	}

	s := Aggregate(records, nil, 0)

	if s.TotalProvinsi != 2 {
		t.Errorf("expected totalProvinsi 2, got %d", s.TotalProvinsi)
	}
}

func TestAggregate_NullRegionGrouping(t *testing.T) {
	// Absent kabupaten/kota or kecamatan values form one extra group each.
	records := []models.MonitoringData{
		record(func(r *models.MonitoringData) { r.KabupatenKotaID = uintPtr(10); r.KecamatanID = uintPtr(100) }),
		record(func(r *models.MonitoringData) { r.KabupatenKotaID = uintPtr(11) }),
		record(),
		record(),
	}

	s := Aggregate(records, nil, 0)

	if s.TotalKabupatenKota != 3 {
		t.Errorf("expected totalKabupatenKota 3 (two ids + null group), got %d", s.TotalKabupatenKota)
	}
	if s.TotalKecamatan != 2 {
		t.Errorf("expected totalKecamatan 2 (one id + null group), got %d", s.TotalKecamatan)
	}
}

func TestAggregate_SeverityAndStatusSums(t *testing.T) {
	records := []models.MonitoringData{
		record(func(r *models.MonitoringData) { r.SeverityLevel = models.SeverityHigh; r.Status = models.StatusVerified }),
		record(func(r *models.MonitoringData) { r.SeverityLevel = models.SeverityHigh }),
		record(func(r *models.MonitoringData) { r.Status = models.StatusResolved }),
		record(),
	}

	s := Aggregate(records, nil, 0)

	if s.DataBySeverity.Total() != s.TotalData {
		t.Errorf("expected severity counts to sum to %d, got %d", s.TotalData, s.DataBySeverity.Total())
	}
	if s.DataByStatus.Total() != s.TotalData {
		t.Errorf("expected status counts to sum to %d, got %d", s.TotalData, s.DataByStatus.Total())
	}
	if got := s.DataBySeverity.Get("high"); got != 2 {
		t.Errorf("expected 2 high severity records, got %d", got)
	}
	if got := s.DataByStatus.Get("open"); got != 2 {
		t.Errorf("expected 2 open records, got %d", got)
	}
}

func TestAggregate_Unfiltered(t *testing.T) {
	records := []models.MonitoringData{
		record(),
		record(func(r *models.MonitoringData) {
			r.CategoryID = 2
			r.Category = &models.Category{Base: models.Base{ID: 2}, Name: "Terorisme", Slug: "terorisme"}
		}),
		record(),
	}

	s := Aggregate(records, nil, 7)

	// Without a filter the sub-category total reports the category row count
	if s.TotalSubCategories != 7 {
		t.Errorf("expected totalSubCategories 7, got %d", s.TotalSubCategories)
	}
	// ... and grouping is by category name
	if got := s.DataBySubCategory.Get("Kriminalitas"); got != 2 {
		t.Errorf("expected 2 records under Kriminalitas, got %d", got)
	}
	if got := s.DataBySubCategory.Get("Terorisme"); got != 1 {
		t.Errorf("expected 1 record under Terorisme, got %d", got)
	}
}

func TestAggregate_Filtered(t *testing.T) {
	selected := &models.Category{Base: models.Base{ID: 1}, Name: "Kriminalitas", Slug: "kriminalitas"}
	records := []models.MonitoringData{
		record(withSubCategory(1, "Pencurian")),
		record(withSubCategory(1, "Pencurian")),
		record(withSubCategory(2, "Penipuan")),
	}

	s := Aggregate(records, selected, 7)

	if s.TotalSubCategories != 2 {
		t.Errorf("expected totalSubCategories 2, got %d", s.TotalSubCategories)
	}
	// Keys must be sub-category names, not category names
	if got := s.DataBySubCategory.Get("Pencurian"); got != 2 {
		t.Errorf("expected 2 records under Pencurian, got %d", got)
	}
	if got := s.DataBySubCategory.Get("Kriminalitas"); got != 0 {
		t.Errorf("expected no grouping under the category name, got %d", got)
	}
}

func TestAggregate_UnresolvedRelationsGroupUnderUnknown(t *testing.T) {
	records := []models.MonitoringData{
		record(func(r *models.MonitoringData) { r.Category = nil }),
		record(func(r *models.MonitoringData) { r.Provinsi = nil }),
		record(),
	}

	s := Aggregate(records, nil, 1)

	if got := s.DataBySubCategory.Get(UnknownLabel); got != 1 {
		t.Errorf("expected 1 record under Unknown category, got %d", got)
	}
	if got := s.DataByProvinsi.Get(UnknownLabel); got != 1 {
		t.Errorf("expected 1 record under Unknown provinsi, got %d", got)
	}

	// Filtered grouping uses the sub-category relation, nil there is Unknown too
	selected := &models.Category{Base: models.Base{ID: 1}, Name: "Kriminalitas"}
	s = Aggregate(records, selected, 1)
	if got := s.DataBySubCategory.Get(UnknownLabel); got != 3 {
		t.Errorf("expected 3 records under Unknown sub-category, got %d", got)
	}
}

func TestAggregate_GroupInsertionOrder(t *testing.T) {
	records := []models.MonitoringData{
		record(withProvinsi(2, "Jawa Timur")),
		record(withProvinsi(1, "Jawa Barat")),
		record(withProvinsi(2, "Jawa Timur")),
	}

	s := Aggregate(records, nil, 0)

	keys := s.DataByProvinsi.Keys()
	if len(keys) != 2 || keys[0] != "Jawa Timur" || keys[1] != "Jawa Barat" {
		t.Errorf("expected first-occurrence key order [Jawa Timur, Jawa Barat], got %v", keys)
	}
}

func TestRecent(t *testing.T) {
	t.Run("seven_records_two_provinces", func(t *testing.T) {
		base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		var records []models.MonitoringData
		for i := 0; i < 7; i++ {
			prov := withProvinsi(1, "Aceh")
			if i >= 3 {
				prov = withProvinsi(2, "Bali")
			}
			records = append(records, record(prov, withCreatedAt(base.Add(time.Duration(i)*time.Hour))))
		}

		s := Aggregate(records, nil, 0)
		if s.TotalProvinsi != 2 {
			t.Errorf("expected totalProvinsi 2, got %d", s.TotalProvinsi)
		}
		if s.DataByProvinsi.Get("Aceh") != 3 || s.DataByProvinsi.Get("Bali") != 4 {
			t.Errorf("expected {Aceh: 3, Bali: 4}, got {Aceh: %d, Bali: %d}",
				s.DataByProvinsi.Get("Aceh"), s.DataByProvinsi.Get("Bali"))
		}

		recent := Recent(records, RecentLimit)
		if len(recent) != 5 {
			t.Fatalf("expected 5 recent activities, got %d", len(recent))
		}
		for i, want := range []int{6, 5, 4, 3, 2} {
			if !recent[i].CreatedAt.Equal(base.Add(time.Duration(want) * time.Hour)) {
				t.Errorf("recent[%d]: expected t%d, got %v", i, want+1, recent[i].CreatedAt)
			}
		}
	})

	t.Run("fewer_records_than_limit", func(t *testing.T) {
		records := []models.MonitoringData{record(), record()}
		if got := Recent(records, RecentLimit); len(got) != 2 {
			t.Errorf("expected 2 recent activities, got %d", len(got))
		}
	})

	t.Run("ties_keep_input_order", func(t *testing.T) {
		ts := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		records := []models.MonitoringData{
			record(withProvinsi(1, "Aceh"), withCreatedAt(ts)),
			record(withProvinsi(2, "Bali"), withCreatedAt(ts)),
			record(withProvinsi(3, "Papua"), withCreatedAt(ts)),
		}

		recent := Recent(records, RecentLimit)
		if len(recent) != 3 {
			t.Fatalf("expected 3 recent activities, got %d", len(recent))
		}
		for i, want := range []string{"Aceh", "Bali", "Papua"} {
			if recent[i].Provinsi.Nama != want {
				t.Errorf("recent[%d]: expected %s, got %s", i, want, recent[i].Provinsi.Nama)
			}
		}
	})

	t.Run("does_not_modify_input", func(t *testing.T) {
		base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		records := []models.MonitoringData{
			record(withCreatedAt(base)),
			record(withCreatedAt(base.Add(time.Hour))),
		}

		Recent(records, RecentLimit)
		if !records[0].CreatedAt.Equal(base) {
			t.Error("expected input slice to keep its original order")
		}
	})
}
