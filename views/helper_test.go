package views

import (
	"testing"
	"time"

	"github.com/GrainArc/DataAtlas/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func i64Ptr(v int64) *int64 { return &v }

func date(y int, m time.Month, d int) *datatypes.Date {
	v := datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &v
}

func TestTimeInRangeInstant(t *testing.T) {
	ts := time.Date(2005, 6, 1, 0, 0, 0, 0, time.UTC)
	instant := models.TimeValue{Type: models.TimeTypeInstant, Timestamp: &ts}
	from := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, timeInRange(&instant, from, to))
	// 闭区间，边界算在内
	assert.True(t, timeInRange(&instant, ts, ts))
	assert.False(t, timeInRange(&instant, time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2006, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestTimeInRangeIntervalOverlap(t *testing.T) {
	interval := models.TimeValue{
		Type:      models.TimeTypeInterval,
		StartDate: date(2004, 1, 1),
		EndDate:   date(2006, 12, 31),
	}
	assert.True(t, timeInRange(&interval, time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, timeInRange(&interval, time.Date(2006, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, timeInRange(&interval, time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestTimeInRangeYearInterval(t *testing.T) {
	year := models.TimeValue{Type: models.TimeTypeYearInterval, Year: intPtr(2005)}
	// 年号落在[from.Year, to.Year]内
	assert.True(t, timeInRange(&year, time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2006, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, timeInRange(&year, time.Date(2005, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, timeInRange(&year, time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2011, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, timeInRange(&year, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2003, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestObservationsAverage(t *testing.T) {
	values := map[int64]models.Value{
		1: {ID: 1, Value: strPtr("50")},
		2: {ID: 2, Value: strPtr("100")},
		3: {ID: 3, Value: nil},
	}
	obs := []models.Observation{
		{ID: "a", ValueID: i64Ptr(1)},
		{ID: "b", ValueID: i64Ptr(2)},
		{ID: "c", ValueID: i64Ptr(3)},
	}
	assert.InDelta(t, 75.0, observationsAverage(obs, values), 1e-9)
	assert.Zero(t, observationsAverage(nil, values))
	assert.Zero(t, observationsAverage([]models.Observation{{ID: "c", ValueID: i64Ptr(3)}}, values))
}

func TestNumericValue(t *testing.T) {
	values := map[int64]models.Value{
		1: {ID: 1, Value: strPtr("3.5")},
		2: {ID: 2, Value: strPtr("n/a")},
	}
	f, ok := numericValue(&models.Observation{ValueID: i64Ptr(1)}, values)
	assert.True(t, ok)
	assert.InDelta(t, 3.5, f, 1e-9)

	_, ok = numericValue(&models.Observation{ValueID: i64Ptr(2)}, values)
	assert.False(t, ok)
	_, ok = numericValue(&models.Observation{}, values)
	assert.False(t, ok)
}

func TestAttachTendencies(t *testing.T) {
	values := map[int64]models.Value{
		1: {ID: 1, Value: strPtr("10")},
		2: {ID: 2, Value: strPtr("20")},
		3: {ID: 3, Value: strPtr("20")},
		4: {ID: 4, Value: strPtr("5")},
	}
	list := []ObservationFull{
		{Observation: models.Observation{ID: "a", RegionID: i64Ptr(1), ValueID: i64Ptr(1)}},
		{Observation: models.Observation{ID: "b", RegionID: i64Ptr(1), ValueID: i64Ptr(2)}},
		{Observation: models.Observation{ID: "c", RegionID: i64Ptr(1), ValueID: i64Ptr(3)}},
		{Observation: models.Observation{ID: "d", RegionID: i64Ptr(1), ValueID: i64Ptr(4)}},
	}
	attachTendencies(list, values)
	assert.Equal(t, -2, *list[0].Tendency) // 序列起点无从比较
	assert.Equal(t, 1, *list[1].Tendency)  // 10→20上升
	assert.Equal(t, 0, *list[2].Tendency)  // 20→20持平
	assert.Equal(t, -1, *list[3].Tendency) // 20→5下降
}

func TestAttachTendenciesPerCountrySeries(t *testing.T) {
	values := map[int64]models.Value{
		1: {ID: 1, Value: strPtr("10")},
		2: {ID: 2, Value: strPtr("1")},
		3: {ID: 3, Value: strPtr("20")},
	}
	list := []ObservationFull{
		{Observation: models.Observation{ID: "a", RegionID: i64Ptr(1), ValueID: i64Ptr(1)}},
		{Observation: models.Observation{ID: "b", RegionID: i64Ptr(2), ValueID: i64Ptr(2)}},
		{Observation: models.Observation{ID: "c", RegionID: i64Ptr(1), ValueID: i64Ptr(3)}},
	}
	attachTendencies(list, values)
	// 不同国家各自成序列
	assert.Equal(t, -2, *list[0].Tendency)
	assert.Equal(t, -2, *list[1].Tendency)
	assert.Equal(t, 1, *list[2].Tendency)
}

func TestTimeSortKeyOrdersMixedVariants(t *testing.T) {
	ts := time.Date(2005, 6, 1, 0, 0, 0, 0, time.UTC)
	instant := models.TimeValue{Type: models.TimeTypeInstant, Timestamp: &ts}
	year2004 := models.TimeValue{Type: models.TimeTypeYearInterval, Year: intPtr(2004)}
	interval := models.TimeValue{Type: models.TimeTypeInterval, StartDate: date(2006, 1, 1), EndDate: date(2006, 12, 31)}

	assert.Less(t, timeSortKey(&year2004), timeSortKey(&instant))
	assert.Less(t, timeSortKey(&instant), timeSortKey(&interval))
}
