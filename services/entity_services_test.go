package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/GrainArc/DataAtlas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

func setupDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:services%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	models.DB = db
}

func i64(v int64) *int64 { return &v }

func TestCountryServiceRoundTrip(t *testing.T) {
	setupDB(t)
	srv := NewCountryService()
	country := models.Region{Name: "Spain", Type: models.RegionTypeCountry, Iso2: "ES", Iso3: "ESP", UnCode: i64(724)}
	require.NoError(t, srv.Insert(&country))

	found, err := srv.GetByKey("ESP")
	require.NoError(t, err)
	assert.Equal(t, "Spain", found.Name)

	found.Name = "España"
	require.NoError(t, srv.Update(found))
	again, err := srv.GetByKey("ESP")
	require.NoError(t, err)
	assert.Equal(t, "España", again.Name)

	require.NoError(t, srv.Delete("ESP"))
	_, err = srv.GetByKey("ESP")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCountryServiceDeleteAllKeepsRegions(t *testing.T) {
	setupDB(t)
	countrySrv := NewCountryService()
	regionSrv := NewRegionService()
	require.NoError(t, countrySrv.Insert(&models.Region{Name: "Spain", Type: models.RegionTypeCountry, Iso2: "ES", Iso3: "ESP", UnCode: i64(724)}))
	require.NoError(t, regionSrv.Insert(&models.Region{Name: "Europe", Type: models.RegionTypeRegion, UnCode: i64(150)}))

	require.NoError(t, countrySrv.DeleteAll())

	countries, err := countrySrv.GetAll()
	require.NoError(t, err)
	assert.Empty(t, countries)

	regions, err := regionSrv.GetAll()
	require.NoError(t, err)
	assert.Len(t, regions, 1)
}

func TestRegionDeleteAllRemovesCodelessCountry(t *testing.T) {
	setupDB(t)
	countrySrv := NewCountryService()
	regionSrv := NewRegionService()
	// 国家行可以没有un_code，区域清空不能被它卡住
	require.NoError(t, countrySrv.Insert(&models.Region{Name: "Spain", Type: models.RegionTypeCountry, Iso2: "ES", Iso3: "ESP"}))
	require.NoError(t, regionSrv.Insert(&models.Region{Name: "Europe", Type: models.RegionTypeRegion, UnCode: i64(150)}))

	require.NoError(t, regionSrv.DeleteAll())

	all, err := regionSrv.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateAllStopsAtFirstMissing(t *testing.T) {
	setupDB(t)
	srv := NewTopicService()
	require.NoError(t, srv.Insert(&models.Topic{ID: 1, Name: "land"}))
	require.NoError(t, srv.Insert(&models.Topic{ID: 2, Name: "water"}))

	err := srv.UpdateAll([]models.Topic{
		{ID: 1, Name: "land tenure"},
		{ID: 99, Name: "ghost"},
		{ID: 2, Name: "water rights"},
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 第一条已提交，第三条未执行
	first, err := srv.GetByKey(1)
	require.NoError(t, err)
	assert.Equal(t, "land tenure", first.Name)
	second, err := srv.GetByKey(2)
	require.NoError(t, err)
	assert.Equal(t, "water", second.Name)
}

func TestDatasetInsertWithIndicators(t *testing.T) {
	setupDB(t)
	indicatorSrv := NewIndicatorService()
	require.NoError(t, indicatorSrv.Insert(&models.Indicator{ID: "INDLandTenure", Name: "Land tenure", Type: models.IndicatorTypePlain}))

	datasetSrv := NewDatasetService()
	dataset := models.Dataset{ID: 5, Name: "fao2024", SdmxFrequency: "annual"}
	// 未知指标id直接跳过
	require.NoError(t, datasetSrv.InsertWithIndicators(&dataset, []string{"INDLandTenure", "INDUnknown"}))

	persisted, err := datasetSrv.GetByKey(5)
	require.NoError(t, err)
	assert.Equal(t, "fao2024", persisted.Name)

	ind, err := indicatorSrv.GetByKey("INDLandTenure")
	require.NoError(t, err)
	require.NotNil(t, ind.DatasetID)
	assert.EqualValues(t, 5, *ind.DatasetID)
}

func TestRegionServiceGetByArtificialCode(t *testing.T) {
	setupDB(t)
	srv := NewRegionService()
	region := models.Region{Name: "Europe", Type: models.RegionTypeRegion, UnCode: i64(150)}
	require.NoError(t, srv.Insert(&region))

	byCode, err := srv.GetByKey(150)
	require.NoError(t, err)

	byID, err := srv.GetByArtificialCode(byCode.ID)
	require.NoError(t, err)
	assert.Equal(t, "Europe", byID.Name)
}

func TestTranslationServiceCompositeDelete(t *testing.T) {
	setupDB(t)
	srv := NewTopicTranslationService()
	require.NoError(t, srv.Insert(&models.TopicTranslation{TopicID: 1, LangCode: "en", Name: "Land"}))
	require.NoError(t, srv.Insert(&models.TopicTranslation{TopicID: 1, LangCode: "fr", Name: "Terre"}))

	require.NoError(t, srv.DeleteAll())
	all, err := srv.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}
