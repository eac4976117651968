package daos

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

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:daos%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func i64(v int64) *int64 { return &v }

func seedCountry(t *testing.T, db *gorm.DB, iso3, name string, unCode int64) models.Region {
	t.Helper()
	country := models.Region{
		UnCode: i64(unCode),
		Name:   name,
		Type:   models.RegionTypeCountry,
		Iso2:   iso3[:2],
		Iso3:   iso3,
	}
	require.NoError(t, db.Create(&country).Error)
	return country
}

func TestCountryDaoScopeFiltersRegions(t *testing.T) {
	db := newTestDB(t)
	seedCountry(t, db, "ESP", "Spain", 724)
	region := models.Region{UnCode: i64(150), Name: "Europe", Type: models.RegionTypeRegion}
	require.NoError(t, db.Create(&region).Error)

	dao := NewCountryDao()
	countries, err := dao.GetAll(db)
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "ESP", countries[0].Iso3)

	// 区域dao不过滤子类型，两条都可见
	regions, err := NewRegionDao().GetAll(db)
	require.NoError(t, err)
	assert.Len(t, regions, 2)
}

func TestCountryDaoGetByKey(t *testing.T) {
	db := newTestDB(t)
	seedCountry(t, db, "ESP", "Spain", 724)

	dao := NewCountryDao()
	country, err := dao.GetByKey(db, "ESP")
	require.NoError(t, err)
	assert.Equal(t, "Spain", country.Name)

	_, err = dao.GetByKey(db, "FRA")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCountryDaoUpdateMergeKeepsKey(t *testing.T) {
	db := newTestDB(t)
	seedCountry(t, db, "ESP", "Spain", 724)

	dao := NewCountryDao()
	update := models.Region{Iso3: "ESP", Name: "España", Iso2: "ES", FaoURI: "http://fao/es"}
	require.NoError(t, dao.Update(db, &update))

	persisted, err := dao.GetByKey(db, "ESP")
	require.NoError(t, err)
	assert.Equal(t, "España", persisted.Name)
	assert.Equal(t, "http://fao/es", persisted.FaoURI)
	assert.Equal(t, "ESP", persisted.Iso3)
	assert.Equal(t, models.RegionTypeCountry, persisted.Type)
}

func TestDaoUpdateMissingReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	dao := NewCountryDao()
	missing := models.Region{Iso3: "XXX", Name: "nowhere"}
	assert.ErrorIs(t, dao.Update(db, &missing), gorm.ErrRecordNotFound)
}

func TestDaoDelete(t *testing.T) {
	db := newTestDB(t)
	seedCountry(t, db, "ESP", "Spain", 724)

	dao := NewCountryDao()
	require.NoError(t, dao.Delete(db, "ESP"))
	_, err := dao.GetByKey(db, "ESP")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, dao.Delete(db, "ESP"), gorm.ErrRecordNotFound)
}

func TestRegionDaoKeyIsUnCode(t *testing.T) {
	db := newTestDB(t)
	region := models.Region{UnCode: i64(150), Name: "Europe", Type: models.RegionTypeRegion}
	require.NoError(t, db.Create(&region).Error)

	dao := NewRegionDao()
	found, err := dao.GetByKey(db, 150)
	require.NoError(t, err)
	assert.Equal(t, "Europe", found.Name)
	assert.Equal(t, int64(150), dao.KeyOf(found))
}

func TestTranslationCompositeKey(t *testing.T) {
	db := newTestDB(t)
	country := seedCountry(t, db, "ESP", "Spain", 724)
	require.NoError(t, db.Create(&models.RegionTranslation{RegionID: country.ID, LangCode: "en", Name: "Spain"}).Error)
	require.NoError(t, db.Create(&models.RegionTranslation{RegionID: country.ID, LangCode: "es", Name: "España"}).Error)

	dao := NewRegionTranslationDao()
	trans, err := dao.GetByKey(db, TransKey[int64]{ID: country.ID, Lang: "es"})
	require.NoError(t, err)
	assert.Equal(t, "España", trans.Name)

	require.NoError(t, dao.Delete(db, TransKey[int64]{ID: country.ID, Lang: "es"}))
	_, err = dao.GetByKey(db, TransKey[int64]{ID: country.ID, Lang: "es"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 另一语言不受影响
	_, err = dao.GetByKey(db, TransKey[int64]{ID: country.ID, Lang: "en"})
	assert.NoError(t, err)
}

func TestExecuteRollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	boom := fmt.Errorf("boom")
	err := ExecuteVoid(db, func(tx *gorm.DB) error {
		if err := tx.Create(&models.Topic{ID: 7, Name: "land"}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&models.Topic{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestExecuteCommits(t *testing.T) {
	db := newTestDB(t)
	out, err := Execute(db, func(tx *gorm.DB) (*models.Topic, error) {
		topic := models.Topic{ID: 7, Name: "land"}
		if err := tx.Create(&topic).Error; err != nil {
			return nil, err
		}
		return &topic, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)

	var count int64
	require.NoError(t, db.Model(&models.Topic{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
