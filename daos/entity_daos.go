package daos

import (
	"github.com/GrainArc/DataAtlas/models"
	"gorm.io/gorm"
)

// TransKey 翻译记录的复合键 (实体id, 语言代码)，按值比较
type TransKey[I comparable] struct {
	ID   I
	Lang string
}

func byID[K comparable](tx *gorm.DB, id K) *gorm.DB {
	return tx.Where("id = ?", id)
}

// NewCountryDao 国家在regions表中按type过滤，业务键为iso3
func NewCountryDao() *Dao[models.Region, string] {
	return NewDao(
		func(tx *gorm.DB, iso3 string) *gorm.DB { return tx.Where("iso3 = ?", iso3) },
		func(c *models.Region) string { return c.Iso3 },
		func(dst, src *models.Region) {
			dst.Name = src.Name
			dst.UnCode = src.UnCode
			dst.IsPartOfID = src.IsPartOfID
			dst.Iso2 = src.Iso2
			dst.FaoURI = src.FaoURI
			dst.CenterLon = src.CenterLon
			dst.CenterLat = src.CenterLat
		},
	).WithScope(func(tx *gorm.DB) *gorm.DB { return tx.Where("type = ?", models.RegionTypeCountry) })
}

// NewRegionDao 区域业务键为联合国编码，查询范围覆盖国家子类型
func NewRegionDao() *Dao[models.Region, int64] {
	return NewDao(
		func(tx *gorm.DB, unCode int64) *gorm.DB { return tx.Where("un_code = ?", unCode) },
		func(r *models.Region) int64 {
			if r.UnCode == nil {
				return 0
			}
			return *r.UnCode
		},
		func(dst, src *models.Region) {
			dst.Name = src.Name
			dst.IsPartOfID = src.IsPartOfID
		},
	)
}

// NewRegionByIDDao 按代理主键查区域，国家详情的上级区域解析用
func NewRegionByIDDao() *Dao[models.Region, int64] {
	return NewDao(
		byID[int64],
		func(r *models.Region) int64 { return r.ID },
		func(dst, src *models.Region) {
			dst.Name = src.Name
			dst.IsPartOfID = src.IsPartOfID
		},
	)
}

func NewUserDao() *Dao[models.User, int64] {
	return NewDao(
		byID[int64],
		func(u *models.User) int64 { return u.ID },
		func(dst, src *models.User) {
			dst.IP = src.IP
			dst.Timestamp = src.Timestamp
			dst.OrganizationID = src.OrganizationID
		},
	)
}

func NewOrganizationDao() *Dao[models.Organization, int64] {
	return NewDao(
		byID[int64],
		func(o *models.Organization) int64 { return o.ID },
		func(dst, src *models.Organization) {
			dst.Name = src.Name
			dst.URL = src.URL
			dst.IsPartOfID = src.IsPartOfID
		},
	)
}

func NewDataSourceDao() *Dao[models.DataSource, int64] {
	return NewDao(
		byID[int64],
		func(d *models.DataSource) int64 { return d.ID },
		func(dst, src *models.DataSource) {
			dst.IdSource = src.IdSource
			dst.Name = src.Name
			dst.OrganizationID = src.OrganizationID
		},
	)
}

func NewDatasetDao() *Dao[models.Dataset, int64] {
	return NewDao(
		byID[int64],
		func(d *models.Dataset) int64 { return d.ID },
		func(dst, src *models.Dataset) {
			dst.Name = src.Name
			dst.SdmxFrequency = src.SdmxFrequency
			dst.DatasourceID = src.DatasourceID
			dst.LicenseID = src.LicenseID
		},
	)
}

func NewIndicatorDao() *Dao[models.Indicator, string] {
	return NewDao(
		byID[string],
		func(i *models.Indicator) string { return i.ID },
		func(dst, src *models.Indicator) {
			dst.Name = src.Name
			dst.Description = src.Description
			dst.MeasurementUnitID = src.MeasurementUnitID
			dst.DatasetID = src.DatasetID
			dst.CompoundIndicatorID = src.CompoundIndicatorID
			dst.PreferableTendency = src.PreferableTendency
			dst.Starred = src.Starred
			dst.LastUpdate = src.LastUpdate
			dst.TopicID = src.TopicID
			dst.Type = src.Type
		},
	)
}

func NewIndicatorRelationshipDao() *Dao[models.IndicatorRelationship, int64] {
	return NewDao(
		byID[int64],
		func(r *models.IndicatorRelationship) int64 { return r.ID },
		func(dst, src *models.IndicatorRelationship) {
			dst.SourceID = src.SourceID
			dst.TargetID = src.TargetID
			dst.Type = src.Type
		},
	)
}

func NewMeasurementUnitDao() *Dao[models.MeasurementUnit, int64] {
	return NewDao(
		byID[int64],
		func(m *models.MeasurementUnit) int64 { return m.ID },
		func(dst, src *models.MeasurementUnit) {
			dst.Name = src.Name
			dst.ConvertibleTo = src.ConvertibleTo
			dst.Factor = src.Factor
		},
	)
}

func NewObservationDao() *Dao[models.Observation, string] {
	return NewDao(
		byID[string],
		func(o *models.Observation) string { return o.ID },
		func(dst, src *models.Observation) {
			dst.RefTimeID = src.RefTimeID
			dst.IssuedID = src.IssuedID
			dst.ComputationID = src.ComputationID
			dst.IndicatorGroupID = src.IndicatorGroupID
			dst.ValueID = src.ValueID
			dst.IndicatorID = src.IndicatorID
			dst.DatasetID = src.DatasetID
			dst.RegionID = src.RegionID
			dst.SliceID = src.SliceID
		},
	)
}

func NewValueDao() *Dao[models.Value, int64] {
	return NewDao(
		byID[int64],
		func(v *models.Value) int64 { return v.ID },
		func(dst, src *models.Value) {
			dst.ObsStatus = src.ObsStatus
			dst.ValueType = src.ValueType
			dst.Value = src.Value
		},
	)
}

func NewTimeValueDao() *Dao[models.TimeValue, int64] {
	return NewDao(
		byID[int64],
		func(t *models.TimeValue) int64 { return t.ID },
		func(dst, src *models.TimeValue) {
			dst.Type = src.Type
			dst.Timestamp = src.Timestamp
			dst.StartDate = src.StartDate
			dst.EndDate = src.EndDate
			dst.Year = src.Year
		},
	)
}

func NewTopicDao() *Dao[models.Topic, int64] {
	return NewDao(
		byID[int64],
		func(t *models.Topic) int64 { return t.ID },
		func(dst, src *models.Topic) {
			dst.Name = src.Name
		},
	)
}

func NewRegionTranslationDao() *Dao[models.RegionTranslation, TransKey[int64]] {
	return NewDao(
		func(tx *gorm.DB, key TransKey[int64]) *gorm.DB {
			return tx.Where("region_id = ? AND lang_code = ?", key.ID, key.Lang)
		},
		func(t *models.RegionTranslation) TransKey[int64] {
			return TransKey[int64]{ID: t.RegionID, Lang: t.LangCode}
		},
		func(dst, src *models.RegionTranslation) {
			dst.Name = src.Name
		},
	)
}

func NewIndicatorTranslationDao() *Dao[models.IndicatorTranslation, TransKey[string]] {
	return NewDao(
		func(tx *gorm.DB, key TransKey[string]) *gorm.DB {
			return tx.Where("indicator_id = ? AND lang_code = ?", key.ID, key.Lang)
		},
		func(t *models.IndicatorTranslation) TransKey[string] {
			return TransKey[string]{ID: t.IndicatorID, Lang: t.LangCode}
		},
		func(dst, src *models.IndicatorTranslation) {
			dst.Name = src.Name
			dst.Description = src.Description
		},
	)
}

func NewTopicTranslationDao() *Dao[models.TopicTranslation, TransKey[int64]] {
	return NewDao(
		func(tx *gorm.DB, key TransKey[int64]) *gorm.DB {
			return tx.Where("topic_id = ? AND lang_code = ?", key.ID, key.Lang)
		},
		func(t *models.TopicTranslation) TransKey[int64] {
			return TransKey[int64]{ID: t.TopicID, Lang: t.LangCode}
		},
		func(dst, src *models.TopicTranslation) {
			dst.Name = src.Name
		},
	)
}
