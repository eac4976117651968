package models

// Region的type鉴别字段取值，国家和区域共用一张表、共用主键
const (
	RegionTypeRegion  = "region"
	RegionTypeCountry = "country"
)

type Region struct {
	ID         int64    `gorm:"primaryKey" json:"id"`
	UnCode     *int64   `gorm:"index" json:"un_code"`
	Name       string   `gorm:"type:varchar(128)" json:"name"`
	IsPartOfID *int64   `json:"is_part_of_id"`
	Type       string   `gorm:"index;type:varchar(20)" json:"type"`
	Iso2       string   `gorm:"type:varchar(10)" json:"iso2,omitempty"`
	Iso3       string   `gorm:"index;type:varchar(10)" json:"iso3,omitempty"`
	FaoURI     string   `gorm:"type:varchar(255)" json:"fao_URI,omitempty"`
	CenterLon  *float64 `json:"center_lon,omitempty"`
	CenterLat  *float64 `json:"center_lat,omitempty"`
}

func (Region) TableName() string {
	return "regions"
}

// IsCountry 是否为国家子类型
func (r *Region) IsCountry() bool {
	return r.Type == RegionTypeCountry
}

type RegionTranslation struct {
	RegionID int64  `gorm:"primaryKey;autoIncrement:false" json:"region_id"`
	LangCode string `gorm:"primaryKey;type:varchar(8)" json:"lang_code"`
	Name     string `gorm:"type:varchar(128)" json:"name"`
}

func (RegionTranslation) TableName() string {
	return "region_translations"
}
