package models

// Indicator的type鉴别字段取值
const (
	IndicatorTypePlain = "indicator"
	IndicatorTypeGroup = "indicator_group"
)

// IndicatorRelationship的type鉴别字段取值
const (
	RelationshipIsPartOf = "is_part_of"
	RelationshipBecomes  = "becomes"
)

// Indicator 指标，主键为URI派生的基础名
type Indicator struct {
	ID                  string `gorm:"primaryKey;type:varchar(128)" json:"id"`
	Name                string `gorm:"type:varchar(128)" json:"name"`
	Description         string `gorm:"type:varchar(255)" json:"description"`
	MeasurementUnitID   *int64 `gorm:"index" json:"measurement_unit_id"`
	DatasetID           *int64 `gorm:"index" json:"dataset_id"`
	CompoundIndicatorID string `gorm:"type:varchar(128)" json:"compound_indicator_id,omitempty"`
	PreferableTendency  string `gorm:"type:varchar(20)" json:"preferable_tendency"`
	Starred             bool   `json:"starred"`
	LastUpdate          int64  `json:"last_update"`
	TopicID             *int64 `gorm:"index" json:"topic_id"`
	Type                string `gorm:"index;type:varchar(20)" json:"type"`
}

func (Indicator) TableName() string {
	return "indicators"
}

type IndicatorTranslation struct {
	IndicatorID string `gorm:"primaryKey;type:varchar(128)" json:"indicator_id"`
	LangCode    string `gorm:"primaryKey;type:varchar(8)" json:"lang_code"`
	Name        string `gorm:"type:varchar(128)" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
}

func (IndicatorTranslation) TableName() string {
	return "indicator_translations"
}

// IndicatorRelationship 指标间的单向关系边，source -> target
type IndicatorRelationship struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	SourceID string `gorm:"index;type:varchar(128)" json:"source_id"`
	TargetID string `gorm:"type:varchar(128)" json:"target_id"`
	Type     string `gorm:"type:varchar(20)" json:"type"`
}

func (IndicatorRelationship) TableName() string {
	return "indicator_relationships"
}

type MeasurementUnit struct {
	ID            int64   `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"type:varchar(50)" json:"name"`
	ConvertibleTo string  `gorm:"type:varchar(50)" json:"convertible_to"`
	Factor        float64 `json:"factor"`
}

func (MeasurementUnit) TableName() string {
	return "measurement_units"
}
