package models

import (
	"strconv"
	"time"

	"gorm.io/datatypes"
)

// TimeValue的type鉴别字段取值，时间维度三个变体共用一张表
const (
	TimeTypeInstant      = "instant"
	TimeTypeInterval     = "interval"
	TimeTypeYearInterval = "year_interval"
)

// Observation 一条观测数据，关联指标、区域、数值和时间维度
type Observation struct {
	ID               string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	RefTimeID        *int64 `gorm:"index" json:"ref_time_id"`
	IssuedID         *int64 `json:"issued_id"`
	ComputationID    *int64 `json:"computation_id"`
	IndicatorGroupID string `gorm:"type:varchar(128)" json:"indicator_group_id,omitempty"`
	ValueID          *int64 `gorm:"index" json:"value_id"`
	IndicatorID      string `gorm:"index;type:varchar(128)" json:"indicator_id"`
	DatasetID        *int64 `gorm:"index" json:"dataset_id"`
	RegionID         *int64 `gorm:"index" json:"region_id"`
	SliceID          *int64 `json:"slice_id"`
}

func (Observation) TableName() string {
	return "observations"
}

// Value 观测数值，数值按字符串存储
type Value struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	ObsStatus string `gorm:"type:varchar(50)" json:"obs_status"`
	ValueType string `gorm:"type:varchar(50)" json:"value_type"`
	Value     *string `gorm:"type:varchar(50)" json:"value"`
}

func (Value) TableName() string {
	return "values"
}

// TimeValue 时间维度，闭合的标签联合: instant/interval/year_interval
type TimeValue struct {
	ID        int64           `gorm:"primaryKey" json:"id"`
	Type      string          `gorm:"index;type:varchar(20)" json:"type"`
	Timestamp *time.Time      `json:"timestamp,omitempty"`
	StartDate *datatypes.Date `json:"start_date,omitempty"`
	EndDate   *datatypes.Date `json:"end_date,omitempty"`
	Year      *int            `json:"year,omitempty"`
}

func (TimeValue) TableName() string {
	return "times"
}

// TimeString 时间维度的展示值，按变体分派
func (t *TimeValue) TimeString() string {
	switch t.Type {
	case TimeTypeInstant:
		if t.Timestamp != nil {
			return t.Timestamp.Format("2006-01-02T15:04:05")
		}
	case TimeTypeInterval:
		if t.StartDate != nil && t.EndDate != nil {
			return time.Time(*t.StartDate).Format("2006-01-02") + "-" + time.Time(*t.EndDate).Format("2006-01-02")
		}
	case TimeTypeYearInterval:
		if t.Year != nil {
			return strconv.Itoa(*t.Year)
		}
	}
	return ""
}

type Computation struct {
	ID  int64  `gorm:"primaryKey" json:"id"`
	URI string `gorm:"type:varchar(128)" json:"uri"`
}

func (Computation) TableName() string {
	return "computations"
}
