package models

import "time"

// Organization 机构，is_part_of构成自引用树
type Organization struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(128)" json:"name"`
	URL        string `gorm:"type:varchar(255)" json:"url"`
	IsPartOfID *int64 `json:"is_part_of_id"`
}

func (Organization) TableName() string {
	return "organizations"
}

type User struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	IP             string     `gorm:"type:varchar(50)" json:"ip"`
	Timestamp      *time.Time `json:"timestamp"`
	OrganizationID *int64     `gorm:"index" json:"organization_id"`
}

func (User) TableName() string {
	return "users"
}
