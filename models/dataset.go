package models

type DataSource struct {
	ID             int64  `gorm:"primaryKey" json:"id"`
	IdSource       string `gorm:"type:varchar(64)" json:"id_source"`
	Name           string `gorm:"type:varchar(128)" json:"name"`
	OrganizationID *int64 `gorm:"index" json:"organization_id"`
}

func (DataSource) TableName() string {
	return "datasources"
}

type Dataset struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(60)" json:"name"`
	SdmxFrequency string `gorm:"type:varchar(20)" json:"sdmx_frequency"`
	DatasourceID  *int64 `gorm:"index" json:"datasource_id"`
	LicenseID     *int64 `json:"license_id"`
}

func (Dataset) TableName() string {
	return "datasets"
}

type License struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(50)" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	Republish   bool   `json:"republish"`
	URL         string `gorm:"type:varchar(128)" json:"url"`
}

func (License) TableName() string {
	return "licenses"
}
