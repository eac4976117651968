package models

type Topic struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(128)" json:"name"`
}

func (Topic) TableName() string {
	return "topics"
}

type TopicTranslation struct {
	TopicID  int64  `gorm:"primaryKey;autoIncrement:false" json:"topic_id"`
	LangCode string `gorm:"primaryKey;type:varchar(8)" json:"lang_code"`
	Name     string `gorm:"type:varchar(128)" json:"name"`
}

func (TopicTranslation) TableName() string {
	return "topic_translations"
}
