package models

import (
	"log"

	"github.com/GrainArc/DataAtlas/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDatabase 初始化数据库连接，根据配置选择postgres或sqlite
func InitDatabase() error {
	var err error
	if config.Driver == "sqlite" {
		DB, err = gorm.Open(sqlite.Open(config.SqlitePath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	} else {
		DB, err = gorm.Open(postgres.Open(config.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}
	if err != nil {
		log.Printf("连接数据库失败: %v", err)
		return err
	}

	if err := Migrate(DB); err != nil {
		log.Printf("数据库迁移失败: %v", err)
		return err
	}

	log.Println("数据库初始化成功")
	return nil
}

// Migrate 自动迁移，创建全部表结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Region{},
		&RegionTranslation{},
		&Organization{},
		&User{},
		&DataSource{},
		&Dataset{},
		&License{},
		&Indicator{},
		&IndicatorTranslation{},
		&IndicatorRelationship{},
		&MeasurementUnit{},
		&Observation{},
		&Value{},
		&TimeValue{},
		&Computation{},
		&Topic{},
		&TopicTranslation{},
	)
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}
