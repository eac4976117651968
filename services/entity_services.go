package services

import (
	"github.com/GrainArc/DataAtlas/daos"
	"github.com/GrainArc/DataAtlas/models"
	"gorm.io/gorm"
)

type CountryService struct {
	*Service[models.Region, string]
}

func NewCountryService() *CountryService {
	return &CountryService{NewService(daos.NewCountryDao())}
}

type RegionService struct {
	*Service[models.Region, int64]
	byID *daos.Dao[models.Region, int64]
}

func NewRegionService() *RegionService {
	return &RegionService{
		Service: NewService(daos.NewRegionDao()),
		byID:    daos.NewRegionByIDDao(),
	}
}

// GetByArtificialCode 按代理主键取区域，上级区域展开时用
func (s *RegionService) GetByArtificialCode(id int64) (*models.Region, error) {
	return daos.Execute(models.GetDB(), func(tx *gorm.DB) (*models.Region, error) {
		return s.byID.GetByKey(tx, id)
	})
}

// DeleteAll 区域清空走代理主键，国家行可以没有un_code
func (s *RegionService) DeleteAll() error {
	all, err := s.GetAll()
	if err != nil {
		return err
	}
	for i := range all {
		err := daos.ExecuteVoid(models.GetDB(), func(tx *gorm.DB) error {
			return s.byID.Delete(tx, all[i].ID)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

type UserService struct {
	*Service[models.User, int64]
}

func NewUserService() *UserService {
	return &UserService{NewService(daos.NewUserDao())}
}

type OrganizationService struct {
	*Service[models.Organization, int64]
}

func NewOrganizationService() *OrganizationService {
	return &OrganizationService{NewService(daos.NewOrganizationDao())}
}

type DataSourceService struct {
	*Service[models.DataSource, int64]
}

func NewDataSourceService() *DataSourceService {
	return &DataSourceService{NewService(daos.NewDataSourceDao())}
}

type DatasetService struct {
	*Service[models.Dataset, int64]
	indicators *daos.Dao[models.Indicator, string]
}

func NewDatasetService() *DatasetService {
	return &DatasetService{
		Service:    NewService(daos.NewDatasetDao()),
		indicators: daos.NewIndicatorDao(),
	}
}

// InsertWithIndicators 建数据集并把给定指标挂到它名下
// 未知的指标id直接跳过，不算错误
func (s *DatasetService) InsertWithIndicators(d *models.Dataset, indicatorIDs []string) error {
	return daos.ExecuteVoid(models.GetDB(), func(tx *gorm.DB) error {
		if err := s.Service.dao.Insert(tx, d); err != nil {
			return err
		}
		for _, id := range indicatorIDs {
			ind, err := s.indicators.GetByKey(tx, id)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					continue
				}
				return err
			}
			ind.DatasetID = &d.ID
			if err := tx.Save(ind).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type IndicatorService struct {
	*Service[models.Indicator, string]
}

func NewIndicatorService() *IndicatorService {
	return &IndicatorService{NewService(daos.NewIndicatorDao())}
}

type IndicatorRelationshipService struct {
	*Service[models.IndicatorRelationship, int64]
}

func NewIndicatorRelationshipService() *IndicatorRelationshipService {
	return &IndicatorRelationshipService{NewService(daos.NewIndicatorRelationshipDao())}
}

type MeasurementUnitService struct {
	*Service[models.MeasurementUnit, int64]
}

func NewMeasurementUnitService() *MeasurementUnitService {
	return &MeasurementUnitService{NewService(daos.NewMeasurementUnitDao())}
}

type ObservationService struct {
	*Service[models.Observation, string]
}

func NewObservationService() *ObservationService {
	return &ObservationService{NewService(daos.NewObservationDao())}
}

type ValueService struct {
	*Service[models.Value, int64]
}

func NewValueService() *ValueService {
	return &ValueService{NewService(daos.NewValueDao())}
}

type TimeValueService struct {
	*Service[models.TimeValue, int64]
}

func NewTimeValueService() *TimeValueService {
	return &TimeValueService{NewService(daos.NewTimeValueDao())}
}

type TopicService struct {
	*Service[models.Topic, int64]
}

func NewTopicService() *TopicService {
	return &TopicService{NewService(daos.NewTopicDao())}
}

type RegionTranslationService struct {
	*Service[models.RegionTranslation, daos.TransKey[int64]]
}

func NewRegionTranslationService() *RegionTranslationService {
	return &RegionTranslationService{NewService(daos.NewRegionTranslationDao())}
}

type IndicatorTranslationService struct {
	*Service[models.IndicatorTranslation, daos.TransKey[string]]
}

func NewIndicatorTranslationService() *IndicatorTranslationService {
	return &IndicatorTranslationService{NewService(daos.NewIndicatorTranslationDao())}
}

type TopicTranslationService struct {
	*Service[models.TopicTranslation, daos.TransKey[int64]]
}

func NewTopicTranslationService() *TopicTranslationService {
	return &TopicTranslationService{NewService(daos.NewTopicTranslationDao())}
}
