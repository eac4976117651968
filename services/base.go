package services

import (
	"github.com/GrainArc/DataAtlas/daos"
	"github.com/GrainArc/DataAtlas/models"
	"gorm.io/gorm"
)

// Service 泛型服务基座，每次调用开一个工作单元
type Service[T any, K comparable] struct {
	dao *daos.Dao[T, K]
}

func NewService[T any, K comparable](dao *daos.Dao[T, K]) *Service[T, K] {
	return &Service[T, K]{dao: dao}
}

func (s *Service[T, K]) GetAll() ([]T, error) {
	return daos.Execute(models.GetDB(), func(tx *gorm.DB) ([]T, error) {
		return s.dao.GetAll(tx)
	})
}

func (s *Service[T, K]) GetByKey(key K) (*T, error) {
	return daos.Execute(models.GetDB(), func(tx *gorm.DB) (*T, error) {
		return s.dao.GetByKey(tx, key)
	})
}

func (s *Service[T, K]) Insert(obj *T) error {
	return daos.ExecuteVoid(models.GetDB(), func(tx *gorm.DB) error {
		return s.dao.Insert(tx, obj)
	})
}

func (s *Service[T, K]) Update(obj *T) error {
	return daos.ExecuteVoid(models.GetDB(), func(tx *gorm.DB) error {
		return s.dao.Update(tx, obj)
	})
}

func (s *Service[T, K]) Delete(key K) error {
	return daos.ExecuteVoid(models.GetDB(), func(tx *gorm.DB) error {
		return s.dao.Delete(tx, key)
	})
}

// UpdateAll 逐条更新，每条一个工作单元，中途出错即停，已提交的保持不变
func (s *Service[T, K]) UpdateAll(objs []T) error {
	for i := range objs {
		if err := s.Update(&objs[i]); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll 先取全量再逐条按键删除
func (s *Service[T, K]) DeleteAll() error {
	all, err := s.GetAll()
	if err != nil {
		return err
	}
	for i := range all {
		if err := s.Delete(s.dao.KeyOf(&all[i])); err != nil {
			return err
		}
	}
	return nil
}
