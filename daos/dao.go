package daos

import (
	"gorm.io/gorm"
)

// Dao 泛型数据访问对象，按实体参数化
// 键查找谓词、取键函数和字段覆盖函数由每个实体显式提供，不做运行时反射
type Dao[T any, K comparable] struct {
	scope func(*gorm.DB) *gorm.DB    // 默认查询范围，子类型实体用它过滤鉴别字段
	byKey func(*gorm.DB, K) *gorm.DB // 键查找谓词
	keyOf func(*T) K                 // 从实体取业务键
	merge func(dst, src *T)          // 可变字段的显式覆盖，主键不在其中
}

func NewDao[T any, K comparable](byKey func(*gorm.DB, K) *gorm.DB, keyOf func(*T) K, merge func(dst, src *T)) *Dao[T, K] {
	return &Dao[T, K]{byKey: byKey, keyOf: keyOf, merge: merge}
}

// WithScope 附加默认查询范围
func (d *Dao[T, K]) WithScope(scope func(*gorm.DB) *gorm.DB) *Dao[T, K] {
	d.scope = scope
	return d
}

func (d *Dao[T, K]) apply(tx *gorm.DB) *gorm.DB {
	if d.scope != nil {
		return d.scope(tx)
	}
	return tx
}

// KeyOf 实体的业务键
func (d *Dao[T, K]) KeyOf(obj *T) K {
	return d.keyOf(obj)
}

// GetAll 返回全部记录，无排序保证
func (d *Dao[T, K]) GetAll(tx *gorm.DB) ([]T, error) {
	var out []T
	if err := d.apply(tx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByKey 按键取第一条匹配记录，未找到返回gorm.ErrRecordNotFound
func (d *Dao[T, K]) GetByKey(tx *gorm.DB, key K) (*T, error) {
	var out T
	if err := d.byKey(d.apply(tx), key).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *Dao[T, K]) Insert(tx *gorm.DB, obj *T) error {
	return tx.Create(obj).Error
}

// Update 加载持久化记录后按merge覆盖可变字段再保存
// 记录不存在时返回gorm.ErrRecordNotFound，由调用方决定如何呈现
func (d *Dao[T, K]) Update(tx *gorm.DB, obj *T) error {
	persisted, err := d.GetByKey(tx, d.keyOf(obj))
	if err != nil {
		return err
	}
	d.merge(persisted, obj)
	return tx.Save(persisted).Error
}

// Delete 按键删除，记录不存在时返回gorm.ErrRecordNotFound
func (d *Dao[T, K]) Delete(tx *gorm.DB, key K) error {
	persisted, err := d.GetByKey(tx, key)
	if err != nil {
		return err
	}
	return tx.Delete(persisted).Error
}
