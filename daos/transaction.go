package daos

import (
	"gorm.io/gorm"
)

// Execute 把一次dao调用绑定到一个工作单元(事务)内执行
// 成功即提交，出错回滚并把错误交还调用方；每次服务调用一个工作单元
func Execute[R any](db *gorm.DB, op func(tx *gorm.DB) (R, error)) (R, error) {
	var out R
	err := db.Transaction(func(tx *gorm.DB) error {
		var opErr error
		out, opErr = op(tx)
		return opErr
	})
	return out, err
}

// ExecuteVoid 无返回值版本的Execute
func ExecuteVoid(db *gorm.DB, op func(tx *gorm.DB) error) error {
	return db.Transaction(op)
}
