package database

import (
	"errors"

	gomysql "github.com/go-sql-driver/mysql"
)

// mysqlDupEntry 唯一索引冲突错误码
const mysqlDupEntry = 1062

// IsDuplicateKey 判断错误是否为唯一索引冲突
// 并发重复报名/点赞、重名场地等都靠它在存储层兜底
func IsDuplicateKey(err error) bool {
	var mysqlErr *gomysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry
}
