package mysql

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const dupEntryErrNo = 1062

// isDuplicateEntry reports whether err is a unique-constraint violation.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == dupEntryErrNo
}
