package mysql

import (
	"database/sql"
	"errors"
	"fmt"

	stdmysql "github.com/go-sql-driver/mysql"

	"chainstay/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// storeErr maps MySQL constraint failures onto the domain taxonomy:
// a violated FK means something referenced is missing, a duplicate key is a
// clash with existing data.
func storeErr(err error) error {
	var me *stdmysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case 1452: // foreign key constraint fails
			return fmt.Errorf("%w: referenced entity does not exist", domain.ErrNotFound)
		case 1062: // duplicate entry
			return fmt.Errorf("%w: duplicate key", domain.ErrConflict)
		}
	}
	return err
}

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func valInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func strPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
