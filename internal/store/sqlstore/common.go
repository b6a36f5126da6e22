package sqlstore

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/breeew/datas-api/pkg/types"
)

type SqlProviderAchieve interface {
	GetMaster() *sqlx.DB
	GetReplica() *sqlx.DB
	Builder() sq.StatementBuilderType
}

// CommonFields is embedded by every table store.
type CommonFields struct {
	provider   SqlProviderAchieve
	table      types.TableName
	allColumns []string
}

func (c *CommonFields) SetProvider(p SqlProviderAchieve) {
	c.provider = p
}

func (c *CommonFields) SetTable(table types.TableName) {
	c.table = table
}

func (c *CommonFields) SetAllColumns(columns ...string) {
	c.allColumns = columns
}

func (c *CommonFields) GetTable() string {
	return c.table.Name()
}

func (c *CommonFields) GetAllColumns() []string {
	return c.allColumns
}

func (c *CommonFields) Builder() sq.StatementBuilderType {
	return c.provider.Builder()
}

func (c *CommonFields) GetMaster() *sqlx.DB {
	return c.provider.GetMaster()
}

func (c *CommonFields) GetReplica() *sqlx.DB {
	return c.provider.GetReplica()
}

func ErrorSqlBuild(err error) error {
	return fmt.Errorf("sql build: %w", err)
}
