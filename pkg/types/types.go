package types

type TableName string

func (t TableName) Name() string {
	return string(t)
}

const (
	TABLE_DATAS TableName = "datas"
)
