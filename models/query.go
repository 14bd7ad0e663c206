package models

// QueryConfig holds all the configuration for any DynamoDB query
type QueryConfig struct {
	TableName  string
	IndexName  string // empty for primary key queries
	KeyName    string
	KeyValue   string
	Descending bool // reverse range-key order (newest first when the sort key is created_at)
	Limit      int32
}
