package db

import "context"

type DBType string

const (
	Memory   DBType = "memory"
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
