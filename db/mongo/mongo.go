// Package mongo wraps the driver client behind the db.DB interface so
// the server can select its backend from config alone.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

type MongoDB struct {
	Client *mongo.Client
	URL    string

	ctx    context.Context
	cancel context.CancelFunc
}

func NewMongoDB(url string) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	return &MongoDB{URL: url, ctx: ctx, cancel: cancel}
}

// Connect dials the server and pings it so a bad URL fails at startup
// rather than on the first query.
func (m *MongoDB) Connect() error {
	client, err := mongo.Connect(m.ctx, options.Client().ApplyURI(m.URL))
	if err != nil {
		return err
	}
	if err := client.Ping(m.ctx, nil); err != nil {
		return err
	}
	m.Client = client
	return nil
}

func (m *MongoDB) Disconnect() error {
	defer m.cancel()
	return m.Client.Disconnect(m.ctx)
}

func (m *MongoDB) GetContext() context.Context {
	return m.ctx
}
