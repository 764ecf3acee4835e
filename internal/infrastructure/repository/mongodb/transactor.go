package mongodb

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"go.mongodb.org/mongo-driver/mongo"
)

// Transactor runs a unit of work in a multi-document transaction. Transactions
// need a replica set, so they are opt-in; when disabled fn runs directly.
type Transactor struct {
	client  *mongo.Client
	enabled bool
}

func NewTransactor(client *mongo.Client, enabled bool) *Transactor {
	return &Transactor{client: client, enabled: enabled}
}

var _ contract.ITransactor = (*Transactor)(nil)

func (t *Transactor) Enabled() bool {
	return t.enabled
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled || t.client == nil {
		return fn(ctx)
	}
	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
