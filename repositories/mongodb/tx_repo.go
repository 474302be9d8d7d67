package mongodb

import (
	// Go Internal Packages
	"context"
	"errors"

	// External Packages
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TxRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewTxRepository(client *mongo.Client, database, collection string) *TxRepository {
	return &TxRepository{client: client, database: database, collection: collection}
}

func (r *TxRepository) coll() *mongo.Collection {
	return r.client.Database(r.database).Collection(r.collection)
}

// InsertTransactions inserts a batch of transactions into database. Documents
// already archived are skipped, so a redelivered batch is not an error.
func (r *TxRepository) InsertTransactions(ctx context.Context, txs []interface{}) error {
	if len(txs) == 0 {
		return nil
	}
	_, err := r.coll().InsertMany(ctx, txs, options.InsertMany().SetOrdered(false))
	if err != nil && !onlyDuplicateKeys(err) {
		return err
	}
	return nil
}

const duplicateKeyCode = 11000

func onlyDuplicateKeys(err error) bool {
	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) || bwe.WriteConcernError != nil || len(bwe.WriteErrors) == 0 {
		return false
	}
	for _, we := range bwe.WriteErrors {
		if we.Code != duplicateKeyCode {
			return false
		}
	}
	return true
}
