package settings

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsDocID is the fixed id of the single settings document.
const settingsDocID = "providerSettings"

type settingsDoc struct {
	ID       string   `bson:"_id"`
	Settings Settings `bson:"settings"`
}

// MongoStore persists the mapping as one document in a settings collection.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection("settings")}
}

func (m *MongoStore) Load(ctx context.Context) Settings {
	var doc settingsDoc
	err := m.collection.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err != nil {
		return Defaults()
	}
	return Normalize(doc.Settings)
}

func (m *MongoStore) Save(ctx context.Context, s Settings) error {
	_, err := m.collection.UpdateOne(ctx,
		bson.M{"_id": settingsDocID},
		bson.M{"$set": bson.M{"settings": Normalize(s)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
