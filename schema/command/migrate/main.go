package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zerowaste/zerowaste-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("zerowaste")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}
	defer client.Disconnect(context.Background())

	database := viper.GetString("mongo.database")

	if err := createCollections(ctx, client.Database(database)); err != nil {
		panic(err)
	}

	fmt.Println("create indexes")
	if err := schema.NewMongoDBIndexer(client, database).IndexAll(); err != nil {
		panic(err)
	}
}

// createCollections creates the collections up front so the first
// transaction does not fail on an implicit collection creation
func createCollections(ctx context.Context, db *mongo.Database) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return err
	}

	found := make(map[string]bool, len(existing))
	for _, name := range existing {
		found[name] = true
	}

	for _, name := range []string{
		schema.DonationCollection,
		schema.ClaimCollection,
		schema.UserCollection,
	} {
		if found[name] {
			continue
		}
		fmt.Println("initialize collection", name)
		if err := db.RunCommand(ctx, bson.D{{Key: "create", Value: name}}).Err(); err != nil {
			return err
		}
	}
	return nil
}
