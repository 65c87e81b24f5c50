package auth

import "go.mongodb.org/mongo-driver/mongo/options"

func mongoUpsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
