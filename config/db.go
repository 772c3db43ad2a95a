package config

import (
	"os"

	"sitecms_be/helper/atdb"
	"sitecms_be/model"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

var (
	MongoString    = os.Getenv("MONGOSTRING")
	PostgresString = os.Getenv("POSTGRESSTRING")

	PrivateKey = os.Getenv("PRIVATEKEY")
	PublicKey  = os.Getenv("PUBLICKEY")

	GHAccessToken = os.Getenv("GH_ACCESS_TOKEN")
)

// ConnectMongo opens the content database. Called once from main; the handle
// is passed into every controller instead of living here as package state.
func ConnectMongo() (*mongo.Database, error) {
	return atdb.MongoConnect(atdb.DBInfo{
		DBString: MongoString,
		DBName:   "sitecms",
	})
}

// ConnectPostgres opens the account database and migrates the akun and role
// tables.
func ConnectPostgres() (*gorm.DB, error) {
	db, err := atdb.PostgresConnect(PostgresString)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Akun{}, &model.Role{}); err != nil {
		return nil, err
	}
	return db, nil
}
