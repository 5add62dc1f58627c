package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/zerowaste/zerowaste-api/api"
	"github.com/zerowaste/zerowaste-api/claim"
	"github.com/zerowaste/zerowaste-api/external/blobstore"
	"github.com/zerowaste/zerowaste-api/external/geocoder"
	"github.com/zerowaste/zerowaste-api/geo"
	"github.com/zerowaste/zerowaste-api/matching"
	"github.com/zerowaste/zerowaste-api/store"
	"github.com/zerowaste/zerowaste-api/utils"
)

var (
	server     *api.Server
	mongoStore store.MongoStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("zerowaste")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("mongo.database", "zerowaste")
	viper.SetDefault("mongo.pool", 20)
	viper.SetDefault("matching.default_radius", 20)
	viper.SetDefault("matching.location_radius", 10)
}

// addressResolver prefers coordinates already stored for an address and
// falls back to google geocoding when a key is configured
func addressResolver(client *mongo.Client) geo.AddressResolver {
	resolvers := []geo.AddressResolver{
		geo.NewMongodbAddressResolver(client, viper.GetString("mongo.database")),
	}

	if key := viper.GetString("google.maps_api_key"); key != "" {
		g, err := geocoder.New(key)
		if err != nil {
			log.Panic(err)
		}
		resolvers = append(resolvers, geo.NewGeocodingAddressResolver(g))
	} else {
		log.WithField("prefix", "init").Warn("google maps key not set, addresses resolve from stored locations only")
	}

	return geo.NewMultipleAddressResolver(resolvers...)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if mongoStore != nil {
			log.Info("Shutting down db store")
			mongoStore.Close()
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	// Load JWT public key of the auth service
	jwtPublicKeyByte, err := ioutil.ReadFile(viper.GetString("jwt.public_keyfile"))
	if err != nil {
		log.Panic(err)
	}
	jwtPublicKey, err := jwt.ParseRSAPublicKeyFromPEM(jwtPublicKeyByte)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded jwt public key")

	// Init redis
	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "zerowaste_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore = store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		viper.GetBool("mongo.transactions"),
	)

	images, err := blobstore.New(initialCtx, blobstore.Config{
		Endpoint:  viper.GetString("blobstore.endpoint"),
		Region:    viper.GetString("blobstore.region"),
		Bucket:    viper.GetString("blobstore.bucket"),
		AccessKey: viper.GetString("blobstore.access_key"),
		SecretKey: viper.GetString("blobstore.secret_key"),
		PublicURL: viper.GetString("blobstore.public_url"),
	})
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Initialized image store")

	matcher := matching.NewService(mongoStore, mongoStore).
		WithDefaultRadius(viper.GetFloat64("matching.default_radius"))

	// Init http server
	server = api.NewServer(
		mongoStore,
		claim.NewCoordinator(mongoStore),
		matcher,
		addressResolver(mongoClient),
		images,
		machineryServer,
		jwtPublicKey)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
