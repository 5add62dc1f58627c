package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zerowaste/zerowaste-api/claim"
	"github.com/zerowaste/zerowaste-api/external/blobstore"
	"github.com/zerowaste/zerowaste-api/geo"
	"github.com/zerowaste/zerowaste-api/matching"
	"github.com/zerowaste/zerowaste-api/schema"
	"github.com/zerowaste/zerowaste-api/store"
	"github.com/zerowaste/zerowaste-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// ClaimCoordinator performs the donation lifecycle transitions
type ClaimCoordinator interface {
	Claim(ctx context.Context, donationID, ngoID primitive.ObjectID, ngoName string) (*claim.Result, error)
	CancelClaim(ctx context.Context, claimID, ngoID primitive.ObjectID) (*claim.CancelResult, error)
	MarkPicked(ctx context.Context, donationID, ngoID primitive.ObjectID) (*schema.Donation, error)
	UpdateDonation(ctx context.Context, donationID, donorID primitive.ObjectID, details schema.DonationDetails) (*schema.Donation, error)
	DeleteDonation(ctx context.Context, donationID, donorID primitive.ObjectID) error
	OverrideClaimStatus(ctx context.Context, claimID primitive.ObjectID, status string) (*schema.ClaimRequest, error)
}

// Matcher answers the location based queries
type Matcher interface {
	VisibleDonations(ctx context.Context, p schema.Principal) (*matching.Visibility, error)
	DonationsNear(ctx context.Context, lat, lng, radiusKm float64) ([]schema.Donation, error)
	NearbyNGOs(ctx context.Context, lat, lng, radiusKm float64) ([]matching.NearbyNGO, error)
}

// TaskSender enqueues background tasks
type TaskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.MongoStore

	coordinator ClaimCoordinator
	matcher     Matcher
	resolver    geo.AddressResolver
	images      blobstore.ImageStore

	// JWT public key of the auth service
	jwtPublicKey *rsa.PublicKey

	// job pool enqueuer
	background TaskSender

	now func() time.Time
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	coordinator ClaimCoordinator,
	matcher Matcher,
	resolver geo.AddressResolver,
	images blobstore.ImageStore,
	background TaskSender,
	jwtKey *rsa.PublicKey) *Server {
	return &Server{
		store:        mongoStore,
		coordinator:  coordinator,
		matcher:      matcher,
		resolver:     resolver,
		images:       images,
		background:   background,
		jwtPublicKey: jwtKey,
		now:          time.Now,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	registerValidations()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := viper.GetStringSlice("cors.allow_origins"); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(ginrus("API"))
	apiRoute.Use(cors.New(corsConfig))

	// public routes
	{
		apiRoute.GET("/donations/stats", s.donationStats)
		apiRoute.GET("/donations/location", s.donationsByLocation)
		apiRoute.GET("/donations/:id", s.donationDetail)
		apiRoute.GET("/auth/ngos/nearby", s.nearbyNGOs)
	}

	authRoute := apiRoute.Group("")
	authRoute.Use(s.authMiddleware())
	authRoute.Use(s.recognizeUserMiddleware())

	donationRoute := authRoute.Group("/donations")
	{
		donationRoute.GET("", s.listDonations)

		donorRoute := donationRoute.Group("")
		donorRoute.Use(requireRole(schema.RoleDonor))
		donorRoute.POST("", s.createDonation)
		donorRoute.PUT("/:id", s.updateDonation)
		donorRoute.DELETE("/:id", s.deleteDonation)

		ngoRoute := donationRoute.Group("")
		ngoRoute.Use(requireRole(schema.RoleNGO))
		ngoRoute.GET("/ngo/my-donations", s.myClaimedDonations)
		ngoRoute.GET("/ngo/my-claims", s.myClaims)
		ngoRoute.POST("/:id/claim", s.claimDonation)
		ngoRoute.POST("/:id/pickup", s.pickupDonation)
		ngoRoute.POST("/claims/:claimId/cancel", s.cancelClaim)
	}

	userRoute := authRoute.Group("/users")
	{
		userRoute.GET("/me", s.userDetail)
		userRoute.GET("/me/stats", s.userStats)
		userRoute.PATCH("/me/location", s.updateUserLocation)
	}

	uploadRoute := authRoute.Group("/uploads")
	{
		uploadRoute.POST("/image", s.uploadImage)
		uploadRoute.DELETE("/image/:fileName", s.deleteImage)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/expire-donations", s.adminExpireDonations)
		secretRoute.POST("/claims/:claimId/status", s.adminSetClaimStatus)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

// abortWithDomainError responds with the status and code registered for err
func abortWithDomainError(c *gin.Context, err error) {
	status, resp := domainError(err)
	if status == http.StatusInternalServerError {
		log.WithField("error", err).Error("unexpected error")
	}
	abortWithEncoding(c, status, resp, err)
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	obj.Success = false
	if lang := c.GetHeader("Accept-Language"); lang != "" {
		obj.Message = utils.Localize(messageID(obj.Code), obj.Message, lang)
	}

	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

// success writes the success envelope
func success(c *gin.Context, code int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}
