package main

import (
	"log"
	"strings"
	"time"

	"fusion/auth"
	"fusion/config"
	"fusion/db"
	"fusion/handlers"
	"fusion/models"
	"fusion/storage"
	"fusion/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionStoreKey       = "this is a long key" // TODO: convert to env variable
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(sessionStoreKey))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/classify/fetch", "/exif/strip"})))
	}
	router.Use(utils.NoCacheMiddleware)

	// Custom Auth Router
	authRouter := &auth.Router{Base: router}
	// User handlers
	router.POST("/user/register", handlers.UserRegister)
	router.POST("/user/login", handlers.UserLogin)
	authRouter.POST("/user/logout", handlers.UserLogout)
	authRouter.GET("/user/status", handlers.UserStatus)
	authRouter.POST("/user/profile", handlers.ProfileSave)
	// Settings
	authRouter.GET("/settings", handlers.SettingsGet)
	authRouter.POST("/settings/save", handlers.SettingsSave)
	// Metadata extraction
	authRouter.POST("/exif/upload", handlers.ExifUpload)
	authRouter.POST("/exif/url", handlers.ExifURL)
	authRouter.GET("/exif/table", handlers.ExifTable)
	authRouter.GET("/exif/stats", handlers.ExifStats)
	authRouter.POST("/exif/clear", handlers.ExifClear)
	authRouter.POST("/exif/strip", handlers.ExifStrip)
	authRouter.POST("/exif/histogram", handlers.ExifHistogram)
	// Image classification
	authRouter.POST("/classify/upload", handlers.ClassifyUpload)
	authRouter.GET("/classify/fetch", handlers.ClassificationFetch)
	// Feedback and activity
	authRouter.POST("/feedback", handlers.FeedbackSubmit)
	authRouter.GET("/activity/list", handlers.ActivityList)
	authRouter.GET("/dashboard", handlers.Dashboard)
	// Admin views
	authRouter.AdminGET("/admin/feedback", handlers.AdminFeedbackList)
	authRouter.AdminGET("/admin/classifications", handlers.AdminClassificationList)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
