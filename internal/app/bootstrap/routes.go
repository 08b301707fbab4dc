// internal/app/bootstrap/routes.go
package bootstrap

import (
	"errors"
	"net/http"

	chambermembersfeature "github.com/dalemusser/chamberhub/internal/app/features/chambermembers"
	contactsfeature "github.com/dalemusser/chamberhub/internal/app/features/contacts"
	eventsfeature "github.com/dalemusser/chamberhub/internal/app/features/events"
	healthfeature "github.com/dalemusser/chamberhub/internal/app/features/health"
	joinrequestsfeature "github.com/dalemusser/chamberhub/internal/app/features/joinrequests"
	labelsfeature "github.com/dalemusser/chamberhub/internal/app/features/labels"
	loginfeature "github.com/dalemusser/chamberhub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/chamberhub/internal/app/features/logout"
	membershipsfeature "github.com/dalemusser/chamberhub/internal/app/features/memberships"
	servicesfeature "github.com/dalemusser/chamberhub/internal/app/features/services"
	socialmediasfeature "github.com/dalemusser/chamberhub/internal/app/features/socialmedias"
	userinfofeature "github.com/dalemusser/chamberhub/internal/app/features/userinfo"
	chambermemberstore "github.com/dalemusser/chamberhub/internal/app/store/chambermembers"
	contactstore "github.com/dalemusser/chamberhub/internal/app/store/contacts"
	eventstore "github.com/dalemusser/chamberhub/internal/app/store/events"
	joinrequeststore "github.com/dalemusser/chamberhub/internal/app/store/joinrequests"
	labelstore "github.com/dalemusser/chamberhub/internal/app/store/labels"
	membershipstore "github.com/dalemusser/chamberhub/internal/app/store/memberships"
	servicestore "github.com/dalemusser/chamberhub/internal/app/store/services"
	socialmediastore "github.com/dalemusser/chamberhub/internal/app/store/socialmedias"
	tokenstore "github.com/dalemusser/chamberhub/internal/app/store/tokens"
	userstore "github.com/dalemusser/chamberhub/internal/app/store/users"
	"github.com/dalemusser/chamberhub/internal/app/system/apiresp"
	"github.com/dalemusser/chamberhub/internal/app/system/auth"
	"github.com/dalemusser/chamberhub/internal/app/system/limits"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. Reads are public; every write sits behind the
// bearer-token guard.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	if svc == nil {
		return nil, errors.New("BuildHandler called before Startup")
	}
	db := deps.MongoDatabase

	users := userstore.New(db)
	tokens := tokenstore.New(db)
	guard := auth.NewGuard(tokens, users, logger)

	r := chi.NewRouter()
	// No request may exceed the largest upload route's cap.
	largest := max(svc.assets.ImageMaxBytes(), svc.assets.VideoMaxBytes())
	r.Use(middleware.LimitBodySize(largest + limits.MultipartOverhead))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		apiresp.NotFound(w, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		apiresp.JSON(w, http.StatusMethodNotAllowed, apiresp.Envelope{Status: false, Message: "Method not allowed."})
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Local public disk
	if appCfg.StorageType == "local" && appCfg.ServePublicDisk {
		r.Handle("/storage/*", fileserver.Handler("/storage", appCfg.StorageLocalPath))
	}

	// Authentication
	loginHandler := loginfeature.NewHandler(users, tokens, svc.limiter, svc.audit, appCfg.TokenTTL, logger)
	loginfeature.Routes(r, loginHandler)

	logoutHandler := logoutfeature.NewHandler(tokens, svc.audit, logger)
	logoutfeature.Routes(r, logoutHandler, guard.RequireToken)

	userinfoHandler := userinfofeature.NewHandler(logger)
	userinfofeature.MountRoutes(r, userinfoHandler, guard.RequireToken)

	// Content with images
	eventsHandler := eventsfeature.NewHandler(eventstore.New(db), svc.assets, svc.audit, logger)
	eventsfeature.Routes(r, eventsHandler, guard.RequireToken)

	servicesHandler := servicesfeature.NewHandler(servicestore.New(db), svc.assets, svc.audit, logger)
	servicesfeature.Routes(r, servicesHandler, guard.RequireToken)

	chamberMembersHandler := chambermembersfeature.NewHandler(chambermemberstore.New(db), svc.assets, svc.audit, logger)
	chambermembersfeature.Routes(r, chamberMembersHandler, guard.RequireToken)

	labelsHandler := labelsfeature.NewHandler(labelstore.New(db), svc.assets, svc.audit, logger)
	labelsfeature.Routes(r, labelsHandler, guard.RequireToken)

	// Plain records
	membershipsHandler := membershipsfeature.NewHandler(membershipstore.New(db), svc.audit, logger)
	membershipsfeature.Routes(r, membershipsHandler, guard.RequireToken)

	joinRequestsHandler := joinrequestsfeature.NewHandler(joinrequeststore.New(db), svc.audit, logger)
	joinrequestsfeature.Routes(r, joinRequestsHandler, guard.RequireToken)

	socialMediasHandler := socialmediasfeature.NewHandler(socialmediastore.New(db), svc.audit, logger)
	socialmediasfeature.Routes(r, socialMediasHandler, guard.RequireToken)

	contactsHandler := contactsfeature.NewHandler(contactstore.New(db), svc.audit, logger)
	contactsfeature.Routes(r, contactsHandler, guard.RequireToken)

	return r, nil
}
