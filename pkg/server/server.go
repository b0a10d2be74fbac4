package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/vaultorg/pkg/collections"
	"github.com/doodlesbykumbi/vaultorg/pkg/flags"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/middleware"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/store"
)

type Server struct {
	Router        *mux.Router
	DB            *gorm.DB
	Collections   *collections.Service
	Ciphers       store.CiphersStore
	Flags         flags.Oracle
	JWTMiddleware *middleware.JWTAuthenticator
	srv           *http.Server
}

func NewServer(
	db *gorm.DB,
	collectionsService *collections.Service,
	ciphersStore store.CiphersStore,
	oracle flags.Oracle,
	jwtMiddleware *middleware.JWTAuthenticator,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:        router,
		DB:            db,
		Collections:   collectionsService,
		Ciphers:       ciphersStore,
		Flags:         oracle,
		JWTMiddleware: jwtMiddleware,
		srv:           srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
