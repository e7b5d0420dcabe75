package server

import (
	"net/http"

	"github.com/addressly/address-server/handlers"
	"github.com/addressly/address-server/middlewares"
	"github.com/addressly/address-server/models"
	"github.com/addressly/address-server/utils"
	"github.com/go-chi/chi"
)

type Server struct {
	chi.Router
}

// SetupRoutes provides all the routes that can be used
func SetupRoutes(address *handlers.AddressHandler) *Server {
	router := chi.NewRouter()
	router.Use(middlewares.CommonMiddlewares()...)

	// health endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, models.Response{Message: "ok"})
	})

	router.Route("/address", func(r chi.Router) {
		r.Post("/", address.PostAddress)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", address.GetAddressByID)
			r.Put("/", address.PutAddress)
			r.Delete("/", address.DeleteAddress)
		})
	})
	return &Server{Router: router}
}

func (svc *Server) Run(port string) error {
	return http.ListenAndServe(port, svc)
}
