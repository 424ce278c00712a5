package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"

	"formcraft/internal/service"
	"formcraft/internal/transport/rest/handler"
	"formcraft/internal/transport/rest/middleware"
	"formcraft/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	FormService     *service.FormService
	ResponseService *service.ResponseService
	UploadService   *service.UploadService
	WSHub           *ws.Hub
	MaxUploadBytes  int64
	CORSOrigins     string
	Logger          *slog.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	formHandler := handler.NewFormHandler(c.FormService, c.Logger)
	responseHandler := handler.NewResponseHandler(c.ResponseService, c.Logger)
	uploadHandler := handler.NewUploadHandler(c.UploadService, c.MaxUploadBytes, c.Logger)

	r.Use(middleware.RequestLogger(c.Logger))
	r.Use(middleware.CORS(c.CORSOrigins))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/upload/single", uploadHandler.Single).Methods("POST", "OPTIONS")

	api.HandleFunc("/forms", formHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms", formHandler.List).Methods("GET")
	api.HandleFunc("/forms/{id}", formHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{id}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms/{id}/responses", responseHandler.List).Methods("GET")

	if c.WSHub != nil {
		wsHandler := ws.NewHandler(c.WSHub, c.FormService, c.Logger)
		api.HandleFunc("/forms/{id}/live", wsHandler.FormLive).Methods("GET")
	}

	r.HandleFunc("/uploads/{name}", uploadHandler.Serve).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "api docs not registered", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"route not found"}`))
	})

	return r
}
