package rest

import (
	"net/http"

	"moneybrief/internal/config"
	"moneybrief/internal/service"
	"moneybrief/internal/transport/rest/handler"
	"moneybrief/internal/transport/rest/middleware"
	"moneybrief/internal/transport/ws"

	_ "moneybrief/docs" // registers the OpenAPI document

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// Container holds all dependencies for the router
type Container struct {
	SessionService   *service.SessionService
	ReportService    *service.ReportService
	NarrativeService *service.NarrativeService
	DeliveryService  *service.DeliveryService
	ShareService     *service.ShareService
	WSHub            *ws.Hub
	CORS             config.CORSConfig
	Logger           *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(c.SessionService, c.ReportService, c.Logger)
	reportHandler := handler.NewReportHandler(c.ReportService, c.NarrativeService, c.DeliveryService, c.Logger)
	narrativeHandler := handler.NewNarrativeHandler(c.NarrativeService, c.Logger)
	shareHandler := handler.NewShareHandler(c.ShareService, c.ReportService, c.Logger)
	wsHandler := ws.NewHandler(c.WSHub, c.NarrativeService, c.Logger)

	// Recovery outermost, then logging, then CORS
	r.Use(middleware.Recover(c.Logger))
	r.Use(middleware.Logging(c.Logger))
	r.Use(middleware.CORS(c.CORS))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/questions", sessionHandler.Questions).Methods("GET", "OPTIONS")

	// Server-held sessions
	v1.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/answer", sessionHandler.Answer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/submit", sessionHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/back", sessionHandler.Back).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/reset", sessionHandler.Reset).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/report", sessionHandler.Report).Methods("GET", "OPTIONS")

	// Reports from client-held answers
	v1.HandleFunc("/reports", reportHandler.Build).Methods("POST", "OPTIONS")
	v1.HandleFunc("/reports/html", reportHandler.HTML).Methods("POST", "OPTIONS")
	v1.HandleFunc("/reports/pdf", reportHandler.PDF).Methods("POST", "OPTIONS")
	v1.HandleFunc("/reports/email", reportHandler.Email).Methods("POST", "OPTIONS")
	v1.HandleFunc("/reports/narrative", reportHandler.Narrative).Methods("POST", "OPTIONS")

	// Async narratives
	v1.HandleFunc("/narratives", narrativeHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/narratives/{id}", narrativeHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/ws/narratives/{id}", wsHandler.NarrativeWS).Methods("GET")

	// Share links
	v1.HandleFunc("/share", shareHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/share/{token}", shareHandler.Resolve).Methods("GET", "OPTIONS")

	return r
}
