package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Ya-m-i/agri-fabric/backend/pkg/common"
	"github.com/Ya-m-i/agri-fabric/backend/pkg/common/api"
	"github.com/Ya-m-i/agri-fabric/backend/pkg/fabricclient"
	"github.com/Ya-m-i/agri-fabric/backend/services/claims-service/models"
	"github.com/Ya-m-i/agri-fabric/backend/services/claims-service/store"
)

type Service struct {
	orgs     []common.Organization
	registry *fabricclient.Registry
	fallback *store.Store
}

func NewService(orgs []common.Organization, registry *fabricclient.Registry, fallback *store.Store) *Service {
	return &Service{orgs: orgs, registry: registry, fallback: fallback}
}

func (s *Service) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.HealthHandler).Methods("GET")
	r.HandleFunc("/api/claims-logs/{org}", s.ListClaimLogsHandler).Methods("GET")
	r.HandleFunc("/api/claims-logs/{org}", s.AddClaimLogHandler).Methods("POST")
	return r
}

// HealthHandler reports per-organization ledger connectivity. Always 200;
// it never touches either backend's data.
func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	for _, org := range s.orgs {
		resp[org.HealthKey()] = s.registry.Connected(org.Name)
	}
	api.WriteJSON(w, http.StatusOK, resp)
}

func (s *Service) ListClaimLogsHandler(w http.ResponseWriter, r *http.Request) {
	org := mux.Vars(r)["org"]

	contract, ok := s.registry.Contract(org)
	if !ok {
		log.Printf("%s has no Fabric connection, serving claim logs from memory", org)
		api.WriteJSON(w, http.StatusOK, s.fallback.List())
		return
	}

	data, err := contract.EvaluateTransaction("QueryAllClaimLogs")
	if err != nil {
		log.Printf("Failed to query claim logs for %s: %v", org, err)
		api.WriteError(w, http.StatusInternalServerError, "Failed to fetch claim logs", err)
		return
	}

	claims := []models.ClaimLog{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &claims); err != nil {
			log.Printf("Failed to decode claim logs for %s: %v", org, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to decode claim logs", err)
			return
		}
	}
	api.WriteJSON(w, http.StatusOK, claims)
}

func (s *Service) AddClaimLogHandler(w http.ResponseWriter, r *http.Request) {
	org := mux.Vars(r)["org"]

	var claim models.ClaimLog
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !claim.Valid() {
		api.WriteValidationError(w, "Missing required fields", models.RequiredFields)
		return
	}
	if claim.Timestamp == "" {
		claim.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	contract, ok := s.registry.Contract(org)
	if !ok {
		log.Printf("%s has no Fabric connection, storing claim log in memory", org)
		api.WriteJSON(w, http.StatusOK, s.fallback.Append(claim))
		return
	}

	result, err := contract.SubmitTransaction("AddClaimLog",
		claim.ClaimID, claim.FarmerName, claim.CropType, claim.Timestamp, claim.Status)
	if err != nil {
		log.Printf("Failed to submit claim log for %s: %v", org, err)
		api.WriteError(w, http.StatusInternalServerError, "Failed to record claim log", err)
		return
	}

	// An empty commit result is returned as an empty record, not an echo
	// of the submitted claim.
	accepted := models.ClaimLog{}
	if len(result) > 0 {
		if err := json.Unmarshal(result, &accepted); err != nil {
			log.Printf("Failed to decode commit result for %s: %v", org, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to decode ledger response", err)
			return
		}
	}
	api.WriteJSON(w, http.StatusOK, accepted)
}
