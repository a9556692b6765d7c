package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"tastybites/internal/service"
)

type Handler struct {
	Menu service.MenuServiceInterface
	QR   service.QRGenerator
	Log  logrus.FieldLogger
}

func NewHandler(menu service.MenuServiceInterface, qr service.QRGenerator, log logrus.FieldLogger) *Handler {
	return &Handler{Menu: menu, QR: qr, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/items", h.listItems).Methods("GET")
	r.HandleFunc("/api/items/{id}", h.getItem).Methods("GET")
	r.HandleFunc("/api/items/{id}/qrcode", h.getItemQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-api",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	items, err := h.Menu.List(r.Context(), search, category)
	if err != nil {
		h.Log.WithError(err).Error("menu list failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Log.Infof("listed %d items (search=%q category=%q)", len(items), search, category)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	item, err := h.Menu.Get(r.Context(), id)
	if errors.Is(err, service.ErrInvalidItemID) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.Log.WithError(err).Errorf("menu get failed for item %d", id)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if item == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Item not found"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) getItemQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	item, err := h.Menu.Get(r.Context(), id)
	if errors.Is(err, service.ErrInvalidItemID) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if item == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Item not found"})
		return
	}

	qr, err := h.QR.Generate(item.ID)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
