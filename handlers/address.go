package handlers

import (
	"net/http"

	"github.com/addressly/address-server/models"
	"github.com/addressly/address-server/services"
	"github.com/addressly/address-server/utils"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AddressHandler exposes the address service over HTTP.
type AddressHandler struct {
	svc *services.AddressService
}

func NewAddressHandler(svc *services.AddressService) *AddressHandler {
	return &AddressHandler{svc: svc}
}

//PostAddress POST::/address
func (h *AddressHandler) PostAddress(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAddressRequest
	if err := utils.ParseBody(r.Body, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "unable to parse req body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid address payload")
		return
	}
	if req.User.ID != "" {
		if _, err := uuid.Parse(req.User.ID); err != nil {
			utils.RespondError(w, http.StatusBadRequest, err, "invalid user ID")
			return
		}
	}

	id, err := h.svc.CreateAddress(r.Context(), req.User, req.Address)
	if err != nil {
		respondServiceError(w, err, "unable to add address")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, models.CreateAddressResponse{ID: id, Message: "Address added successfully"})
}

//GetAddressByID GET::/address/{id}
func (h *AddressHandler) GetAddressByID(w http.ResponseWriter, r *http.Request) {
	id, err := addressID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid address ID")
		return
	}

	address, err := h.svc.GetAddressByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "unable to retrieve address")
		return
	}
	utils.RespondJSON(w, http.StatusOK, address)
}

//PutAddress PUT::/address/{id}
func (h *AddressHandler) PutAddress(w http.ResponseWriter, r *http.Request) {
	id, err := addressID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid address ID")
		return
	}

	var req models.UpdateAddressRequest
	if err := utils.ParseBody(r.Body, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "unable to parse req body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid address payload")
		return
	}
	if _, err := uuid.Parse(req.User.ID); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user ID")
		return
	}

	if err := h.svc.UpdateAddress(r.Context(), id, req.Address, req.User); err != nil {
		respondServiceError(w, err, "unable to update address")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.Response{Message: "Address updated successfully"})
}

//DeleteAddress DELETE::/address/{id}
func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, err := addressID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid address ID")
		return
	}

	if err := h.svc.DeleteAddress(r.Context(), id); err != nil {
		respondServiceError(w, err, "unable to delete address")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.Response{Message: "Address deleted successfully"})
}

func addressID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", err
	}
	return id, nil
}

// respondServiceError maps the service error kinds onto HTTP status codes.
func respondServiceError(w http.ResponseWriter, err error, messageToUser string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, err, "address not found")
	case errors.Is(err, models.ErrValidation):
		utils.RespondError(w, http.StatusBadRequest, err, messageToUser)
	case errors.Is(err, models.ErrConflict):
		utils.RespondError(w, http.StatusConflict, err, messageToUser)
	default:
		utils.RespondError(w, http.StatusInternalServerError, err, messageToUser)
	}
}
