package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"addressbook/internal/delivery/api/response"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const includeBlacklistedParam = "include_blacklisted"

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address catalog handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest represents the request body for creating or updating an address
type AddressRequest struct {
	Building string `json:"building" validate:"required,max=255"`
	Street   string `json:"street" validate:"required,max=255"`
	Town     string `json:"town" validate:"required,max=255"`
	Postcode string `json:"postcode" validate:"required,max=16"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Building: r.Building,
		Street:   r.Street,
		Town:     r.Town,
		Postcode: r.Postcode,
	}
}

// ListAddresses handles listing the whole catalog
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	includeBlacklisted, err := parseIncludeBlacklisted(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "include_blacklisted must be a boolean")
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), includeBlacklisted)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// ListAddressesByPostcode handles listing the addresses of one postcode
func (h *AddressHandler) ListAddressesByPostcode(c echo.Context) error {
	postcode := c.Param("postcode")
	if postcode == "" {
		return response.BadRequest(c, "INVALID_POSTCODE", "Postcode is required")
	}

	includeBlacklisted, err := parseIncludeBlacklisted(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "include_blacklisted must be a boolean")
	}

	addresses, err := h.addressUC.ListAddressesByPostcode(c.Request().Context(), postcode, includeBlacklisted)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// GetAddress handles fetching a single address
func (h *AddressHandler) GetAddress(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// CreateAddress handles adding an address to the catalog
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address)
}

// UpdateAddress handles overwriting an existing address
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// DeleteAddress handles removing an address
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func parseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}

	return id, nil
}

func parseIncludeBlacklisted(c echo.Context) (bool, error) {
	raw := c.QueryParam(includeBlacklistedParam)
	if raw == "" {
		return false, nil
	}

	return strconv.ParseBool(raw)
}
