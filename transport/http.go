package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	categoryapp "github.com/rizkyfachril/backoffice/application/category"
	dashboardapp "github.com/rizkyfachril/backoffice/application/dashboard"
	inventoryapp "github.com/rizkyfachril/backoffice/application/inventory"
	productapp "github.com/rizkyfachril/backoffice/application/product"
	shippingapp "github.com/rizkyfachril/backoffice/application/shipping"
	userapp "github.com/rizkyfachril/backoffice/application/user"
	"github.com/rizkyfachril/backoffice/cmd/config"
	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config       *config.Config
	UserApp      userapp.UserApp
	CategoryApp  categoryapp.CategoryApp
	ProductApp   productapp.ProductApp
	ShippingApp  shippingapp.ShippingApp
	InventoryApp inventoryapp.InventoryApp
	DashboardApp dashboardapp.DashboardApp
}

func NewTransport(rh *RestHandler) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Uploaded files
	router.PathPrefix(rh.Config.Upload.PublicPath + "/").Handler(
		http.StripPrefix(rh.Config.Upload.PublicPath+"/", http.FileServer(http.Dir(rh.Config.Upload.Dir))))

	// Admin pages, gated by the page policy in the auth middleware
	router.HandleFunc("/login", rh.LoginPage).Methods(http.MethodGet)
	router.PathPrefix("/admin").HandlerFunc(rh.AdminPage).Methods(http.MethodGet)

	// Public routes
	router.HandleFunc("/api/v1/auth/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/auth/login", rh.Login).Methods(http.MethodPost)

	// Protected routes
	router.HandleFunc("/api/v1/auth/logout", rh.Logout).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/users", rh.ListUsers).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/categories", rh.ListCategories).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/categories", rh.CreateCategory).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/categories/{id:[0-9]+}", rh.GetCategory).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/categories/{id:[0-9]+}", rh.UpdateCategory).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/categories/{id:[0-9]+}", rh.DeleteCategory).Methods(http.MethodDelete)

	router.HandleFunc("/api/v1/products", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/products", rh.CreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/products/{id:[0-9]+}", rh.UpdateProduct).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/products/{id:[0-9]+}", rh.DeleteProduct).Methods(http.MethodDelete)
	router.HandleFunc("/api/v1/products/{id:[0-9]+}/variants", rh.ListVariants).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/products/{id:[0-9]+}/variants", rh.CreateVariant).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/variants/{id:[0-9]+}", rh.UpdateVariant).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/variants/{id:[0-9]+}", rh.DeleteVariant).Methods(http.MethodDelete)

	router.HandleFunc("/api/v1/shipping/carriers", rh.ListCarriers).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/shipping/carriers", rh.CreateCarrier).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/shipping/carriers/{id:[0-9]+}", rh.GetCarrier).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/shipping/carriers/{id:[0-9]+}", rh.UpdateCarrier).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/shipping/carriers/{id:[0-9]+}", rh.DeleteCarrier).Methods(http.MethodDelete)
	router.HandleFunc("/api/v1/shipping/methods", rh.ListMethods).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/shipping/methods", rh.CreateMethod).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/shipping/methods/{id:[0-9]+}", rh.UpdateMethod).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/shipping/methods/{id:[0-9]+}", rh.DeleteMethod).Methods(http.MethodDelete)
	router.HandleFunc("/api/v1/shipping/service-types", rh.ListServiceTypes).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/shipping/service-types", rh.CreateServiceType).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/shipping/service-types/{id:[0-9]+}", rh.UpdateServiceType).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/shipping/service-types/{id:[0-9]+}", rh.DeleteServiceType).Methods(http.MethodDelete)

	router.HandleFunc("/api/v1/inventory", rh.ListInventory).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/inventory", rh.CreateInventory).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/inventory/movements", rh.ListMovements).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/inventory/movements", rh.RecordMovement).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/inventory/{id:[0-9]+}", rh.GetInventory).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/dashboard/stats", rh.DashboardStats).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/uploads", rh.Upload).Methods(http.MethodPost)

	// Internal machine-to-machine routes, API-key gated
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(rh.Config.Auth.InternalAPIKey))
	internal.HandleFunc("/inventory/movements", rh.RecordMovementInternal).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(rh.UserApp))

	return router
}

type responseBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body responseBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, responseBody{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, responseBody{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	if cerr, ok := err.(errors.CustomError); ok {
		writeJSON(w, cerr.ErrorHTTPCode(), responseBody{
			Code:    cerr.ErrorCode(),
			Message: cerr.Error(),
		})
		return
	}

	internal := errors.SetCustomError(constant.ErrInternal)
	writeJSON(w, internal.ErrorHTTPCode(), responseBody{
		Code:    internal.ErrorCode(),
		Message: internal.Error(),
	})
}
