package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRouter wires the HTTP surface. Trailing-slash forms follow the
// reference API: mutations use the slashed paths, reads the bare ones.
func SetupRouter(s *Server) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(s.logger))
	r.Use(AuthMiddleware(s.tokens))

	r.Post("/login/", s.Login)
	r.Post("/register/", s.Register)

	r.Get("/products", s.ListProducts)
	r.Get("/products/{id}", s.GetProduct)
	r.Post("/products/", requireStaff(s.CreateProduct))
	r.Put("/products/{id}/", requireStaff(s.UpdateProduct))
	r.Delete("/products/{id}/", requireStaff(s.DeleteProduct))

	r.Get("/revenues", requireStaff(s.TotalRevenue))
	r.Get("/revenues/{id}", requireStaff(s.ProductRevenue))

	r.Get("/orders", requireCustomer(s.ListOrders))
	r.Get("/orders/{id}", requireCustomer(s.GetOrder))
	r.Post("/orders/", requireCustomer(s.CreateOrder))

	return r
}
