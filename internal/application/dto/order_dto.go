package dto

import "time"

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID                  string           `json:"id"`
	CustomerID          string           `json:"customer_id"`
	ServiceID           string           `json:"service_id"`
	PricingTier         string           `json:"pricing_tier,omitempty"`
	Status              string           `json:"status"`
	AppointmentDate     time.Time        `json:"appointment_date"`
	Measurements        *MeasurementsDTO `json:"measurements,omitempty"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// OrderListResponse listado de pedidos.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// UpdateOrderStatusRequest cambio de estado solicitado por un admin.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed measuring stitching ready delivered"`
}

// DashboardResponse tarjetas del panel admin: pedidos por estado y
// total de clientas registradas.
type DashboardResponse struct {
	OrdersByStatus map[string]int `json:"orders_by_status"`
	TotalOrders    int            `json:"total_orders"`
	TotalCustomers int            `json:"total_customers"`
}
