package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error de validación con detalle campo → mensaje,
// re-presentable al usuario para corregir el formulario.
type ValidationErrorResponse struct {
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

// RedirectResponse veredicto de navegación del guard de rutas: a dónde
// debe ir el cliente y, si aplica, desde qué ruta venía para regresar
// después de autenticarse.
type RedirectResponse struct {
	Code       string `json:"code"`
	RedirectTo string `json:"redirect_to"`
	From       string `json:"from,omitempty"`
}

// NavigationResponse rutas de la aplicación alcanzables por el rol actual.
type NavigationResponse struct {
	Role   string   `json:"role"`
	Routes []string `json:"routes"`
}
