package access

// routeCapabilities tabla canónica de rutas de la tienda y su capability
// mínima. Una ruta no listada es not-found, independiente de la política.
var routeCapabilities = map[string]Capability{
	"/":         CapabilityPublic,
	"/login":    CapabilityPublic,
	"/register": CapabilityPublic,
	"/call-us":  CapabilityPublic,

	"/my-orders": CapabilityCustomer,
	"/book":      CapabilityCustomer,
	"/locate":    CapabilityCustomer,
	"/account":   CapabilityCustomer,

	"/admin/dashboard": CapabilityAdmin,
	"/admin/orders":    CapabilityAdmin,
	"/admin/customers": CapabilityAdmin,
	"/admin/services":  CapabilityAdmin,
}

// CapabilityForRoute devuelve la capability mínima de una ruta conocida.
// ok=false significa ruta inexistente, no denegada.
func CapabilityForRoute(path string) (Capability, bool) {
	c, ok := routeCapabilities[path]
	return c, ok
}

// Routes devuelve una copia de la tabla de rutas, para construir la
// navegación visible de un principal sin exponer el mapa interno.
func Routes() map[string]Capability {
	out := make(map[string]Capability, len(routeCapabilities))
	for p, c := range routeCapabilities {
		out[p] = c
	}
	return out
}
