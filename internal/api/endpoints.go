package api

// Endpoint paths of the Greenly backend, relative to the base URL.
const (
	endpointAuthRegister = "/auth/register/"
	endpointAuthLogin    = "/auth/login/"
	endpointAuthRefresh  = "/auth/refresh/"
	endpointAuthMe       = "/auth/me/"
	endpointAuthLogout   = "/auth/logout/"

	endpointVendors          = "/vendors/"
	endpointVendorsNearby    = "/vendors/nearby/"
	endpointProducts         = "/products/"
	endpointOrders           = "/orders/"
	endpointPickups          = "/pickups/"
	endpointCollectors       = "/collectors/"
	endpointCollectorsNearby = "/collectors/nearby/"
)

func endpointVendorDetail(id string) string    { return endpointVendors + id + "/" }
func endpointVendorStatus(id string) string    { return endpointVendors + id + "/status/" }
func endpointProductDetail(id string) string   { return endpointProducts + id + "/" }
func endpointProductStock(id string) string    { return endpointProducts + id + "/stock/" }
func endpointOrderDetail(id string) string     { return endpointOrders + id + "/" }
func endpointOrderAccept(id string) string     { return endpointOrders + id + "/accept/" }
func endpointOrderComplete(id string) string   { return endpointOrders + id + "/complete/" }
func endpointOrderCancel(id string) string     { return endpointOrders + id + "/cancel/" }
func endpointPickupDetail(id string) string    { return endpointPickups + id + "/" }
func endpointPickupAccept(id string) string    { return endpointPickups + id + "/accept/" }
func endpointPickupComplete(id string) string  { return endpointPickups + id + "/complete/" }
func endpointCollectorDetail(id string) string { return endpointCollectors + id + "/" }
