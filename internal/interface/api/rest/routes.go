package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// files
	RouteFiles            = RouteApiV1 + "/files"
	RouteFileCreate       = RouteFiles + "/create"
	RouteFileMassDestroy  = RouteFiles + "/mass-destroy"
	RouteFile             = RouteFiles + "/:id"
	RouteFileEdit         = RouteFile + "/edit"
	RouteFileRestore      = RouteFile + "/restore"
	RouteFilePermaDestroy = RouteFile + "/perma"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
