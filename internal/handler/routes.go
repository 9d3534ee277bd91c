package handler

// Route paths, kept in one place so route registration, the Location header
// on create and the tests never drift apart.
const (
	PlayersPath    = "/players"
	StatisticsPath = PlayersPath + "/statistics"

	DocsPath        = "/docs"
	OpenAPISpecPath = "/openapi.yaml"
)
