package api

// @title profilekit API
// @version 1.0
// @description Catalog of listener communication profiles. Every record is
// @description reachable through the base view; Http records are also
// @description reachable through the Http view.

// @BasePath /api
// @schemes http
