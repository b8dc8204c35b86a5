package routes

// Routes package cung cấp routing cho Court Finder Admin API
//
// Cấu trúc:
// - api.go: API routes (/v1/*), health routes
// - web.go: Web routes (/, /docs)
//
// Sử dụng:
// routes.SetupAllRoutes(router, courtController)
