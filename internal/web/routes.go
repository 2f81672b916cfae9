package web

// Routes is the explicit named-route table: handlers redirect by destination
// name instead of hard-coding paths at the call sites.
type Routes struct {
	Home      string
	Login     string
	Register  string
	Dashboard string
	Logout    string
	Health    string
	Metrics   string
}

func DefaultRoutes() Routes {
	return Routes{
		Home:      "/",
		Login:     "/login",
		Register:  "/register",
		Dashboard: "/dashboard",
		Logout:    "/logout",
		Health:    "/health",
		Metrics:   "/metrics",
	}
}
