package app

import "github.com/JaimeStill/parkease/pkg/web"

var views = []web.ViewDef{
	{Name: ViewHomePage, Template: "home.html", Title: "Smart Parking", Bundle: "app"},
	{Name: ViewAdminLogin, Template: "admin-login.html", Title: "Admin Login", Bundle: "app"},
	{Name: ViewAdminDashboard, Template: "admin-dashboard.html", Title: "Admin Dashboard", Bundle: "app"},
	{Name: ViewUserLogin, Template: "user-login.html", Title: "User Login", Bundle: "app"},
	{Name: ViewUserRegister, Template: "user-register.html", Title: "Create Account", Bundle: "app"},
	{Name: ViewUserDashboard, Template: "user-dashboard.html", Title: "My Dashboard", Bundle: "app"},
}

var notFoundView = web.ViewDef{
	Name: ViewNotFound, Template: "404.html", Title: "Not Found", Bundle: "app",
}

// Views returns a copy of the view definitions the route table resolves to.
func Views() []web.ViewDef {
	out := make([]web.ViewDef, len(views))
	copy(out, views)
	return out
}
