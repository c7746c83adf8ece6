package app

import "github.com/JaimeStill/parkease/pkg/routing"

// View identifiers bound by the route table.
const (
	ViewHomePage       = "HomePage"
	ViewAdminLogin     = "AdminLogin"
	ViewAdminDashboard = "AdminDashboard"
	ViewUserLogin      = "UserLogin"
	ViewUserRegister   = "UserRegister"
	ViewUserDashboard  = "UserDashboard"
	ViewNotFound       = "NotFound"
)

// Hyphenated paths are aliases of their nested counterparts and bind the
// same view. /user-register is declared last and is the only alias carrying
// a name.
var table = routing.MustNew(
	routing.Entry{Pattern: "/admin", Redirect: "/admin/login"},
	routing.Entry{Pattern: "/admin/login", View: ViewAdminLogin},
	routing.Entry{Pattern: "/admin-login", View: ViewAdminLogin},
	routing.Entry{Pattern: "/admin/dashboard", View: ViewAdminDashboard},
	routing.Entry{Pattern: "/admin-dashboard", View: ViewAdminDashboard},

	routing.Entry{Pattern: "/user", Redirect: "/user/login"},
	routing.Entry{Pattern: "/user/login", View: ViewUserLogin},
	routing.Entry{Pattern: "/user-login", View: ViewUserLogin},
	routing.Entry{Pattern: "/user/register", View: ViewUserRegister},
	routing.Entry{Pattern: "/user/dashboard", View: ViewUserDashboard},
	routing.Entry{Pattern: "/user-dashboard", View: ViewUserDashboard},

	routing.Entry{Pattern: "/", View: ViewHomePage, Name: ViewHomePage},
	routing.Entry{Pattern: "/user-register", View: ViewUserRegister, Name: ViewUserRegister},
)

// Routes returns the application route table. The table is immutable and
// shared.
func Routes() *routing.Table {
	return table
}
