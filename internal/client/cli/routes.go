package cli

import (
	"context"

	"github.com/dmitrijs2005/staffview/internal/client/auth"
	"github.com/dmitrijs2005/staffview/internal/client/employee"
	"github.com/dmitrijs2005/staffview/internal/client/router"
)

// routes is the application route table. Feature modules are built on first
// navigation into them.
func (a *App) routes() []*router.Route {
	guard := router.NewAuthGuard(a.session, a.log)

	return []*router.Route{
		{Path: "", RedirectTo: "/employee"},
		{
			Path: "auth",
			LoadChildren: func(context.Context) ([]*router.Route, error) {
				login := auth.NewLoginComponent(a.authService, a, a, a.out, a.log)
				return auth.Routes(login), nil
			},
		},
		{
			Path:        "employee",
			CanActivate: []router.Guard{guard},
			LoadChildren: func(context.Context) ([]*router.Route, error) {
				return employee.Routes(a.employeeService, a.out), nil
			},
		},
	}
}
