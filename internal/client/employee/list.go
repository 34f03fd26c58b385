package employee

import (
	"context"
	"fmt"
	"io"
	"text/template"

	"github.com/dmitrijs2005/staffview/internal/client/models"
	"github.com/dmitrijs2005/staffview/internal/client/router"
	"github.com/dmitrijs2005/staffview/internal/client/services"
	"github.com/dmitrijs2005/staffview/internal/client/view"
)

var listTemplate = template.Must(template.New(DataKey).Parse(
	`{{- if not .employees}}No employees found.
{{else}}{{printf "%-32s %s" "Name" "Email"}}
{{range .employees}}{{printf "%-32s %s" .FullName .Email}}
{{end}}{{end}}`))

// ListComponent prints the resolved employees as a Name / Email table.
type ListComponent struct {
	out  io.Writer
	list *view.Var
}

var _ router.Deactivator = (*ListComponent)(nil)

func NewListComponent(out io.Writer) *ListComponent {
	return &ListComponent{out: out, list: view.NewVar(DataKey, listTemplate)}
}

func (c *ListComponent) Render(_ context.Context, snap *router.Snapshot) error {
	rendered, err := c.list.Set(c.out, employeesFrom(snap.Data))
	if err != nil {
		return err
	}
	if !rendered {
		_, err = fmt.Fprintln(c.out, "Employee list unchanged.")
	}
	return err
}

// Deactivate forgets the bound list. The next visit prints the table again
// and nothing of the previous session stays in memory.
func (c *ListComponent) Deactivate(context.Context) {
	c.list.Reset()
}

// employeesFrom reads the resolved list, treating a missing entry as empty.
func employeesFrom(data map[string]any) []models.Employee {
	if list, ok := data[DataKey].([]models.Employee); ok && list != nil {
		return list
	}
	return []models.Employee{}
}

// Routes is the child route table loaded under /employee.
func Routes(svc services.EmployeeService, out io.Writer) []*router.Route {
	return []*router.Route{
		{
			Path:      "",
			Resolve:   map[string]router.Resolver{DataKey: NewEmployeesResolver(svc)},
			Component: NewListComponent(out),
		},
	}
}
