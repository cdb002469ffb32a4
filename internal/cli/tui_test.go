package cli

import (
	"strings"
	"testing"

	"github.com/linyuchen/gantry/internal/repository"
	"github.com/linyuchen/gantry/internal/service"
	"github.com/linyuchen/gantry/internal/teatest"
	"github.com/linyuchen/gantry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	st := testutil.NewTestStore(t)
	projects := repository.NewProjectRepo(st)
	procurement := repository.NewProcurementRepo(st)
	operations := repository.NewOperationRepo(st)
	quality := repository.NewQualityRepo(st)
	groups := repository.NewGroupStateRepo(st)

	return &App{
		Projects:    service.NewProjectService(projects, procurement, operations, quality),
		Procurement: service.NewProcurementService(procurement, projects),
		Operations:  service.NewOperationService(operations, groups),
		Quality:     service.NewQualityService(quality),
	}
}

func newTestDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(newTestApp(t)))
	d.Resize(140, 40)
	d.Start()
	return d
}

// loginAs selects the username in the sorted login list. The directory sorts
// as admin, ops_user, proc_user, qa_user.
func loginAs(t *testing.T, d *teatest.Driver, username string) {
	t.Helper()
	steps := map[string]int{"admin": 0, "ops_user": 1, "proc_user": 2, "qa_user": 3}
	n, ok := steps[username]
	require.True(t, ok, "unknown test username %s", username)
	for i := 0; i < n; i++ {
		d.Key("down")
	}
	d.Key("enter")
}

func TestTUIShowsLoginFirst(t *testing.T) {
	d := newTestDriver(t)

	out := d.Output()
	assert.Contains(t, out, "Sign in as")
	assert.Contains(t, out, "System Administrator")
}

func TestTUILoginReachesLanding(t *testing.T) {
	d := newTestDriver(t)
	loginAs(t, d, "admin")

	out := d.Output()
	assert.Contains(t, out, "WORK AREAS")
	assert.Contains(t, out, "admin")
	assert.Contains(t, out, "Procurement")
	assert.Contains(t, out, "Operations")
	assert.Contains(t, out, "Quality")
}

func TestTUIDepartmentGateLocksOtherAreas(t *testing.T) {
	d := newTestDriver(t)
	loginAs(t, d, "proc_user")

	out := d.Output()
	assert.Contains(t, out, "Locked")

	// Operations is locked for procurement staff; enter must not leave
	// the landing screen.
	d.Key("down")
	d.Key("enter")
	assert.Contains(t, d.Output(), "WORK AREAS")
}

func TestTUIProcurementFlow(t *testing.T) {
	d := newTestDriver(t)
	loginAs(t, d, "admin")

	d.Key("enter") // Procurement card
	out := d.Output()
	assert.Contains(t, out, "SELECT PROJECT")
	assert.Contains(t, out, "Default Construction Project")

	d.Key("enter") // default project
	out = d.Output()
	assert.Contains(t, out, "PROCUREMENT SCHEDULE")
	assert.Contains(t, out, "Structural Steel Works")
	assert.Contains(t, out, "due this week")

	d.Key("esc")
	assert.Contains(t, d.Output(), "SELECT PROJECT")
}

func TestTUIOperationsToggle(t *testing.T) {
	d := newTestDriver(t)
	loginAs(t, d, "ops_user")

	d.Key("down")
	d.Key("enter") // Operations card
	d.Key("enter") // default project

	out := d.Output()
	assert.Contains(t, out, "OPERATIONS SCHEDULE")
	assert.Contains(t, out, "Design")
	assert.Contains(t, out, "▾")

	d.Key("enter") // collapse the stage under the cursor
	assert.Contains(t, d.Output(), "▸")
}

func TestTUIQualitySeedsPlans(t *testing.T) {
	d := newTestDriver(t)
	loginAs(t, d, "qa_user")

	d.Key("down")
	d.Key("down")
	d.Key("enter") // Quality card
	d.Key("enter") // default project

	out := d.Output()
	assert.Contains(t, out, "QUALITY PLAN CONTROL")
	assert.Contains(t, out, "1. Scaffolding Plan")
	assert.Contains(t, out, "12. Door & Window Opening Plan")
}

func TestTUICreateProject(t *testing.T) {
	d := newTestDriver(t)
	loginAs(t, d, "admin")

	d.Key("enter") // Procurement card
	d.Key("n")
	d.Key("West Wing Annex")
	d.Key("enter")

	out := d.Output()
	assert.Contains(t, out, "West Wing Annex")
	assert.Equal(t, 1, strings.Count(out, "Default Construction Project"))
}
